package job

import (
	"time"

	"github.com/google/uuid"
)

// Requisition is the read-only job input owned by the persistence layer.
type Requisition struct {
	ID                     uuid.UUID `json:"id"`
	Title                  string    `json:"title"`
	BusinessUnitID         string    `json:"business_unit_id"`
	RequiredSkills         []string  `json:"required_skills"`
	PreferredSkills        []string  `json:"preferred_skills"`
	RequiredCertifications []string  `json:"required_certifications"`
	MinYears               float64   `json:"min_years"`
	MaxYears               float64   `json:"max_years"`
	CultureValues          []string  `json:"culture_values"`
	SalaryMin              float64   `json:"salary_min"`
	SalaryMax              float64   `json:"salary_max"`
	Location               string    `json:"location"`
	PostedAt               time.Time `json:"posted_at"`
}
