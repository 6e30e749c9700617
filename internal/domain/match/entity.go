package match

import (
	"time"

	"talent-match/internal/commute"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryTechnicalSkills       Category = "technical_skills"
	CategorySoftSkills            Category = "soft_skills"
	CategoryExperienceFit         Category = "experience_fit"
	CategoryCulturalAlignment     Category = "cultural_alignment"
	CategoryGrowthPotential       Category = "growth_potential"
	CategoryPerformanceIndicators Category = "performance_indicators"
	CategoryStabilityFactors      Category = "stability_factors"
	CategoryDiversityEquity       Category = "diversity_equity"
	CategoryMarketCompetitiveness Category = "market_competitiveness"
)

// Categories lists the nine fixed evaluation categories in weight order.
func Categories() []Category {
	return []Category{
		CategoryTechnicalSkills,
		CategorySoftSkills,
		CategoryExperienceFit,
		CategoryCulturalAlignment,
		CategoryGrowthPotential,
		CategoryPerformanceIndicators,
		CategoryStabilityFactors,
		CategoryDiversityEquity,
		CategoryMarketCompetitiveness,
	}
}

type CategoryScore struct {
	Category Category           `json:"category"`
	Score    float64            `json:"score"`
	Factors  map[string]float64 `json:"factors"`
}

type DEISubAssessment struct {
	Score     float64            `json:"score"`
	Breakdown map[string]float64 `json:"breakdown"`
	Strengths []string           `json:"strengths"`
	Gaps      []string           `json:"gaps"`
}

type DEIAssessment struct {
	Diversity DEISubAssessment `json:"diversity"`
	Equity    DEISubAssessment `json:"equity"`
	Inclusion DEISubAssessment `json:"inclusion"`
	Combined  float64          `json:"combined"`
}

type BiasType string

const (
	BiasName               BiasType = "name"
	BiasAge                BiasType = "age"
	BiasGender             BiasType = "gender"
	BiasEducationPrestige  BiasType = "education_prestige"
	BiasGeography          BiasType = "geography"
	BiasExperienceLength   BiasType = "experience_length"
	BiasCompanyBrand       BiasType = "company_brand"
	BiasCommunicationStyle BiasType = "communication_style"
	BiasCulturalFit        BiasType = "cultural_fit"
	BiasAvailability       BiasType = "availability"
)

func BiasTypes() []BiasType {
	return []BiasType{
		BiasName, BiasAge, BiasGender, BiasEducationPrestige, BiasGeography,
		BiasExperienceLength, BiasCompanyBrand, BiasCommunicationStyle,
		BiasCulturalFit, BiasAvailability,
	}
}

type BiasFinding struct {
	Type             BiasType `json:"type"`
	Risk             float64  `json:"risk"`
	Detected         bool     `json:"detected"`
	MitigationNeeded bool     `json:"mitigation_needed"`
	Mitigation       string   `json:"mitigation,omitempty"`
}

// BiasAssessment is advisory metadata only. It never removes a candidate from
// consideration.
type BiasAssessment struct {
	Findings        []BiasFinding `json:"findings"`
	OverallRisk     float64       `json:"overall_risk"`
	Recommendations []string      `json:"recommendations"`
}

type Result struct {
	CandidateID           uuid.UUID        `json:"candidate_id"`
	JobID                 uuid.UUID        `json:"job_id"`
	BusinessUnitID        string           `json:"business_unit_id"`
	OverallScore          float64          `json:"overall_score"`
	CategoryScores        []CategoryScore  `json:"category_scores"`
	DEI                   DEIAssessment    `json:"dei"`
	Bias                  BiasAssessment   `json:"bias"`
	Confidence            float64          `json:"confidence"`
	GrowthPotential       float64          `json:"growth_potential"`
	RiskFactors           []string         `json:"risk_factors"`
	Recommendations       []string         `json:"recommendations"`
	Commute               *commute.Profile `json:"commute,omitempty"`
	LocationAdjustedScore float64          `json:"location_adjusted_score"`
	EvaluatedAt           time.Time        `json:"evaluated_at"`
}

// RankingScore is the sort key for batch ordering: the location-adjusted score
// when location analysis ran, the overall score otherwise.
func (r Result) RankingScore() float64 {
	if r.Commute != nil {
		return r.LocationAdjustedScore
	}
	return r.OverallScore
}
