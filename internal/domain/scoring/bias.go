package scoring

import (
	"talent-match/internal/domain/candidate"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/match"
)

const (
	biasDetectedThreshold   = 0.3
	biasMitigationThreshold = 0.5
)

// BiasDetector estimates, per recognized bias type, the risk that an
// evaluation signal could introduce unfair discrimination. The output is
// advisory metadata only and never removes a candidate from consideration.
//
// The individual heuristics and thresholds are illustrative policy defaults,
// expected to be tuned under fairness review.
type BiasDetector struct{}

func NewBiasDetector() *BiasDetector {
	return &BiasDetector{}
}

var biasMitigations = map[match.BiasType]string{
	match.BiasName:               "apply blind review: mask candidate names during screening",
	match.BiasAge:                "evaluate on demonstrated skills rather than career length",
	match.BiasGender:             "mask name and pronoun signals during screening",
	match.BiasEducationPrestige:  "use skills-first evaluation instead of institution names",
	match.BiasGeography:          "exclude address from the screening view",
	match.BiasExperienceLength:   "weight recent relevant work over total tenure",
	match.BiasCompanyBrand:       "assess role scope and outcomes rather than employer brand",
	match.BiasCommunicationStyle: "use structured interviews with scored rubrics",
	match.BiasCulturalFit:        "replace culture-fit judgement with values-based criteria",
	match.BiasAvailability:       "discuss scheduling constraints only after skills evaluation",
}

func (d *BiasDetector) Assess(c *candidate.Profile, j *job.Requisition) match.BiasAssessment {
	findings := make([]match.BiasFinding, 0, len(match.BiasTypes()))
	recommendations := make([]string, 0)

	sum := 0.0
	for _, bt := range match.BiasTypes() {
		risk := clamp01(d.risk(bt, c, j))
		f := match.BiasFinding{
			Type:             bt,
			Risk:             risk,
			Detected:         risk > biasDetectedThreshold,
			MitigationNeeded: risk > biasMitigationThreshold,
		}
		if f.MitigationNeeded {
			f.Mitigation = biasMitigations[bt]
			recommendations = append(recommendations, f.Mitigation)
		}
		findings = append(findings, f)
		sum += risk
	}

	return match.BiasAssessment{
		Findings:        findings,
		OverallRisk:     sum / float64(len(findings)),
		Recommendations: recommendations,
	}
}

func (d *BiasDetector) risk(bt match.BiasType, c *candidate.Profile, j *job.Requisition) float64 {
	switch bt {
	case match.BiasName:
		// a visible name enables name-based inference during screening
		if c.FullName != "" {
			return 0.40
		}
		return 0.10
	case match.BiasAge:
		switch {
		case c.TotalYears > 25 || (c.TotalYears > 0 && c.TotalYears < 2):
			return 0.55
		case c.TotalYears > 20:
			return 0.35
		default:
			return 0.20
		}
	case match.BiasGender:
		if c.FullName != "" {
			return 0.35
		}
		return 0.15
	case match.BiasEducationPrestige:
		// a concentrated educational path invites prestige-based shortcuts
		if p := c.DEI.Diversity.EducationalPath; p != nil && *p < 0.4 {
			return 0.45
		}
		return 0.25
	case match.BiasGeography:
		if c.Address != "" {
			return 0.40
		}
		return 0.15
	case match.BiasExperienceLength:
		if yearsAlignment(c.TotalYears, j.MinYears, j.MaxYears) < 0.5 {
			return 0.55
		}
		return 0.25
	case match.BiasCompanyBrand:
		for _, e := range c.Experience {
			if e.Company != "" {
				return 0.40
			}
		}
		return 0.15
	case match.BiasCommunicationStyle:
		// subjectively rated communication scores are a known bias vector
		if c.SoftSkills.Communication != nil {
			return 0.45
		}
		return 0.20
	case match.BiasCulturalFit:
		if len(j.CultureValues) > 0 {
			return 0.55
		}
		return 0.20
	case match.BiasAvailability:
		if a := c.Market.Availability; a != nil && *a < 0.5 {
			return 0.55
		}
		return 0.20
	default:
		return 0.0
	}
}
