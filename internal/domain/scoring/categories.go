package scoring

import (
	"talent-match/internal/domain/candidate"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/match"
)

// Factor names referenced outside the scorer (aggregator risk rules, tests).
const (
	FactorSkillMatch             = "skill_match"
	FactorCertificationMatch     = "certification_match"
	FactorYearsAlignment         = "years_alignment"
	FactorValuesOverlap          = "values_overlap"
	FactorSalaryAlignment        = "salary_alignment"
	FactorLearningAgility        = "learning_agility"
	FactorCareerAmbition         = "career_ambition"
	FactorAdaptability           = "adaptability"
	FactorTenurePattern          = "tenure_pattern"
	FactorGeographicStability    = "geographic_stability"
	FactorNegotiationFlexibility = "negotiation_flexibility"
)

// Defaults substituted for absent optional signals. Absence never raises.
const (
	defaultSignal     = 0.6
	defaultNeutral    = 0.5
	defaultFavourable = 0.7
)

var categoryWeights = map[match.Category]float64{
	match.CategoryTechnicalSkills:       0.20,
	match.CategorySoftSkills:            0.15,
	match.CategoryExperienceFit:         0.15,
	match.CategoryCulturalAlignment:     0.12,
	match.CategoryGrowthPotential:       0.10,
	match.CategoryPerformanceIndicators: 0.10,
	match.CategoryStabilityFactors:      0.08,
	match.CategoryDiversityEquity:       0.05,
	match.CategoryMarketCompetitiveness: 0.05,
}

// Weights returns a copy of the fixed category weight table. The weights sum
// to 1.0.
func Weights() map[match.Category]float64 {
	out := make(map[match.Category]float64, len(categoryWeights))
	for k, v := range categoryWeights {
		out[k] = v
	}
	return out
}

// FactorProvider supplies the named factor values for one category. The
// default provider reads candidate/job features; alternative providers plug in
// for experimentation without duplicating the weight table.
type FactorProvider interface {
	Factors(cat match.Category, c *candidate.Profile, j *job.Requisition) map[string]float64
}

type CategoryScorer struct {
	provider FactorProvider
}

func NewCategoryScorer(provider FactorProvider) *CategoryScorer {
	if provider == nil {
		provider = defaultFactorProvider{}
	}
	return &CategoryScorer{provider: provider}
}

// ScoreAll computes the nine category scores. Each category score is the
// unweighted mean of its factors, clamped to [0,1].
func (s *CategoryScorer) ScoreAll(c *candidate.Profile, j *job.Requisition) []match.CategoryScore {
	out := make([]match.CategoryScore, 0, len(categoryWeights))
	for _, cat := range match.Categories() {
		factors := s.provider.Factors(cat, c, j)
		out = append(out, match.CategoryScore{
			Category: cat,
			Score:    meanOfFactors(factors),
			Factors:  factors,
		})
	}
	return out
}

func meanOfFactors(factors map[string]float64) float64 {
	if len(factors) == 0 {
		return defaultNeutral
	}
	sum := 0.0
	for _, v := range factors {
		sum += clamp01(v)
	}
	return clamp01(sum / float64(len(factors)))
}

type defaultFactorProvider struct{}

func (defaultFactorProvider) Factors(cat match.Category, c *candidate.Profile, j *job.Requisition) map[string]float64 {
	switch cat {
	case match.CategoryTechnicalSkills:
		return technicalFactors(c, j)
	case match.CategorySoftSkills:
		return softSkillFactors(c)
	case match.CategoryExperienceFit:
		return experienceFactors(c, j)
	case match.CategoryCulturalAlignment:
		return culturalFactors(c, j)
	case match.CategoryGrowthPotential:
		return growthFactors(c)
	case match.CategoryPerformanceIndicators:
		return performanceFactors(c)
	case match.CategoryStabilityFactors:
		return stabilityFactors(c)
	case match.CategoryDiversityEquity:
		return diversityEquityFactors(c)
	case match.CategoryMarketCompetitiveness:
		return marketFactors(c, j)
	default:
		return map[string]float64{}
	}
}

func technicalFactors(c *candidate.Profile, j *job.Requisition) map[string]float64 {
	breadth := valueOr(c.Technical.TechnicalBreadth, defaultSignal)
	if c.Technical.TechnicalBreadth == nil && len(j.PreferredSkills) > 0 {
		breadth = SkillMatch(c.Skills, j.PreferredSkills)
	}
	return map[string]float64{
		FactorSkillMatch:         SkillMatch(c.Skills, j.RequiredSkills),
		FactorCertificationMatch: CertificationMatch(c.Certifications, j.RequiredCertifications),
		"tool_proficiency":       valueOr(c.Technical.ToolProficiency, defaultSignal),
		"domain_expertise":       valueOr(c.Technical.DomainExpertise, defaultSignal),
		"technical_depth":        valueOr(c.Technical.TechnicalDepth, defaultSignal),
		"technical_breadth":      breadth,
		"skill_recency":          valueOr(c.Technical.SkillRecency, defaultFavourable),
		"learning_velocity":      valueOr(c.Technical.LearningVelocity, defaultSignal),
	}
}

func softSkillFactors(c *candidate.Profile) map[string]float64 {
	return map[string]float64{
		"communication":          valueOr(c.SoftSkills.Communication, defaultSignal),
		"teamwork":               valueOr(c.SoftSkills.Teamwork, defaultSignal),
		"leadership":             valueOr(c.SoftSkills.Leadership, defaultNeutral),
		"problem_solving":        valueOr(c.SoftSkills.ProblemSolving, defaultSignal),
		FactorAdaptability:       valueOr(c.SoftSkills.Adaptability, defaultSignal),
		"emotional_intelligence": valueOr(c.SoftSkills.EmotionalIntelligence, defaultSignal),
		"creativity":             valueOr(c.SoftSkills.Creativity, defaultNeutral),
		"conflict_resolution":    valueOr(c.SoftSkills.ConflictResolution, defaultNeutral),
	}
}

func experienceFactors(c *candidate.Profile, j *job.Requisition) map[string]float64 {
	return map[string]float64{
		FactorYearsAlignment:      yearsAlignment(c.TotalYears, j.MinYears, j.MaxYears),
		"role_similarity":         valueOr(c.ExperienceFit.RoleSimilarity, defaultSignal),
		"industry_match":          valueOr(c.ExperienceFit.IndustryMatch, defaultSignal),
		"seniority_alignment":     valueOr(c.ExperienceFit.SeniorityAlignment, defaultSignal),
		"scope_of_responsibility": valueOr(c.ExperienceFit.ScopeOfResponsibility, defaultSignal),
		"project_complexity":      valueOr(c.ExperienceFit.ProjectComplexity, defaultSignal),
		"team_size_fit":           valueOr(c.ExperienceFit.TeamSizeFit, defaultFavourable),
		"domain_tenure":           valueOr(c.ExperienceFit.DomainTenure, defaultNeutral),
	}
}

func culturalFactors(c *candidate.Profile, j *job.Requisition) map[string]float64 {
	return map[string]float64{
		FactorValuesOverlap:        SkillMatch(c.Culture.Values, j.CultureValues),
		"work_style_fit":           valueOr(c.Culture.WorkStyleFit, defaultSignal),
		"collaboration_preference": valueOr(c.Culture.CollaborationPreference, defaultSignal),
		"pace_alignment":           valueOr(c.Culture.PaceAlignment, defaultSignal),
		"mission_affinity":         valueOr(c.Culture.MissionAffinity, defaultNeutral),
		"feedback_culture_fit":     valueOr(c.Culture.FeedbackCultureFit, defaultSignal),
		"autonomy_fit":             valueOr(c.Culture.AutonomyFit, defaultSignal),
		"formality_fit":            valueOr(c.Culture.FormalityFit, defaultFavourable),
	}
}

func growthFactors(c *candidate.Profile) map[string]float64 {
	return map[string]float64{
		FactorLearningAgility:   valueOr(c.Growth.LearningAgility, defaultSignal),
		FactorCareerAmbition:    valueOr(c.Growth.CareerAmbition, defaultSignal),
		"skill_acquisition_rate": valueOr(c.Growth.SkillAcquisitionRate, defaultSignal),
		"stretch_readiness":      valueOr(c.Growth.StretchReadiness, defaultNeutral),
		"mentorship_openness":    valueOr(c.Growth.MentorshipOpenness, defaultFavourable),
		"goal_clarity":           valueOr(c.Growth.GoalClarity, defaultSignal),
		"upskilling_history":     valueOr(c.Growth.UpskillingHistory, defaultNeutral),
		"potential_ceiling":      valueOr(c.Growth.PotentialCeiling, defaultSignal),
	}
}

func performanceFactors(c *candidate.Profile) map[string]float64 {
	return map[string]float64{
		"achievement_density":  valueOr(c.Performance.AchievementDensity, defaultSignal),
		"impact_evidence":      valueOr(c.Performance.ImpactEvidence, defaultNeutral),
		"consistency":          valueOr(c.Performance.Consistency, defaultSignal),
		"recognition":          valueOr(c.Performance.Recognition, defaultNeutral),
		"delivery_reliability": valueOr(c.Performance.DeliveryReliability, defaultFavourable),
		"quality_focus":        valueOr(c.Performance.QualityFocus, defaultSignal),
		"initiative":           valueOr(c.Performance.Initiative, defaultSignal),
		"outcome_orientation":  valueOr(c.Performance.OutcomeOrientation, defaultSignal),
	}
}

func stabilityFactors(c *candidate.Profile) map[string]float64 {
	return map[string]float64{
		FactorTenurePattern:       valueOr(c.Stability.TenurePattern, defaultSignal),
		FactorGeographicStability: valueOr(c.Stability.GeographicStability, defaultFavourable),
		"career_coherence":        valueOr(c.Stability.CareerCoherence, defaultSignal),
		"commitment_signals":      valueOr(c.Stability.CommitmentSignals, defaultSignal),
		"relocation_risk":         valueOr(c.Stability.RelocationRisk, defaultFavourable),
		"industry_loyalty":        valueOr(c.Stability.IndustryLoyalty, defaultNeutral),
		"role_stability":          valueOr(c.Stability.RoleStability, defaultSignal),
		"life_stage_stability":    valueOr(c.Stability.LifeStageStability, defaultSignal),
	}
}

func diversityEquityFactors(c *candidate.Profile) map[string]float64 {
	d := c.DEI.Diversity
	return map[string]float64{
		"cultural_background":      valueOr(d.CulturalBackground, defaultNeutral),
		"language_diversity":       valueOr(d.LanguageDiversity, defaultNeutral),
		"educational_path":         valueOr(d.EducationalPath, defaultNeutral),
		"career_path_diversity":    valueOr(d.CareerPathDiversity, defaultNeutral),
		"industry_breadth":         valueOr(d.IndustryBreadth, defaultNeutral),
		"experiential_range":       valueOr(d.ExperientialRange, defaultNeutral),
		"community_involvement":    valueOr(d.CommunityInvolvement, defaultNeutral),
		"perspective_contribution": valueOr(d.PerspectiveContribution, defaultNeutral),
	}
}

func marketFactors(c *candidate.Profile, j *job.Requisition) map[string]float64 {
	return map[string]float64{
		FactorSalaryAlignment:        salaryAlignment(c.ExpectedSalary, j.SalaryMin, j.SalaryMax),
		"market_demand_fit":          valueOr(c.Market.MarketDemandFit, defaultSignal),
		"availability":               valueOr(c.Market.Availability, defaultFavourable),
		"offer_competitiveness":      valueOr(c.Market.OfferCompetitiveness, defaultSignal),
		"notice_period_fit":          valueOr(c.Market.NoticePeriodFit, defaultFavourable),
		"location_market_fit":        valueOr(c.Market.LocationMarketFit, defaultSignal),
		"profile_rarity":             valueOr(c.Market.ProfileRarity, defaultNeutral),
		FactorNegotiationFlexibility: valueOr(c.Market.NegotiationFlexibility, defaultSignal),
	}
}

func yearsAlignment(years, minYears, maxYears float64) float64 {
	if minYears <= 0 && maxYears <= 0 {
		return defaultFavourable
	}
	if years < minYears {
		if minYears <= 0 {
			return 1.0
		}
		return clamp01(years / minYears)
	}
	if maxYears > 0 && years > maxYears {
		// overqualification tapers gently, never below 0.7
		over := years - maxYears
		v := 1.0 - 0.05*over
		if v < 0.7 {
			v = 0.7
		}
		return v
	}
	return 1.0
}

func salaryAlignment(expected, salaryMin, salaryMax float64) float64 {
	if salaryMax <= 0 || expected <= 0 {
		return defaultFavourable
	}
	if expected <= salaryMax {
		if salaryMin > 0 && expected < salaryMin {
			// below band: affordable but likely mispitched
			return 0.85
		}
		return 1.0
	}
	return clamp01(salaryMax / expected)
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return clamp01(*v)
}
