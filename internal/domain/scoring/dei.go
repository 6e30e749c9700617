package scoring

import (
	"sort"

	"talent-match/internal/domain/candidate"
	"talent-match/internal/domain/match"
)

const (
	deiStrengthThreshold = 0.7
	deiGapThreshold      = 0.5
)

// DEIAnalyzer runs three independent sub-analyses, each an unweighted mean
// over a fixed factor set: diversity (12 dimensions), equity (8 indicators),
// inclusion (8 factors). The combined score is the mean of the three.
type DEIAnalyzer struct{}

func NewDEIAnalyzer() *DEIAnalyzer {
	return &DEIAnalyzer{}
}

func (a *DEIAnalyzer) Analyze(c *candidate.Profile) match.DEIAssessment {
	diversity := subAssessment(diversityBreakdown(c.DEI.Diversity))
	equity := subAssessment(equityBreakdown(c.DEI.Equity))
	inclusion := subAssessment(inclusionBreakdown(c.DEI.Inclusion))

	return match.DEIAssessment{
		Diversity: diversity,
		Equity:    equity,
		Inclusion: inclusion,
		Combined:  (diversity.Score + equity.Score + inclusion.Score) / 3,
	}
}

func subAssessment(breakdown map[string]float64) match.DEISubAssessment {
	sum := 0.0
	strengths := make([]string, 0)
	gaps := make([]string, 0)
	for name, v := range breakdown {
		sum += v
		if v > deiStrengthThreshold {
			strengths = append(strengths, name)
		}
		if v < deiGapThreshold {
			gaps = append(gaps, name)
		}
	}
	sort.Strings(strengths)
	sort.Strings(gaps)

	score := defaultNeutral
	if len(breakdown) > 0 {
		score = clamp01(sum / float64(len(breakdown)))
	}
	return match.DEISubAssessment{
		Score:     score,
		Breakdown: breakdown,
		Strengths: strengths,
		Gaps:      gaps,
	}
}

func diversityBreakdown(d candidate.DiversityDimensions) map[string]float64 {
	return map[string]float64{
		"cultural_background":       valueOr(d.CulturalBackground, defaultNeutral),
		"language_diversity":        valueOr(d.LanguageDiversity, defaultNeutral),
		"educational_path":          valueOr(d.EducationalPath, defaultNeutral),
		"geographic_origin":         valueOr(d.GeographicOrigin, defaultNeutral),
		"career_path_diversity":     valueOr(d.CareerPathDiversity, defaultNeutral),
		"industry_breadth":          valueOr(d.IndustryBreadth, defaultNeutral),
		"socioeconomic_perspective": valueOr(d.SocioeconomicPerspective, defaultNeutral),
		"generational_perspective":  valueOr(d.GenerationalPerspective, defaultNeutral),
		"cognitive_style":           valueOr(d.CognitiveStyle, defaultNeutral),
		"experiential_range":        valueOr(d.ExperientialRange, defaultNeutral),
		"community_involvement":     valueOr(d.CommunityInvolvement, defaultNeutral),
		"perspective_contribution":  valueOr(d.PerspectiveContribution, defaultNeutral),
	}
}

func equityBreakdown(e candidate.EquityIndicators) map[string]float64 {
	return map[string]float64{
		"access_to_opportunity": valueOr(e.AccessToOpportunity, defaultNeutral),
		"advancement_equity":    valueOr(e.AdvancementEquity, defaultNeutral),
		"compensation_equity":   valueOr(e.CompensationEquity, defaultNeutral),
		"recognition_equity":    valueOr(e.RecognitionEquity, defaultNeutral),
		"development_access":    valueOr(e.DevelopmentAccess, defaultNeutral),
		"sponsorship_access":    valueOr(e.SponsorshipAccess, defaultNeutral),
		"workload_equity":       valueOr(e.WorkloadEquity, defaultNeutral),
		"evaluation_fairness":   valueOr(e.EvaluationFairness, defaultNeutral),
	}
}

func inclusionBreakdown(i candidate.InclusionFactors) map[string]float64 {
	return map[string]float64{
		"belonging_signal":      valueOr(i.BelongingSignal, defaultNeutral),
		"voice_and_input":       valueOr(i.VoiceAndInput, defaultNeutral),
		"collaboration_comfort": valueOr(i.CollaborationComfort, defaultNeutral),
		"psychological_safety":  valueOr(i.PsychologicalSafety, defaultNeutral),
		"network_inclusion":     valueOr(i.NetworkInclusion, defaultNeutral),
		"mentoring_inclusion":   valueOr(i.MentoringInclusion, defaultNeutral),
		"decision_inclusion":    valueOr(i.DecisionInclusion, defaultNeutral),
		"cultural_celebration":  valueOr(i.CulturalCelebration, defaultNeutral),
	}
}
