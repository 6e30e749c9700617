package scoring

import (
	"fmt"
	"math"

	"talent-match/internal/domain/match"
)

const (
	deiBoostThreshold   = 0.7
	deiPenaltyThreshold = 0.3
	deiBoostFactor      = 1.05
	deiPenaltyFactor    = 0.95

	confidenceCap = 0.95

	weakCategoryThreshold    = 0.4
	tenureRiskThreshold      = 0.5
	geoStabilityThreshold    = 0.6
	negotiationRiskThreshold = 0.4
)

type Aggregation struct {
	Overall         float64
	BaseOverall     float64
	Confidence      float64
	GrowthPotential float64
	RiskFactors     []string
	Recommendations []string
}

// Aggregator fuses category scores and the DEI signal into an overall match
// score. The DEI modifier changes the overall score by at most 5% in either
// direction.
type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

func (a *Aggregator) Aggregate(scores []match.CategoryScore, dei match.DEIAssessment) Aggregation {
	base := 0.0
	byCategory := make(map[match.Category]match.CategoryScore, len(scores))
	for _, cs := range scores {
		base += cs.Score * categoryWeights[cs.Category]
		byCategory[cs.Category] = cs
	}
	base = clamp01(base)

	overall := base
	switch {
	case dei.Combined > deiBoostThreshold:
		overall = math.Min(1.0, overall*deiBoostFactor)
	case dei.Combined < deiPenaltyThreshold:
		overall = overall * deiPenaltyFactor
	}

	growthCat := byCategory[match.CategoryGrowthPotential]
	softCat := byCategory[match.CategorySoftSkills]
	growth := 0.3*factorOr(growthCat, FactorLearningAgility, defaultSignal) +
		0.3*factorOr(growthCat, FactorCareerAmbition, defaultSignal) +
		0.2*factorOr(softCat, FactorAdaptability, defaultSignal) +
		0.2*growthCat.Score

	return Aggregation{
		Overall:         overall,
		BaseOverall:     base,
		Confidence:      math.Min(confidenceCap, overall*1.1),
		GrowthPotential: clamp01(growth),
		RiskFactors:     riskFactors(scores, byCategory),
		Recommendations: recommendations(overall, scores),
	}
}

func riskFactors(scores []match.CategoryScore, byCategory map[match.Category]match.CategoryScore) []string {
	risks := make([]string, 0)
	for _, cs := range scores {
		if cs.Score < weakCategoryThreshold {
			risks = append(risks, fmt.Sprintf("weak %s score (%.2f)", cs.Category, cs.Score))
		}
	}

	stability := byCategory[match.CategoryStabilityFactors]
	if v, ok := stability.Factors[FactorTenurePattern]; ok && v < tenureRiskThreshold {
		risks = append(risks, "short-tenure pattern in work history")
	}
	if v, ok := stability.Factors[FactorGeographicStability]; ok && v < geoStabilityThreshold {
		risks = append(risks, "low geographic stability")
	}

	marketCat := byCategory[match.CategoryMarketCompetitiveness]
	if v, ok := marketCat.Factors[FactorNegotiationFlexibility]; ok && v < negotiationRiskThreshold {
		risks = append(risks, "limited negotiation flexibility")
	}
	return risks
}

func recommendations(overall float64, scores []match.CategoryScore) []string {
	recs := make([]string, 0)
	switch {
	case overall >= 0.8:
		recs = append(recs, "strong match: advance to interview")
	case overall >= 0.6:
		recs = append(recs, "good match: screen with focus on weaker categories")
	default:
		recs = append(recs, "partial match: consider for adjacent roles or talent pool")
	}
	for _, cs := range scores {
		if cs.Score < 0.5 {
			recs = append(recs, fmt.Sprintf("probe %s during interview", cs.Category))
		}
	}
	return recs
}

func factorOr(cs match.CategoryScore, name string, def float64) float64 {
	if v, ok := cs.Factors[name]; ok {
		return v
	}
	return def
}
