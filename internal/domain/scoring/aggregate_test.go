package scoring

import (
	"math"
	"strings"
	"testing"

	"talent-match/internal/domain/match"
)

func uniformScores(v float64) []match.CategoryScore {
	out := make([]match.CategoryScore, 0, 9)
	for _, cat := range match.Categories() {
		out = append(out, match.CategoryScore{Category: cat, Score: v, Factors: map[string]float64{}})
	}
	return out
}

func deiWithCombined(v float64) match.DEIAssessment {
	return match.DEIAssessment{Combined: v}
}

func TestAggregate_WeightedSum(t *testing.T) {
	a := NewAggregator()

	scores := uniformScores(0.5)
	scores[0].Score = 0.9 // technical_skills, weight 0.20

	want := 0.0
	for _, cs := range scores {
		want += cs.Score * categoryWeights[cs.Category]
	}

	got := a.Aggregate(scores, deiWithCombined(0.5))
	if !almostEqual(got.BaseOverall, want) {
		t.Fatalf("base overall: got %v, want %v", got.BaseOverall, want)
	}
	if !almostEqual(got.Overall, got.BaseOverall) {
		t.Fatalf("neutral DEI must not modify the overall score: %v vs %v", got.Overall, got.BaseOverall)
	}
}

func TestAggregate_DEIModifierBounds(t *testing.T) {
	a := NewAggregator()
	scores := uniformScores(0.6)

	boosted := a.Aggregate(scores, deiWithCombined(0.8))
	if !almostEqual(boosted.Overall, math.Min(1.0, boosted.BaseOverall*1.05)) {
		t.Fatalf("strong DEI should boost by 5%%: got %v from base %v", boosted.Overall, boosted.BaseOverall)
	}

	penalized := a.Aggregate(scores, deiWithCombined(0.2))
	if !almostEqual(penalized.Overall, penalized.BaseOverall*0.95) {
		t.Fatalf("weak DEI should penalize by 5%%: got %v from base %v", penalized.Overall, penalized.BaseOverall)
	}

	high := a.Aggregate(uniformScores(1.0), deiWithCombined(0.9))
	if high.Overall > 1.0 {
		t.Fatalf("boost must cap at 1.0, got %v", high.Overall)
	}
}

func TestAggregate_ConfidenceCapped(t *testing.T) {
	a := NewAggregator()

	low := a.Aggregate(uniformScores(0.5), deiWithCombined(0.5))
	if !almostEqual(low.Confidence, low.Overall*1.1) {
		t.Fatalf("confidence should be overall*1.1 below the cap, got %v", low.Confidence)
	}

	high := a.Aggregate(uniformScores(0.95), deiWithCombined(0.5))
	if !almostEqual(high.Confidence, confidenceCap) {
		t.Fatalf("confidence must cap at %v, got %v", confidenceCap, high.Confidence)
	}
}

func TestAggregate_GrowthFormula(t *testing.T) {
	a := NewAggregator()

	scores := uniformScores(0.5)
	for i := range scores {
		switch scores[i].Category {
		case match.CategoryGrowthPotential:
			scores[i].Score = 0.7
			scores[i].Factors = map[string]float64{
				FactorLearningAgility: 0.8,
				FactorCareerAmbition:  0.6,
			}
		case match.CategorySoftSkills:
			scores[i].Factors = map[string]float64{FactorAdaptability: 0.5}
		}
	}

	got := a.Aggregate(scores, deiWithCombined(0.5))
	want := 0.3*0.8 + 0.3*0.6 + 0.2*0.5 + 0.2*0.7
	if !almostEqual(got.GrowthPotential, want) {
		t.Fatalf("growth potential: got %v, want %v", got.GrowthPotential, want)
	}
}

func TestAggregate_RiskFactorsAndRecommendations(t *testing.T) {
	a := NewAggregator()

	scores := uniformScores(0.6)
	for i := range scores {
		switch scores[i].Category {
		case match.CategoryStabilityFactors:
			scores[i].Score = 0.3
			scores[i].Factors = map[string]float64{FactorTenurePattern: 0.4}
		}
	}

	got := a.Aggregate(scores, deiWithCombined(0.5))

	hasRisk := func(substr string) bool {
		for _, r := range got.RiskFactors {
			if strings.Contains(r, substr) {
				return true
			}
		}
		return false
	}
	if !hasRisk("weak stability_factors") {
		t.Fatalf("expected weak-category risk, got %v", got.RiskFactors)
	}
	if !hasRisk("short-tenure") {
		t.Fatalf("expected tenure risk, got %v", got.RiskFactors)
	}

	strong := a.Aggregate(uniformScores(0.9), deiWithCombined(0.5))
	if len(strong.Recommendations) == 0 || !strings.Contains(strong.Recommendations[0], "advance to interview") {
		t.Fatalf("expected advance recommendation for a strong match, got %v", strong.Recommendations)
	}
}
