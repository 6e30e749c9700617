package scoring

import (
	"testing"

	"talent-match/internal/domain/candidate"
)

func TestDEIAnalyze_EmptyProfileIsNeutral(t *testing.T) {
	a := NewDEIAnalyzer()
	got := a.Analyze(&candidate.Profile{})

	if len(got.Diversity.Breakdown) != 12 {
		t.Fatalf("expected 12 diversity dimensions, got %d", len(got.Diversity.Breakdown))
	}
	if len(got.Equity.Breakdown) != 8 {
		t.Fatalf("expected 8 equity indicators, got %d", len(got.Equity.Breakdown))
	}
	if len(got.Inclusion.Breakdown) != 8 {
		t.Fatalf("expected 8 inclusion factors, got %d", len(got.Inclusion.Breakdown))
	}

	if !almostEqual(got.Combined, defaultNeutral) {
		t.Fatalf("expected neutral combined score, got %v", got.Combined)
	}
	if len(got.Diversity.Strengths) != 0 || len(got.Diversity.Gaps) != 0 {
		t.Fatalf("neutral profile must have no strengths or gaps, got %v / %v",
			got.Diversity.Strengths, got.Diversity.Gaps)
	}
}

func TestDEIAnalyze_StrengthsAndGaps(t *testing.T) {
	a := NewDEIAnalyzer()
	p := &candidate.Profile{}
	p.DEI.Diversity.LanguageDiversity = fptr(0.9)
	p.DEI.Diversity.EducationalPath = fptr(0.0)

	got := a.Analyze(p)

	if len(got.Diversity.Strengths) != 1 || got.Diversity.Strengths[0] != "language_diversity" {
		t.Fatalf("expected language_diversity strength, got %v", got.Diversity.Strengths)
	}
	if len(got.Diversity.Gaps) != 1 || got.Diversity.Gaps[0] != "educational_path" {
		t.Fatalf("expected educational_path gap, got %v", got.Diversity.Gaps)
	}
	if got.Diversity.Score >= defaultNeutral {
		t.Fatalf("0.9 and 0.0 against ten neutral dimensions should drag the mean below neutral, got %v", got.Diversity.Score)
	}
}
