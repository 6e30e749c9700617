package scoring

import (
	"math"
	"testing"

	"talent-match/internal/domain/candidate"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/match"
)

func fptr(v float64) *float64 { return &v }

func TestWeights_SumToOne(t *testing.T) {
	w := Weights()
	if len(w) != 9 {
		t.Fatalf("expected 9 categories, got %d", len(w))
	}
	sum := 0.0
	for _, v := range w {
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-6 {
		t.Fatalf("weights must sum to 1.0, got %v", sum)
	}
	for _, cat := range match.Categories() {
		if _, ok := w[cat]; !ok {
			t.Fatalf("missing weight for category %s", cat)
		}
	}
}

func TestScoreAll_EmptyProfileInRange(t *testing.T) {
	s := NewCategoryScorer(nil)
	scores := s.ScoreAll(&candidate.Profile{}, &job.Requisition{})
	if len(scores) != 9 {
		t.Fatalf("expected 9 category scores, got %d", len(scores))
	}
	for _, cs := range scores {
		if cs.Score < 0 || cs.Score > 1 {
			t.Fatalf("category %s out of range: %v", cs.Category, cs.Score)
		}
		if len(cs.Factors) != 8 {
			t.Fatalf("category %s expected 8 factors, got %d", cs.Category, len(cs.Factors))
		}
	}
}

// Absence of optional signals must never score higher than an explicitly
// strong profile.
func TestScoreAll_AbsenceNeverRaises(t *testing.T) {
	s := NewCategoryScorer(nil)

	strong := &candidate.Profile{
		Skills: []string{"go", "postgres"},
		SoftSkills: candidate.SoftSkillSet{
			Communication:         fptr(1),
			Teamwork:              fptr(1),
			Leadership:            fptr(1),
			ProblemSolving:        fptr(1),
			Adaptability:          fptr(1),
			EmotionalIntelligence: fptr(1),
			Creativity:            fptr(1),
			ConflictResolution:    fptr(1),
		},
	}
	req := &job.Requisition{RequiredSkills: []string{"go", "postgres"}}

	strongScores := s.ScoreAll(strong, req)
	emptyScores := s.ScoreAll(&candidate.Profile{Skills: []string{"go", "postgres"}}, req)

	byCat := func(scores []match.CategoryScore, cat match.Category) float64 {
		for _, cs := range scores {
			if cs.Category == cat {
				return cs.Score
			}
		}
		t.Fatalf("category %s not found", cat)
		return 0
	}

	if byCat(emptyScores, match.CategorySoftSkills) > byCat(strongScores, match.CategorySoftSkills) {
		t.Fatalf("absent soft-skill signals scored higher than explicit 1.0 signals")
	}
}

func TestYearsAlignment(t *testing.T) {
	cases := []struct {
		name            string
		years, min, max float64
		want            float64
	}{
		{"no range configured", 10, 0, 0, defaultFavourable},
		{"below minimum", 2, 4, 8, 0.5},
		{"within range", 5, 4, 8, 1.0},
		{"slightly over", 10, 4, 8, 0.9},
		{"far over floors at 0.7", 30, 4, 8, 0.7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := yearsAlignment(tc.years, tc.min, tc.max)
			if !almostEqual(got, tc.want) {
				t.Fatalf("yearsAlignment(%v,%v,%v) = %v, want %v", tc.years, tc.min, tc.max, got, tc.want)
			}
		})
	}
}

func TestSalaryAlignment(t *testing.T) {
	cases := []struct {
		name               string
		expected, min, max float64
		want               float64
	}{
		{"no band", 90000, 0, 0, defaultFavourable},
		{"within band", 90000, 80000, 100000, 1.0},
		{"below band", 70000, 80000, 100000, 0.85},
		{"above band scales down", 125000, 80000, 100000, 0.8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := salaryAlignment(tc.expected, tc.min, tc.max)
			if !almostEqual(got, tc.want) {
				t.Fatalf("salaryAlignment(%v,%v,%v) = %v, want %v", tc.expected, tc.min, tc.max, got, tc.want)
			}
		})
	}
}
