package scoring

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSkillMatch_NoRequirements(t *testing.T) {
	if got := SkillMatch([]string{"go"}, nil); got != 1.0 {
		t.Fatalf("expected 1.0 for empty required set, got %v", got)
	}
	if got := SkillMatch(nil, nil); got != 1.0 {
		t.Fatalf("expected 1.0 for both empty, got %v", got)
	}
}

func TestSkillMatch_EmptyCandidate(t *testing.T) {
	if got := SkillMatch(nil, []string{"go"}); got != 0.0 {
		t.Fatalf("expected 0.0 for empty candidate set, got %v", got)
	}
}

func TestSkillMatch_PartialOverlap(t *testing.T) {
	got := SkillMatch([]string{"python", "django"}, []string{"python", "django", "sql"})
	if !almostEqual(got, 2.0/3.0) {
		t.Fatalf("expected 2/3, got %v", got)
	}
}

func TestSkillMatch_ExtraSkillBonus(t *testing.T) {
	required := []string{"a", "b", "c", "d"}
	candidate := []string{"a", "b", "x", "y", "z"}
	got := SkillMatch(candidate, required)
	if !almostEqual(got, 0.5+3*0.04) {
		t.Fatalf("expected 0.62, got %v", got)
	}
}

func TestSkillMatch_BonusCapped(t *testing.T) {
	required := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	candidate := []string{"a", "b", "c", "d", "e", "p", "q", "r", "s", "t", "u"}
	got := SkillMatch(candidate, required)
	if !almostEqual(got, 0.5+0.20) {
		t.Fatalf("expected bonus capped at 0.20, got %v", got)
	}
}

func TestSkillMatch_CaseInsensitive(t *testing.T) {
	got := SkillMatch([]string{"Python", " GO "}, []string{"python", "go"})
	if got != 1.0 {
		t.Fatalf("expected case-insensitive full match, got %v", got)
	}
}

func TestCertificationMatch_Floor(t *testing.T) {
	got := CertificationMatch([]string{"ckad"}, []string{"aws-saa", "gcp-ace", "cka"})
	if got != certificationFloor {
		t.Fatalf("expected floor %v when candidate holds any certification, got %v", certificationFloor, got)
	}
}

func TestCertificationMatch_NoCerts(t *testing.T) {
	got := CertificationMatch(nil, []string{"aws-saa"})
	if got != 0.0 {
		t.Fatalf("expected 0.0 without certifications, got %v", got)
	}
}
