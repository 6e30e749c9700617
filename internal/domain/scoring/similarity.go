package scoring

import "strings"

const (
	extraSkillBonusPer = 0.04
	extraSkillBonusCap = 0.20
	certificationFloor = 0.3
)

// SkillMatch scores candidate skills against a required set. The score is
// asymmetric with respect to the required set: |intersection| / |required|,
// plus a bonus of up to +0.20 for extra candidate skills beyond the required
// ones, capped at 1.0.
//
// An empty required set means no constraint (1.0). An empty candidate set
// against a non-empty required set scores 0.0.
func SkillMatch(candidateSkills, requiredSkills []string) float64 {
	required := toSet(requiredSkills)
	if len(required) == 0 {
		return 1.0
	}
	have := toSet(candidateSkills)
	if len(have) == 0 {
		return 0.0
	}

	matched := 0
	for s := range required {
		if _, ok := have[s]; ok {
			matched++
		}
	}
	score := float64(matched) / float64(len(required))

	extra := len(have) - matched
	if extra > 0 {
		bonus := float64(extra) * extraSkillBonusPer
		if bonus > extraSkillBonusCap {
			bonus = extraSkillBonusCap
		}
		score += bonus
	}
	return clamp01(score)
}

// CertificationMatch is analogous to SkillMatch but floored at 0.3 whenever
// the candidate holds any certification: credentials are a secondary signal
// and are never driven fully to zero if present.
func CertificationMatch(candidateCerts, requiredCerts []string) float64 {
	score := SkillMatch(candidateCerts, requiredCerts)
	if len(toSet(candidateCerts)) > 0 && score < certificationFloor {
		return certificationFloor
	}
	return score
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		key := strings.ToLower(strings.TrimSpace(it))
		if key == "" {
			continue
		}
		set[key] = struct{}{}
	}
	return set
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
