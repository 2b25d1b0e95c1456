// Package compat implements the academic-profile compatibility score.
// It is pure: no I/O, no clock, no shared state.
package compat

import (
	"github.com/heartmarshall/roommatch-backend/internal/domain"
)

// Factor weights. They sum to 1.0.
const (
	WeightUniversity     = 0.40
	WeightFieldOfStudy   = 0.25
	WeightEducationLevel = 0.20
	WeightAge            = 0.15
)

// MaxAgeGap is the age difference (in years) at which the age factor reaches 0.
const MaxAgeGap = 10

// HighQualityThreshold is the minimum overall score for a "high quality" match.
const HighQualityThreshold = 0.70

// Breakdown holds the per-factor values, each in [0,1].
type Breakdown struct {
	University     float64 `json:"university"`
	FieldOfStudy   float64 `json:"fieldOfStudy"`
	EducationLevel float64 `json:"educationLevel"`
	Age            float64 `json:"age"`
}

// Score is the result of comparing two profiles.
type Score struct {
	Overall   float64   `json:"overall"`
	Breakdown Breakdown `json:"breakdown"`
}

// Compute scores profile a against profile b. The result is symmetric.
func Compute(a, b domain.AcademicProfile) Score {
	bd := Breakdown{
		University:     exactMatch(a.Institute, b.Institute),
		FieldOfStudy:   exactMatch(a.FieldOfStudy, b.FieldOfStudy),
		EducationLevel: educationLevelFactor(a.EducationLevel, b.EducationLevel),
		Age:            ageFactor(a.Age, b.Age),
	}

	// Summed in percent so that four full matches give exactly 1.0.
	overall := (100*WeightUniversity*bd.University +
		100*WeightFieldOfStudy*bd.FieldOfStudy +
		100*WeightEducationLevel*bd.EducationLevel +
		100*WeightAge*bd.Age) / 100

	return Score{Overall: clamp01(overall), Breakdown: bd}
}

// exactMatch is case-sensitive. Empty strings never match.
func exactMatch(a, b string) float64 {
	if a == "" || b == "" || a != b {
		return 0
	}
	return 1
}

// educationLevelFactor falls off by ordinal distance: 0 -> 1.0, 1 -> 0.5, 2 -> 0.0.
func educationLevelFactor(a, b domain.EducationLevel) float64 {
	oa, ob := a.Ordinal(), b.Ordinal()
	if oa == 0 || ob == 0 {
		return 0
	}
	dist := oa - ob
	if dist < 0 {
		dist = -dist
	}
	return clamp01(1 - 0.5*float64(dist))
}

// ageFactor decays linearly from 1 at equal ages to 0 at MaxAgeGap.
func ageFactor(a, b int) float64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	gap := a - b
	if gap < 0 {
		gap = -gap
	}
	return clamp01(1 - float64(gap)/MaxAgeGap)
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
