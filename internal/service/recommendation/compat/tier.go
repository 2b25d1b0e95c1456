package compat

// Tier is the UI label attached to a score.
type Tier string

const (
	TierExcellent Tier = "Excellent"
	TierVeryGood  Tier = "Very Good"
	TierGood      Tier = "Good"
	TierFair      Tier = "Fair"
	TierPoor      Tier = "Poor"
)

// Classify maps an overall score to its tier. Boundaries are inclusive.
func Classify(overall float64) Tier {
	switch {
	case overall >= 0.90:
		return TierExcellent
	case overall >= 0.75:
		return TierVeryGood
	case overall >= 0.60:
		return TierGood
	case overall >= 0.40:
		return TierFair
	default:
		return TierPoor
	}
}

const (
	ReasonSameUniversity   = "Same university"
	ReasonSameField        = "Same field of study"
	ReasonSimilarEducation = "Similar education level"
	ReasonCloseInAge       = "Close in age"
	ReasonNoOverlap        = "Different academic background"
)

// Reason names the highest-weighted factor that contributed to the score.
func Reason(s Score) string {
	switch {
	case s.Breakdown.University > 0:
		return ReasonSameUniversity
	case s.Breakdown.FieldOfStudy > 0:
		return ReasonSameField
	case s.Breakdown.EducationLevel > 0:
		return ReasonSimilarEducation
	case s.Breakdown.Age > 0:
		return ReasonCloseInAge
	default:
		return ReasonNoOverlap
	}
}
