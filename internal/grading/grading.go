// Package grading maps raw test points onto the 1..6 grade scale used
// across all training tiers.
package grading

import "github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/model"

// Classify returns the grade for the given points under the tier's scale.
// Theorie and Grundausbildung score out of 50, StVO out of 25. The function
// is total: out-of-range and negative points land in the lowest band.
func Classify(points int, t model.TrainingType) int {
	if t == model.TrainingStvo {
		switch {
		case points >= 22:
			return 1
		case points >= 17:
			return 2
		case points >= 13:
			return 3
		case points >= 9:
			return 4
		case points >= 4:
			return 5
		default:
			return 6
		}
	}
	switch {
	case points >= 45:
		return 1
	case points >= 40:
		return 2
	case points >= 33:
		return 3
	case points >= 25:
		return 4
	case points >= 15:
		return 5
	default:
		return 6
	}
}

// Passed reports whether a grade counts as passing (4 or better).
func Passed(grade int) bool {
	return grade <= 4
}

// NewEntry builds an evaluation entry for a participant, deriving grade and
// pass state from the points. This is the only constructor; nothing else may
// set Grade or Passed.
func NewEntry(userID string, points int, t model.TrainingType) model.EvaluationEntry {
	grade := Classify(points, t)
	return model.EvaluationEntry{
		UserID: userID,
		Points: points,
		Grade:  grade,
		Passed: Passed(grade),
	}
}
