package model

type TrainingType string

const (
	TrainingTheorie TrainingType = "theorie"
	TrainingGrund   TrainingType = "grund"
	TrainingStvo    TrainingType = "stvo"
)

// TrainingTypes lists all tiers in progression order.
var TrainingTypes = []TrainingType{TrainingTheorie, TrainingGrund, TrainingStvo}

func (t TrainingType) Valid() bool {
	switch t {
	case TrainingTheorie, TrainingGrund, TrainingStvo:
		return true
	}
	return false
}

// MaxPoints is the highest achievable score for the tier's written test.
func (t TrainingType) MaxPoints() int {
	if t == TrainingStvo {
		return 25
	}
	return 50
}

func (t TrainingType) DisplayName() string {
	switch t {
	case TrainingTheorie:
		return "Theorie"
	case TrainingGrund:
		return "Grundausbildung"
	case TrainingStvo:
		return "StVO Grundausbildung"
	}
	return string(t)
}
