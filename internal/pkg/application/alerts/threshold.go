package alerts

import (
	"math"

	db "github.com/pesu-pangasinan/outbreak-surveillance/internal/pkg/infrastructure/repositories/database/alerts"
)

// Fixed case-count cutoffs. A count at the exact cutoff meets the tier.
const (
	ThresholdYellow = 10
	ThresholdOrange = 25
	ThresholdRed    = 50
)

type Level int

const (
	LevelNone Level = iota
	LevelYellow
	LevelOrange
	LevelRed
)

func (l Level) String() string {
	switch l {
	case LevelYellow:
		return "yellow"
	case LevelOrange:
		return "orange"
	case LevelRed:
		return "red"
	}
	return "none"
}

// AlertLevel maps the classification colour to the level stored on an
// outbreak alert record.
func (l Level) AlertLevel() string {
	switch l {
	case LevelYellow:
		return db.AlertLevelModerate
	case LevelOrange:
		return db.AlertLevelHigh
	case LevelRed:
		return db.AlertLevelSevere
	}
	return ""
}

type ThresholdResult struct {
	DiseaseID      uint
	MunicipalityID uint

	CaseCount          int
	Level              Level
	ThresholdUsed      int
	PercentOfThreshold int
}

// Classify maps a case count onto the fixed threshold tiers. The highest
// matching tier wins. ThresholdUsed and PercentOfThreshold are display
// values and are zero when no tier is met.
func Classify(caseCount int) ThresholdResult {
	result := ThresholdResult{
		CaseCount: caseCount,
		Level:     LevelNone,
	}

	switch {
	case caseCount >= ThresholdRed:
		result.Level = LevelRed
		result.ThresholdUsed = ThresholdRed
	case caseCount >= ThresholdOrange:
		result.Level = LevelOrange
		result.ThresholdUsed = ThresholdOrange
	case caseCount >= ThresholdYellow:
		result.Level = LevelYellow
		result.ThresholdUsed = ThresholdYellow
	default:
		return result
	}

	result.PercentOfThreshold = int(math.Round(float64(caseCount) / float64(result.ThresholdUsed) * 100))

	return result
}
