package stats

import (
	"math"

	"github.com/2beens/fittrack/pkg"
)

type Change string

const (
	ChangePositive Change = "positive"
	ChangeNegative Change = "negative"
	ChangeNeutral  Change = "neutral"
)

const (
	ColorBigGain   = "#51cf66"
	ColorSmallGain = "#94d82d"
	ColorSame      = "#f4a261"
	ColorSmallLoss = "#ffa94d"
	ColorBigLoss   = "#ff6b6b"

	maxProgressPercent = 150
)

func ChangeClass(current, expected float64) Change {
	switch {
	case current > expected:
		return ChangePositive
	case current < expected:
		return ChangeNegative
	default:
		return ChangeNeutral
	}
}

func ChangeIcon(current, expected float64) string {
	switch ChangeClass(current, expected) {
	case ChangePositive:
		return "↗"
	case ChangeNegative:
		return "↘"
	default:
		return "→"
	}
}

// ChangePercent is the whole-number change of current relative to expected, 0 when expected is 0.
func ChangePercent(current, expected float64) float64 {
	if expected == 0 {
		return 0
	}
	return pkg.RoundHalfUp((current - expected) * 100 / expected)
}

// ProgressPercent is current relative to expected, capped at 150.
func ProgressPercent(current, expected float64) float64 {
	if expected == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return math.Min(maxProgressPercent, pkg.RoundHalfUp(current*100/expected))
}

func ProgressColor(current, expected float64) string {
	percent := ChangePercent(current, expected)
	switch {
	case percent > 20:
		return ColorBigGain
	case percent > 0:
		return ColorSmallGain
	case percent == 0:
		return ColorSame
	case percent > -20:
		return ColorSmallLoss
	default:
		return ColorBigLoss
	}
}
