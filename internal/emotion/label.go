package emotion

import "fmt"

// Mood banding thresholds, in percent.
const (
	happyFloor   = 60.0
	neutralFloor = 40.0
	neutralCeil  = 60.0
	unhappyCeil  = 40.0
)

// Percent converts a confidence in [0,1] to a percentage.
func Percent(confidence float64) float64 {
	return confidence * 100
}

// FormatLabel maps a dominant expression and its percentage to the display
// string. It is a pure function: the same inputs always produce the same
// output. The branches are mutually exclusive and checked in order:
//
//	happy at or above 60%          -> "Happy: {pct}% (Above 60%)"
//	neutral between 40% and 60%    -> "Neutral: {pct}% (Between 40% to 60%)"
//	sad, or angry below 40%        -> "Unhappy: {pct}% (Below 40%)"
//	anything else                  -> bare percentage
func FormatLabel(dominant Label, pct float64) string {
	switch {
	case dominant == Happy && pct >= happyFloor:
		return fmt.Sprintf("Happy: %.2f%% (Above 60%%)", pct)
	case dominant == Neutral && pct >= neutralFloor && pct <= neutralCeil:
		return fmt.Sprintf("Neutral: %.2f%% (Between 40%% to 60%%)", pct)
	case dominant == Sad || (dominant == Angry && pct < unhappyCeil):
		return fmt.Sprintf("Unhappy: %.2f%% (Below 40%%)", pct)
	default:
		return fmt.Sprintf("%.2f%%", pct)
	}
}
