package policy

// ColorToken is a presentation color hint for a strength rating. The UI maps
// it onto the strength meter; the exact values are a presentation concern.
type ColorToken string

const (
	colorWeak   ColorToken = "#E53E3E"
	colorFair   ColorToken = "#DD6B20"
	colorGood   ColorToken = "#38A169"
	colorStrong ColorToken = "#276749"
)

// StrengthColor returns the display color token for a rating.
func StrengthColor(s Strength) ColorToken {
	switch s {
	case StrengthFair:
		return colorFair
	case StrengthGood:
		return colorGood
	case StrengthStrong:
		return colorStrong
	default:
		return colorWeak
	}
}

// StrengthLabel returns the display label for a rating.
func StrengthLabel(s Strength) string {
	switch s {
	case StrengthFair:
		return "Fair"
	case StrengthGood:
		return "Good"
	case StrengthStrong:
		return "Strong"
	default:
		return "Weak"
	}
}
