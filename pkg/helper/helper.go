package helper

import (
	"fmt"
	"footballdrivebot/pkg/field"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// FormatYardLine writes a team-relative yard line the way it is called on
// the field: own half by the team's name, the other half by the opponent's.
func FormatYardLine(team field.Team, yard float64) string {
	yard = math.Round(yard)
	switch {
	case yard == 50:
		return "50"
	case yard < 50:
		return fmt.Sprintf("%s %.0f", strings.ToUpper(team.String()), yard)
	default:
		return fmt.Sprintf("%s %.0f", strings.ToUpper(team.Opponent().String()), 100-yard)
	}
}

// FormatYards renders a signed gain, e.g. "+7", "-3", "0".
func FormatYards(yards float64) string {
	if yards == 0 {
		return "0"
	}
	return fmt.Sprintf("%+g", yards)
}

func ParseYards(s string) (float64, error) {
	s = strings.TrimSpace(s)
	yards, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(yards) || math.IsInf(yards, 0) {
		return 0, fmt.Errorf("%q is not a number of yards", s)
	}
	return yards, nil
}

// ParseColor reads #RRGGBB or #RRGGBBAA.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
