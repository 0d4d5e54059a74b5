package field

import (
	"fmt"
	"math"
	"strings"
)

// Field geometry in pixel units.
const (
	Width         = 720.0
	Height        = 300.0
	EndZoneWidth  = 60.0
	Yards         = 100.0
	yardScale     = 3.0
	pixelScale    = 2.0
	PixelsPerYard = yardScale * pixelScale

	// GoalLineLeft and GoalLineRight bound every position on the field.
	GoalLineLeft  = EndZoneWidth
	GoalLineRight = Width - EndZoneWidth
)

type Team int

const (
	Home Team = iota
	Away
)

func (t Team) String() string {
	switch t {
	case Home:
		return "Home"
	case Away:
		return "Away"
	}
	return fmt.Sprintf("Team(%d)", int(t))
}

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == Home {
		return Away
	}
	return Home
}

func ParseTeam(s string) (Team, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "home", "h":
		return Home, nil
	case "away", "a":
		return Away, nil
	}
	return Home, fmt.Errorf("unknown team %q", s)
}

// YardToPixel converts a team-relative yard line into an absolute x position.
func YardToPixel(yard float64, team Team) float64 {
	if team == Home {
		return yard*PixelsPerYard + GoalLineLeft
	}
	return GoalLineRight - yard*PixelsPerYard
}

// PixelToYard is the inverse of YardToPixel.
func PixelToYard(pixel float64, team Team) float64 {
	if team == Home {
		return (pixel - GoalLineLeft) / PixelsPerYard
	}
	return (GoalLineRight - pixel) / PixelsPerYard
}

// PixelToYardsRemaining returns the yards left before the opponent's end zone.
func PixelToYardsRemaining(pixel float64, team Team) float64 {
	if team == Home {
		return (GoalLineRight - pixel) / PixelsPerYard
	}
	return (pixel - GoalLineLeft) / PixelsPerYard
}

// Advance moves a position by a signed number of yards in the team's
// direction of play. Gains stop at the opponent's goal line and losses at the
// team's own, so the result stays within [GoalLineLeft, GoalLineRight].
func Advance(pixel, yards float64, team Team) float64 {
	if team == Home {
		return Clamp(pixel + yards*PixelsPerYard)
	}
	return Clamp(pixel - yards*PixelsPerYard)
}

// Clamp bounds an x position to the playing field between the goal lines.
func Clamp(pixel float64) float64 {
	return math.Max(GoalLineLeft, math.Min(pixel, GoalLineRight))
}

// YardLines returns the x positions of the eleven lines drawn every ten yards,
// goal lines included.
func YardLines() []float64 {
	lines := make([]float64, 0, 11)
	for i := 0; i <= 10; i++ {
		lines = append(lines, GoalLineLeft+10*PixelsPerYard*float64(i))
	}
	return lines
}

func (t Team) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(t.String())), nil
}

func (t *Team) UnmarshalText(text []byte) error {
	team, err := ParseTeam(string(text))
	if err != nil {
		return err
	}
	*t = team
	return nil
}
