package drive

import (
	"fmt"
	"footballdrivebot/pkg/field"
)

// Play is either a StartMarker or a Yardage entry.
type Play interface {
	isPlay()
	String() string
}

// StartMarker is the team-relative yard line where a drive begins.
type StartMarker struct {
	Yard float64
}

// Yardage is the signed result of one snap.
type Yardage struct {
	Yards float64
}

func (StartMarker) isPlay() {}
func (Yardage) isPlay()     {}

func (s StartMarker) String() string {
	return fmt.Sprintf("start at %g", s.Yard)
}

func (y Yardage) String() string {
	return fmt.Sprintf("%+g yds", y.Yards)
}

type Drive struct {
	Team  field.Team
	Plays []Play
}

// Start returns the drive's opening marker.
func (d Drive) Start() StartMarker {
	if len(d.Plays) == 0 {
		return StartMarker{}
	}
	start, _ := d.Plays[0].(StartMarker)
	return start
}

// Yardages returns every snap after the start marker, in order.
func (d Drive) Yardages() []Yardage {
	ys := make([]Yardage, 0, len(d.Plays))
	for _, p := range d.Plays {
		if y, ok := p.(Yardage); ok {
			ys = append(ys, y)
		}
	}
	return ys
}

func (d Drive) clone() Drive {
	plays := make([]Play, len(d.Plays))
	copy(plays, d.Plays)
	return Drive{Team: d.Team, Plays: plays}
}

// Stats summarizes a drive by replaying it on its own.
type Stats struct {
	Team      field.Team
	StartYard float64
	EndYard   float64
	NetYards  float64
	Snaps     int
}

func (d Drive) Stats() Stats {
	start := d.Start()
	pixel := field.YardToPixel(start.Yard, d.Team)
	snaps := 0
	for _, y := range d.Yardages() {
		pixel = field.Advance(pixel, y.Yards, d.Team)
		snaps++
	}
	end := field.PixelToYard(pixel, d.Team)
	return Stats{
		Team:      d.Team,
		StartYard: start.Yard,
		EndYard:   end,
		NetYards:  end - start.Yard,
		Snaps:     snaps,
	}
}
