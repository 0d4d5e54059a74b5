package render

import (
	"footballdrivebot/pkg/drive"
	"footballdrivebot/pkg/field"
	"image/color"
)

const (
	yardLineWidth  = 1.0
	firstDownWidth = 2.0
	barWidth       = 10.0
	tipWidth       = 2.0
	tipLength      = 4.0
	barSpacing     = 12.0
)

// Frame is the result of replaying a drive history.
type Frame struct {
	Primitives []Primitive
	Home       float64
	Away       float64
	PlayY      float64
}

type Renderer struct {
	colors Colors
}

func NewRenderer(colors Colors) *Renderer {
	return &Renderer{colors: colors}
}

func (r *Renderer) Colors() Colors {
	return r.colors
}

func (r *Renderer) TeamColor(team field.Team) color.RGBA {
	if team == field.Away {
		return r.colors.Away
	}
	return r.colors.Home
}

// RenderField draws the yard lines first and the end zones over them.
func (r *Renderer) RenderField() []Primitive {
	lines := field.YardLines()
	prims := make([]Primitive, 0, len(lines)+2)
	for _, x := range lines {
		prims = append(prims, Line{
			From:  Point{X: x, Y: 0},
			To:    Point{X: x, Y: field.Height},
			Color: White,
			Width: yardLineWidth,
		})
	}
	prims = append(prims,
		FilledRect{
			Origin: Point{X: 0, Y: 0},
			Width:  field.EndZoneWidth,
			Height: field.Height,
			Color:  r.TeamColor(field.Home),
		},
		FilledRect{
			Origin: Point{X: field.GoalLineRight, Y: 0},
			Width:  field.EndZoneWidth,
			Height: field.Height,
			Color:  r.TeamColor(field.Away),
		},
	)
	return prims
}

// RenderFirstDownLine marks a yard line measured from the home goal line.
func (r *Renderer) RenderFirstDownLine(yardLine float64) Primitive {
	return r.RenderFirstDownLineFor(field.Home, yardLine)
}

func (r *Renderer) RenderFirstDownLineFor(team field.Team, yardLine float64) Primitive {
	x := field.YardToPixel(yardLine, team)
	return Line{
		From:  Point{X: x, Y: 0},
		To:    Point{X: x, Y: field.Height},
		Color: Yellow,
		Width: firstDownWidth,
	}
}

// RenderDrives replays every drive from scratch and emits one bar per snap.
// The vertical cursor is shared by both teams.
func (r *Renderer) RenderDrives(history []drive.Drive) Frame {
	f := Frame{
		Home: field.YardToPixel(0, field.Home),
		Away: field.YardToPixel(0, field.Away),
	}
	for _, d := range history {
		for _, p := range d.Plays {
			switch play := p.(type) {
			case drive.StartMarker:
				f.setPointer(d.Team, field.YardToPixel(play.Yard, d.Team))
			case drive.Yardage:
				from := f.pointer(d.Team)
				to := field.Advance(from, play.Yards, d.Team)
				f.Primitives = append(f.Primitives, r.markPlay(d.Team, from, to, f.PlayY)...)
				f.setPointer(d.Team, to)
				f.PlayY += barSpacing
			}
		}
	}
	return f
}

// ReplayPointers returns the lines of scrimmage reached after replaying history.
func (r *Renderer) ReplayPointers(history []drive.Drive) (float64, float64) {
	f := r.RenderDrives(history)
	return f.Home, f.Away
}

// Render produces a complete frame: field, drives and an optional first down
// marker.
func (r *Renderer) Render(history []drive.Drive, firstDown *float64) Frame {
	f := r.RenderDrives(history)
	prims := r.RenderField()
	prims = append(prims, f.Primitives...)
	if firstDown != nil {
		prims = append(prims, r.RenderFirstDownLine(*firstDown))
	}
	f.Primitives = prims
	return f
}

// markPlay draws the bar in team color up to tipLength short of the new line
// of scrimmage and closes the gap with a black tip.
func (r *Renderer) markPlay(team field.Team, from, to, y float64) []Primitive {
	c := r.TeamColor(team)
	tip := to - tipLength
	if team == field.Away {
		tip = to + tipLength
	}
	tip = field.Clamp(tip)
	return []Primitive{
		Line{
			From:  Point{X: from, Y: y},
			To:    Point{X: tip, Y: y},
			Color: c,
			Width: barWidth,
		},
		Line{
			From:  Point{X: tip, Y: y},
			To:    Point{X: to, Y: y},
			Color: Black,
			Width: tipWidth,
		},
	}
}

func (f *Frame) pointer(team field.Team) float64 {
	if team == field.Home {
		return f.Home
	}
	return f.Away
}

func (f *Frame) setPointer(team field.Team, pixel float64) {
	if team == field.Home {
		f.Home = pixel
	} else {
		f.Away = pixel
	}
}
