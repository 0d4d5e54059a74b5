package games

import (
	"footballdrivebot/pkg/drive"
	"footballdrivebot/pkg/field"
)

// DriveView is the serializable form of a drive.
type DriveView struct {
	Number    int        `json:"number"`
	Team      field.Team `json:"team"`
	StartYard float64    `json:"startYard"`
	EndYard   float64    `json:"endYard"`
	NetYards  float64    `json:"netYards"`
	Plays     []float64  `json:"plays"`
}

func NewDriveView(number int, d drive.Drive) DriveView {
	stats := d.Stats()
	plays := []float64{}
	for _, y := range d.Yardages() {
		plays = append(plays, y.Yards)
	}
	return DriveView{
		Number:    number,
		Team:      d.Team,
		StartYard: stats.StartYard,
		EndYard:   stats.EndYard,
		NetYards:  stats.NetYards,
		Plays:     plays,
	}
}

// Views lists every drive of the game in chronological order.
func (g *Game) Views() []DriveView {
	drives := g.Drives()
	views := make([]DriveView, len(drives))
	for i, d := range drives {
		views[i] = NewDriveView(i+1, d)
	}
	return views
}
