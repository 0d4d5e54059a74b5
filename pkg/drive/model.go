package drive

import (
	"footballdrivebot/pkg/field"

	"github.com/pkg/errors"
)

var (
	ErrNoActiveDrive             = errors.New("no active drive")
	ErrInvalidTeamForActiveDrive = errors.New("team does not own the active drive")
)

// Replayer rebuilds the running pointers of both teams from a drive history.
type Replayer interface {
	ReplayPointers(history []Drive) (home, away float64)
}

// Model is the append-only drive history of one game together with the
// running line of scrimmage of each team. It is not safe for concurrent use.
type Model struct {
	drives       []Drive
	teamWithBall field.Team
	pointers     [2]float64
}

func NewModel(teamWithBall field.Team) *Model {
	m := &Model{teamWithBall: teamWithBall}
	m.pointers[field.Home] = field.YardToPixel(0, field.Home)
	m.pointers[field.Away] = field.YardToPixel(0, field.Away)
	return m
}

// StartDrive closes the active drive, if any, and opens a new one for team.
func (m *Model) StartDrive(team field.Team, startYard float64) {
	m.drives = append(m.drives, Drive{
		Team:  team,
		Plays: []Play{StartMarker{Yard: startYard}},
	})
	m.teamWithBall = team
	m.pointers[team] = field.YardToPixel(startYard, team)
}

// AddPlay records one snap on the active drive. Only the team that owns the
// active drive may add plays to it.
func (m *Model) AddPlay(team field.Team, yards float64) error {
	if len(m.drives) == 0 {
		return ErrNoActiveDrive
	}
	active := &m.drives[len(m.drives)-1]
	if active.Team != team {
		return errors.Wrapf(ErrInvalidTeamForActiveDrive, "%s cannot add a play to the %s drive", team, active.Team)
	}
	active.Plays = append(active.Plays, Yardage{Yards: yards})
	m.pointers[team] = field.Advance(m.pointers[team], yards, team)
	return nil
}

// ResetPointers moves each team back to its most recent start marker.
func (m *Model) ResetPointers() {
	m.pointers[field.Home] = field.YardToPixel(0, field.Home)
	m.pointers[field.Away] = field.YardToPixel(0, field.Away)
	for _, d := range m.drives {
		m.pointers[d.Team] = field.YardToPixel(d.Start().Yard, d.Team)
	}
}

// UpdateField resets the pointers and replays the whole history through r.
func (m *Model) UpdateField(r Replayer) {
	m.ResetPointers()
	m.pointers[field.Home], m.pointers[field.Away] = r.ReplayPointers(m.drives)
}

func (m *Model) CurrentPixel(team field.Team) float64 {
	return m.pointers[team]
}

func (m *Model) CurrentYardsToGo(team field.Team) float64 {
	return field.PixelToYardsRemaining(m.pointers[team], team)
}

func (m *Model) TeamWithBall() field.Team {
	return m.teamWithBall
}

func (m *Model) Len() int {
	return len(m.drives)
}

// ActiveDrive returns a copy of the last drive.
func (m *Model) ActiveDrive() (Drive, bool) {
	if len(m.drives) == 0 {
		return Drive{}, false
	}
	return m.drives[len(m.drives)-1].clone(), true
}

// Drives returns a copy of the history in chronological order.
func (m *Model) Drives() []Drive {
	history := make([]Drive, len(m.drives))
	for i, d := range m.drives {
		history[i] = d.clone()
	}
	return history
}
