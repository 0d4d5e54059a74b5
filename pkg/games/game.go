package games

import (
	"fmt"
	"footballdrivebot/pkg/drive"
	"footballdrivebot/pkg/field"
	"footballdrivebot/pkg/helper"
	"footballdrivebot/pkg/pubsub"
	"footballdrivebot/pkg/render"
	"sync"
)

const (
	PubSubDriveStartedPreffix = "drive_started"
)

// DriveStarted is published every time a game opens a new drive.
type DriveStarted struct {
	ChatID    int64      `json:"chatId"`
	Team      field.Team `json:"team"`
	StartYard float64    `json:"startYard"`
	Number    int        `json:"number"`
}

func (ds DriveStarted) String() string {
	return fmt.Sprintf("Drive #%d: %s ball at the %s", ds.Number, ds.Team, helper.FormatYardLine(ds.Team, ds.StartYard))
}

// Game serializes every access to one drive model.
type Game struct {
	chatID    int64
	model     *drive.Model
	renderer  *render.Renderer
	firstDown *float64
	events    *pubsub.PubSub[DriveStarted]
	mu        sync.Mutex
}

func newGame(chatID int64, teamWithBall field.Team, colors render.Colors, events *pubsub.PubSub[DriveStarted]) *Game {
	return &Game{
		chatID:   chatID,
		model:    drive.NewModel(teamWithBall),
		renderer: render.NewRenderer(colors),
		events:   events,
	}
}

func (g *Game) ChatID() int64 {
	return g.chatID
}

// StartDrive opens a drive and announces it. The event is published under
// the game lock so subscribers see drive numbers in order.
func (g *Game) StartDrive(team field.Team, startYard float64) DriveStarted {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.model.StartDrive(team, startYard)
	ds := DriveStarted{
		ChatID:    g.chatID,
		Team:      team,
		StartYard: startYard,
		Number:    g.model.Len(),
	}
	if g.events != nil {
		g.events.Publish(PubSubDriveStartedPreffix, ds)
	}
	return ds
}

func (g *Game) AddPlay(team field.Team, yards float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.model.AddPlay(team, yards)
}

// SetFirstDown places the first down marker; nil removes it.
func (g *Game) SetFirstDown(yardLine *float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if yardLine == nil {
		g.firstDown = nil
		return
	}
	y := *yardLine
	g.firstDown = &y
}

func (g *Game) ResetPointers() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.model.ResetPointers()
}

// UpdateField replays the whole history and returns the frame to paint.
func (g *Game) UpdateField() render.Frame {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.model.UpdateField(g.renderer)
	return g.renderer.Render(g.model.Drives(), g.firstDown)
}

func (g *Game) YardsToGo(team field.Team) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.model.CurrentYardsToGo(team)
}

func (g *Game) CurrentPixel(team field.Team) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.model.CurrentPixel(team)
}

func (g *Game) TeamWithBall() field.Team {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.model.TeamWithBall()
}

func (g *Game) Drives() []drive.Drive {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.model.Drives()
}
