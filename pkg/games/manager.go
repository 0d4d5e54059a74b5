package games

import (
	"footballdrivebot/pkg/field"
	"footballdrivebot/pkg/pubsub"
	"footballdrivebot/pkg/render"
	"sync"
)

// Manager keeps one game per chat.
type Manager struct {
	teamWithBall field.Team
	colors       render.Colors
	events       *pubsub.PubSub[DriveStarted]
	games        map[int64]*Game
	mu           sync.Mutex
}

func NewManager(teamWithBall field.Team, colors render.Colors, events *pubsub.PubSub[DriveStarted]) *Manager {
	return &Manager{
		teamWithBall: teamWithBall,
		colors:       colors,
		events:       events,
		games:        make(map[int64]*Game),
	}
}

// Game returns the game for chatID, creating an empty one on first use.
func (m *Manager) Game(chatID int64) *Game {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[chatID]
	if !ok {
		g = newGame(chatID, m.teamWithBall, m.colors, m.events)
		m.games[chatID] = g
	}
	return g
}

// Lookup returns the game for chatID without creating it.
func (m *Manager) Lookup(chatID int64) (*Game, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[chatID]
	return g, ok
}

// Reset drops the history of a chat; the next access starts an empty game.
func (m *Manager) Reset(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, chatID)
}
