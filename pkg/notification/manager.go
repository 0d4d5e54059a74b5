package notification

import (
	"context"
	"footballdrivebot/pkg/games"
	"log"
	"sort"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nikoksr/notify"
	"github.com/nikoksr/notify/service/telegram"
)

const subject = "New drive:"

// serviceBuilder returns the notify service that reaches the given chats.
type serviceBuilder func(receivers []int64) notify.Notifier

type Manager struct {
	ctx      context.Context
	build    serviceBuilder
	watchers map[int64]map[int64]bool
	mu       sync.Mutex
}

func NewManager(ctx context.Context, bot *tgbotapi.BotAPI) *Manager {
	return newManager(ctx, func(receivers []int64) notify.Notifier {
		tg := &telegram.Telegram{}
		tg.SetClient(bot)
		tg.AddReceivers(receivers...)
		return tg
	})
}

func newManager(ctx context.Context, build serviceBuilder) *Manager {
	return &Manager{
		ctx:      ctx,
		build:    build,
		watchers: make(map[int64]map[int64]bool),
	}
}

// Watch subscribes chatId to the drives of the game played in gameId.
func (m *Manager) Watch(gameId, chatId int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watchers[gameId] == nil {
		m.watchers[gameId] = make(map[int64]bool)
	}
	m.watchers[gameId][chatId] = true
}

func (m *Manager) Unwatch(gameId, chatId int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.watchers[gameId], chatId)
}

func (m *Manager) Watchers(gameId int64) []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	chats := make([]int64, 0, len(m.watchers[gameId]))
	for chatId := range m.watchers[gameId] {
		chats = append(chats, chatId)
	}
	sort.Slice(chats, func(i, j int) bool { return chats[i] < chats[j] })
	return chats
}

func (m *Manager) Start(exitChan <-chan bool, startedChan <-chan games.DriveStarted) {
	for {
		select {
		case <-exitChan:
			return
		case ds, ok := <-startedChan:
			if !ok {
				return
			}
			m.handleNotification(ds)
		}
	}
}

func (m *Manager) handleNotification(ds games.DriveStarted) {
	receipients := m.Watchers(ds.ChatID)
	if len(receipients) == 0 {
		return
	}
	log.Printf("Sending notification for game %d to %d telegram chats\n", ds.ChatID, len(receipients))
	if err := m.sendNotification(receipients, ds); err != nil {
		log.Printf("Error notifying users: %s", err.Error())
	}
}

func (m *Manager) sendNotification(receivers []int64, ds games.DriveStarted) error {
	n := notify.NewWithServices(m.build(receivers))
	return n.Send(m.ctx, subject, ds.String())
}
