package mainapp

import (
	"context"
	"footballdrivebot/pkg/field"
	"footballdrivebot/pkg/games"
	"footballdrivebot/pkg/render"
	"footballdrivebot/pkg/resources"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type fakeBot struct {
	sent []tgbotapi.Chattable
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

type noWatcher struct{}

func (noWatcher) Watch(gameId, chatId int64)   {}
func (noWatcher) Unwatch(gameId, chatId int64) {}

func newTestApp(t *testing.T) (*MainApp, *fakeBot) {
	t.Helper()
	store, err := resources.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	bot := &fakeBot{}
	gm := games.NewManager(field.Home, render.DefaultColors(), nil)
	return NewMainApp(bot, gm, store, noWatcher{}, "http://localhost:8080"), bot
}

func TestStartAndMenu(t *testing.T) {
	app, bot := newTestApp(t)
	for _, cmd := range []string{"/start", "/menu@drivebot"} {
		ok, handler := app.AcceptCommand(cmd)
		if !ok {
			t.Fatalf("%s not accepted", cmd)
		}
		if err := handler(context.Background(), 1); err != nil {
			t.Fatal(err)
		}
	}
	if len(bot.sent) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(bot.sent))
	}
	msg := bot.sent[0].(tgbotapi.MessageConfig)
	if msg.ReplyMarkup == nil {
		t.Error("start message has no keyboard")
	}
}

func TestRoutesToDrivesApp(t *testing.T) {
	app, _ := newTestApp(t)
	if ok, _ := app.AcceptCommand("/drive home 20"); !ok {
		t.Error("drive command not routed")
	}
	if ok, _ := app.AcceptButton(buttonDrives); !ok {
		t.Error("drives button not routed")
	}
	if ok, _ := app.AcceptButton("Back to menu"); !ok {
		t.Error("back button not routed")
	}
	if ok, _ := app.AcceptCommand("/unknown"); ok {
		t.Error("unknown command accepted")
	}
	if ok, _ := app.AcceptCallback(&tgbotapi.CallbackQuery{Data: "x"}); ok {
		t.Error("callback accepted")
	}
}
