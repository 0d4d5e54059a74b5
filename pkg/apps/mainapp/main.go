package mainapp

import (
	"context"
	"fmt"
	"footballdrivebot/pkg/apps"
	"footballdrivebot/pkg/apps/drives"
	"footballdrivebot/pkg/games"
	"footballdrivebot/pkg/menus"
	"footballdrivebot/pkg/resources"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	menuStart    = "/start"
	menuMenu     = "/menu"
	buttonDrives = "Drives"
	appName      = "menu"
)

var (
	menuKeyboard = tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonDrives),
		),
	)
)

type menuer struct{}

func (m menuer) Menu() tgbotapi.ReplyKeyboardMarkup {
	return menuKeyboard
}

type MainApp struct {
	bot       apps.Sender
	accepters []apps.Accepter
}

func NewMainApp(bot apps.Sender, gm *games.Manager, store *resources.Store, watcher drives.Watcher, domain string) *MainApp {
	drivesAppMenu := menus.NewApplicationMenu(buttonDrives, appName, menuer{})
	drivesApp := drives.NewDrivesApp(bot, gm, store, watcher, domain, drivesAppMenu)

	accepters := []apps.Accepter{drivesApp}

	return &MainApp{
		bot:       bot,
		accepters: accepters,
	}
}

func (m *MainApp) AcceptCommand(command string) (bool, func(ctx context.Context, chatId int64) error) {
	name, _ := apps.SplitCommand(command)
	if name == menuStart {
		return true, m.renderStart()
	} else if name == menuMenu {
		return true, m.renderMenu()
	}
	for _, accepter := range m.accepters {
		accept, handler := accepter.AcceptCommand(command)
		if accept {
			return true, handler
		}
	}

	return false, nil
}

func (m *MainApp) AcceptCallback(query *tgbotapi.CallbackQuery) (bool, func(ctx context.Context, query *tgbotapi.CallbackQuery) error) {
	for _, accepter := range m.accepters {
		accept, handler := accepter.AcceptCallback(query)
		if accept {
			return true, handler
		}
	}

	return false, nil
}

func (m *MainApp) AcceptButton(button string) (bool, func(ctx context.Context, chatId int64) error) {
	for _, accepter := range m.accepters {
		accept, handler := accepter.AcceptButton(button)
		if accept {
			return true, handler
		}
	}
	return false, nil
}

func (m *MainApp) renderStart() func(ctx context.Context, chatId int64) error {
	return func(ctx context.Context, chatId int64) error {
		message := "Hi, I chart football drives: start a drive, record every play and I draw the field.\n\n"
		message += "You can use the following command:\n\n"
		message += fmt.Sprintf("%s - Shows the bot menu\n", menuMenu)
		msg := tgbotapi.NewMessage(chatId, message)
		msg.ReplyMarkup = menuKeyboard
		_, err := m.bot.Send(msg)
		return err
	}
}

func (m *MainApp) renderMenu() func(ctx context.Context, chatId int64) error {
	return func(ctx context.Context, chatId int64) error {
		message := "Bot menu.\n\n"
		msg := tgbotapi.NewMessage(chatId, message)
		msg.ReplyMarkup = menuKeyboard
		_, err := m.bot.Send(msg)
		return err
	}
}
