package menus

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var (
	buttonBackTo = "Back to"
)

type Menuer interface {
	Menu() tgbotapi.ReplyKeyboardMarkup
}

type ApplicationMenu struct {
	Name   string
	From   string
	menuer Menuer
}

func NewApplicationMenu(name, from string, menuer Menuer) ApplicationMenu {
	return ApplicationMenu{
		Name:   name,
		From:   from,
		menuer: menuer,
	}
}

func (am ApplicationMenu) PrevMenu() tgbotapi.ReplyKeyboardMarkup {
	return am.menuer.Menu()
}

func (am ApplicationMenu) ButtonBackTo() string {
	return buttonBackTo + " " + am.From
}
