package settings

import (
	"footballdrivebot/pkg/field"
	"footballdrivebot/pkg/helper"
	"footballdrivebot/pkg/render"
	"log"
	"os"

	"github.com/pkg/errors"
)

const (
	defaultWebserverAddress = ":8080"
	defaultResourcesDir     = "./resources"
)

type Settings struct {
	TelegramToken    string
	WebserverAddress string
	WebserverDomain  string
	ResourcesDir     string
	Colors           render.Colors
	TeamWithBall     field.Team
}

type getenv func(string) string

// FromEnv reads the settings from the process environment.
func FromEnv() (Settings, error) {
	return load(os.Getenv)
}

func load(env getenv) (Settings, error) {
	s := Settings{
		TelegramToken:    env("TELEGRAM_TOKEN"),
		WebserverAddress: env("WEBSERVER_ADDRESS"),
		WebserverDomain:  env("WEBSERVER_DOMAIN"),
		ResourcesDir:     env("RESOURCES_DIR"),
		Colors:           render.DefaultColors(),
		TeamWithBall:     field.Home,
	}
	if s.WebserverAddress == "" {
		s.WebserverAddress = defaultWebserverAddress
	}
	if s.ResourcesDir == "" {
		s.ResourcesDir = defaultResourcesDir
	}
	if s.WebserverDomain == "" {
		s.WebserverDomain = "http://localhost" + s.WebserverAddress
	}

	if v := env("HOME_TEAM_COLOR"); v != "" {
		c, err := helper.ParseColor(v)
		if err != nil {
			return s, errors.Wrap(err, "HOME_TEAM_COLOR")
		}
		s.Colors.Home = c
	}
	if v := env("AWAY_TEAM_COLOR"); v != "" {
		c, err := helper.ParseColor(v)
		if err != nil {
			return s, errors.Wrap(err, "AWAY_TEAM_COLOR")
		}
		s.Colors.Away = c
	}
	if v := env("TEAM_WITH_BALL"); v != "" {
		team, err := field.ParseTeam(v)
		if err != nil {
			return s, errors.Wrap(err, "TEAM_WITH_BALL")
		}
		s.TeamWithBall = team
	}

	if s.TelegramToken == "" {
		log.Println("TELEGRAM_TOKEN is not set, the bot will not start")
	}
	return s, nil
}
