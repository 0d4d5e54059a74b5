package settings

import (
	"footballdrivebot/pkg/field"
	"footballdrivebot/pkg/render"
	"image/color"
	"testing"
)

func envFrom(m map[string]string) getenv {
	return func(key string) string { return m[key] }
}

func TestLoadDefaults(t *testing.T) {
	s, err := load(envFrom(map[string]string{"TELEGRAM_TOKEN": "t"}))
	if err != nil {
		t.Fatal(err)
	}
	if s.WebserverAddress != ":8080" || s.ResourcesDir != "./resources" {
		t.Errorf("unexpected defaults %+v", s)
	}
	if s.WebserverDomain != "http://localhost:8080" {
		t.Errorf("unexpected domain %q", s.WebserverDomain)
	}
	if s.Colors != render.DefaultColors() || s.TeamWithBall != field.Home {
		t.Errorf("unexpected game defaults %+v", s)
	}
}

func TestLoadOverrides(t *testing.T) {
	s, err := load(envFrom(map[string]string{
		"WEBSERVER_ADDRESS": ":9090",
		"HOME_TEAM_COLOR":   "#112233",
		"AWAY_TEAM_COLOR":   "#445566",
		"TEAM_WITH_BALL":    "away",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if s.Colors.Home != (color.RGBA{0x11, 0x22, 0x33, 0xff}) || s.Colors.Away != (color.RGBA{0x44, 0x55, 0x66, 0xff}) {
		t.Errorf("colors not applied: %+v", s.Colors)
	}
	if s.TeamWithBall != field.Away || s.WebserverAddress != ":9090" {
		t.Errorf("unexpected settings %+v", s)
	}
}

func TestLoadInvalid(t *testing.T) {
	if _, err := load(envFrom(map[string]string{"HOME_TEAM_COLOR": "red"})); err == nil {
		t.Error("expected error for invalid color")
	}
	if _, err := load(envFrom(map[string]string{"TEAM_WITH_BALL": "nobody"})); err == nil {
		t.Error("expected error for invalid team")
	}
}
