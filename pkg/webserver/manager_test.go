package webserver

import (
	"footballdrivebot/pkg/field"
	"footballdrivebot/pkg/games"
	"footballdrivebot/pkg/render"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestManager(t *testing.T) (*Manager, *games.Manager, string) {
	t.Helper()
	dir := t.TempDir()
	gm := games.NewManager(field.Home, render.DefaultColors(), nil)
	return NewManager(":0", dir, gm), gm, dir
}

func get(m *Manager, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	m.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestFieldPNG(t *testing.T) {
	m, gm, _ := newTestManager(t)
	g := gm.Game(-100)
	g.StartDrive(field.Home, 25)
	_ = g.AddPlay(field.Home, 12)

	rec := get(m, "/games/-100/field.png")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type %q", ct)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("invalid png: %s", err)
	}
	if img.Bounds().Dx() != 720 {
		t.Errorf("unexpected width %d", img.Bounds().Dx())
	}
}

func TestFieldSVG(t *testing.T) {
	m, gm, _ := newTestManager(t)
	gm.Game(5).StartDrive(field.Away, 30)

	rec := get(m, "/games/5/field.svg")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "<svg") {
		t.Errorf("status %d, body %.60s", rec.Code, rec.Body.String())
	}
}

func TestDrivesJSON(t *testing.T) {
	m, gm, _ := newTestManager(t)
	g := gm.Game(9)
	g.StartDrive(field.Home, 20)
	_ = g.AddPlay(field.Home, 10)
	_ = g.AddPlay(field.Home, -2)

	rec := get(m, "/games/9/drives")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	want := `[{"number":1,"team":"home","startYard":20,"endYard":28,"netYards":8,"plays":[10,-2]}]`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Errorf("body = %s\nwant  %s", got, want)
	}
}

func TestUnknownGame(t *testing.T) {
	m, _, _ := newTestManager(t)
	if rec := get(m, "/games/404/field.png"); rec.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404", rec.Code)
	}
	if rec := get(m, "/games/abc/drives"); rec.Code != http.StatusNotFound {
		t.Errorf("non numeric id should not match a route, got %d", rec.Code)
	}
}

func TestResources(t *testing.T) {
	m, _, dir := newTestManager(t)
	if err := os.WriteFile(filepath.Join(dir, "field_1.svg"), []byte("<svg/>"), 0644); err != nil {
		t.Fatal(err)
	}
	rec := get(m, "/resources/field_1.svg")
	if rec.Code != http.StatusOK || rec.Body.String() != "<svg/>" {
		t.Errorf("status %d body %q", rec.Code, rec.Body.String())
	}
}
