package webserver

import (
	"context"
	"fmt"
	"footballdrivebot/pkg/caster"
	"footballdrivebot/pkg/games"
	"footballdrivebot/pkg/layout"
	"footballdrivebot/pkg/render"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

const (
	resourcesPath = "/resources/"
)

type Manager struct {
	r            *mux.Router
	addr         string
	games        *games.Manager
	resourcesDir string
	viewsCaster  caster.Caster[[]games.DriveView]
}

func NewManager(addr, resourcesDir string, gm *games.Manager) *Manager {
	m := &Manager{
		r:            mux.NewRouter(),
		addr:         addr,
		games:        gm,
		resourcesDir: resourcesDir,
		viewsCaster:  caster.JSONCaster[[]games.DriveView]{},
	}

	m.rootHandlers()
	m.gameHandlers()
	return m
}

func (m *Manager) router() *mux.Router {
	return m.r
}

func (m *Manager) rootHandlers() {
	fs := http.FileServer(http.Dir(m.resourcesDir))
	m.r.PathPrefix(resourcesPath).Handler(http.StripPrefix(resourcesPath, fs))
}

func (m *Manager) gameHandlers() {
	sr := m.r.PathPrefix("/games/{chatId:-?[0-9]+}").Subrouter()
	sr.HandleFunc("/field.png", m.fieldHandler("image/png", layout.EncodePNG)).Methods(http.MethodGet)
	sr.HandleFunc("/field.svg", m.fieldHandler("image/svg+xml", layout.EncodeSVG)).Methods(http.MethodGet)
	sr.HandleFunc("/drives", m.drivesHandler()).Methods(http.MethodGet)
}

func (m *Manager) lookupGame(w http.ResponseWriter, r *http.Request) (*games.Game, bool) {
	chatId, err := strconv.ParseInt(mux.Vars(r)["chatId"], 10, 64)
	if err != nil {
		http.Error(w, "invalid game id", http.StatusBadRequest)
		return nil, false
	}
	g, found := m.games.Lookup(chatId)
	if !found {
		http.Error(w, "game not found", http.StatusNotFound)
		return nil, false
	}
	return g, true
}

type encoder func(w io.Writer, prims []render.Primitive) error

func (m *Manager) fieldHandler(contentType string, encode encoder) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := m.lookupGame(w, r)
		if !ok {
			return
		}
		frame := g.UpdateField()
		w.Header().Set("Content-Type", contentType)
		if err := encode(w, frame.Primitives); err != nil {
			log.Printf("Error encoding field for %d: %s", g.ChatID(), err)
		}
	}
}

func (m *Manager) drivesHandler() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := m.lookupGame(w, r)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", m.viewsCaster.ContentType())
		if err := m.viewsCaster.Write(w, g.Views()); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func (m *Manager) Debug() {
	_ = m.router().Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err == nil {
			fmt.Println("ROUTE:", pathTemplate)
		}
		methods, err := route.GetMethods()
		if err == nil {
			fmt.Println("Methods:", strings.Join(methods, ","))
		}
		return nil
	})
}

// Serve blocks until ctx is cancelled and then shuts the server down.
func (m *Manager) Serve(ctx context.Context) {
	srv := &http.Server{
		Addr:         m.addr,
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      m.router(),
	}

	go func() {
		log.Printf("webserver listening on %s\n", m.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Println(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("webserver shutdown: %s", err)
	}
	log.Println("webserver shutting down")
}
