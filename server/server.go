package server

import (
	"fmt"
	"net/http"
	"time"

	"cricket/config"
	"cricket/handlers"
	"cricket/middleware"
	"cricket/store"
	"cricket/templates"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

// New builds the HTTP server for cfg on top of an opened, migrated database.
func New(cfg *config.Config, db *gorm.DB) (*http.Server, error) {
	handler, err := NewHandler(cfg, db)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, nil
}

func NewHandler(cfg *config.Config, db *gorm.DB) (http.Handler, error) {
	tmpl, err := templates.Parse()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	st := store.New(db, store.Options{UniqueShirtNo: cfg.Players.UniqueShirtNo})
	cricketHandler := handlers.NewCricketHandler(cfg, tmpl, st)
	adminHandler := handlers.NewAdminHandler(tmpl, st)

	return NewRouter(cricketHandler, adminHandler), nil
}

func NewRouter(cricketHandler *handlers.CricketHandler, adminHandler *handlers.AdminHandler) chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestLogger)
	router.Use(chimiddleware.Recoverer)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/teams/", http.StatusSeeOther)
	})
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.Get("/teams/", cricketHandler.TeamList)
	router.Get("/teams/add/", cricketHandler.AddTeamPage)
	router.Post("/teams/add/", cricketHandler.CreateTeam)
	router.Get("/teams/{team_id:[0-9]+}/add_player/", cricketHandler.AddPlayerPage)
	router.Post("/teams/{team_id:[0-9]+}/add_player/", cricketHandler.CreatePlayer)
	router.Get("/matchlist", cricketHandler.MatchList)

	router.Route("/admin", func(r chi.Router) {
		r.Get("/teams", adminHandler.TeamsPage)
		r.Post("/teams/{team_id:[0-9]+}/delete", adminHandler.DeleteTeam)
		r.Get("/players", adminHandler.PlayersPage)
	})

	return router
}
