package handlers

import (
	"html/template"
	"net/http"
	"strconv"

	"cricket/config"
	"cricket/store"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type CricketHandler struct {
	config    *config.Config
	templates map[string]*template.Template
	store     *store.Store
}

func NewCricketHandler(cfg *config.Config, templates map[string]*template.Template, st *store.Store) *CricketHandler {
	return &CricketHandler{
		config:    cfg,
		templates: templates,
		store:     st,
	}
}

func render(w http.ResponseWriter, r *http.Request, t *template.Template, data map[string]interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to render template")
	}
}

func serverError(w http.ResponseWriter, r *http.Request, err error) {
	log.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// teamIDParam reads the numeric {team_id} route parameter.
func teamIDParam(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "team_id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
