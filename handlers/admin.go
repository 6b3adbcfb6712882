package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"cricket/models"
	"cricket/store"

	"github.com/rs/zerolog/log"
)

// AdminHandler serves the management pages over the same store as the public
// pages.
type AdminHandler struct {
	templates map[string]*template.Template
	store     *store.Store
}

func NewAdminHandler(templates map[string]*template.Template, st *store.Store) *AdminHandler {
	return &AdminHandler{
		templates: templates,
		store:     st,
	}
}

func (h *AdminHandler) TeamsPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	teams, err := h.store.SearchTeams(r.Context(), q)
	if err != nil {
		serverError(w, r, err)
		return
	}

	data := map[string]interface{}{
		"Teams":   teams,
		"Query":   q,
		"Success": r.URL.Query().Get("success"),
	}
	render(w, r, h.templates["admin_teams"], data)
}

func (h *AdminHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := teamIDParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	removed, err := h.store.DeleteTeam(r.Context(), id)
	if errors.Is(err, store.ErrTeamNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		serverError(w, r, err)
		return
	}

	log.Ctx(r.Context()).Info().Uint("team_id", id).Int64("players_removed", removed).Msg("Team deleted")
	http.Redirect(w, r, "/admin/teams?success=Team+deleted", http.StatusSeeOther)
}

func (h *AdminHandler) PlayersPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := store.PlayerFilter{Query: query.Get("q")}

	if tid, err := strconv.ParseUint(query.Get("team"), 10, 32); err == nil {
		filter.TeamID = uint(tid)
	}
	if role := models.Role(query.Get("role")); role.Valid() {
		filter.Role = role
	}

	players, err := h.store.SearchPlayers(r.Context(), filter)
	if err != nil {
		serverError(w, r, err)
		return
	}
	teams, err := h.store.SearchTeams(r.Context(), "")
	if err != nil {
		serverError(w, r, err)
		return
	}

	data := map[string]interface{}{
		"Players": players,
		"Teams":   teams,
		"Roles":   models.Roles,
		"Query":   filter.Query,
		"TeamID":  filter.TeamID,
		"Role":    filter.Role,
	}
	render(w, r, h.templates["admin_players"], data)
}
