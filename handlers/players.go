package handlers

import (
	"errors"
	"net/http"

	"cricket/forms"
	"cricket/models"
	"cricket/store"

	"github.com/rs/zerolog/log"
)

const msgShirtNoTaken = "Shirt number must be unique within the team."

// resolveTeam loads the team named by the URL or writes a 404.
func (h *CricketHandler) resolveTeam(w http.ResponseWriter, r *http.Request) (*models.Team, bool) {
	id, ok := teamIDParam(r)
	if !ok {
		http.NotFound(w, r)
		return nil, false
	}

	team, err := h.store.GetTeam(r.Context(), id)
	if errors.Is(err, store.ErrTeamNotFound) {
		http.NotFound(w, r)
		return nil, false
	}
	if err != nil {
		serverError(w, r, err)
		return nil, false
	}
	return team, true
}

func (h *CricketHandler) AddPlayerPage(w http.ResponseWriter, r *http.Request) {
	team, ok := h.resolveTeam(w, r)
	if !ok {
		return
	}

	data := map[string]interface{}{
		"Team": team,
		"Form": forms.NewPlayerForm(),
	}
	render(w, r, h.templates["add_player"], data)
}

// CreatePlayer adds a player to the team in the URL. A team value in the
// submitted body is never read.
func (h *CricketHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	team, ok := h.resolveTeam(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := forms.ParsePlayerForm(r.PostForm)
	player, ok := form.Clean()
	if ok {
		err := h.store.CreatePlayer(r.Context(), team.ID, player)
		switch {
		case err == nil:
			log.Ctx(r.Context()).Info().
				Uint("team_id", team.ID).
				Uint("player_id", player.ID).
				Str("name", player.Name).
				Msg("Player created")
			http.Redirect(w, r, "/teams/", http.StatusSeeOther)
			return
		case errors.Is(err, store.ErrTeamNotFound):
			http.NotFound(w, r)
			return
		case errors.Is(err, store.ErrShirtNumberTaken):
			form.Errors.Add("shirt_no", msgShirtNoTaken)
		default:
			serverError(w, r, err)
			return
		}
	}

	data := map[string]interface{}{
		"Team": team,
		"Form": form,
	}
	render(w, r, h.templates["add_player"], data)
}
