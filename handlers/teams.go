package handlers

import (
	"net/http"

	"cricket/forms"

	"github.com/rs/zerolog/log"
)

// TeamList shows every team.
func (h *CricketHandler) TeamList(w http.ResponseWriter, r *http.Request) {
	teams, err := h.store.ListTeams(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	data := map[string]interface{}{
		"Teams": teams,
	}
	render(w, r, h.templates["team_list"], data)
}

func (h *CricketHandler) AddTeamPage(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Form": forms.NewTeamForm(),
	}
	render(w, r, h.templates["add_team"], data)
}

func (h *CricketHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := forms.ParseTeamForm(r.PostForm)
	team, ok := form.Clean()
	if !ok {
		data := map[string]interface{}{
			"Form": form,
		}
		render(w, r, h.templates["add_team"], data)
		return
	}

	if err := h.store.CreateTeam(r.Context(), team); err != nil {
		serverError(w, r, err)
		return
	}

	log.Ctx(r.Context()).Info().Uint("team_id", team.ID).Str("name", team.Name).Msg("Team created")
	http.Redirect(w, r, "/teams/", http.StatusSeeOther)
}
