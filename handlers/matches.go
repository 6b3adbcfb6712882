package handlers

import (
	"net/http"

	"cricket/pagination"
)

const matchTeams = 2

// MatchList pairs the first two teams and pages them. Bad page numbers fall
// back to a valid page instead of failing.
func (h *CricketHandler) MatchList(w http.ResponseWriter, r *http.Request) {
	teams, err := h.store.FirstTeams(r.Context(), matchTeams)
	if err != nil {
		serverError(w, r, err)
		return
	}

	page := pagination.New(teams, h.config.Matches.PerPage).GetPage(r.URL.Query().Get("page"))

	data := map[string]interface{}{
		"Page": page,
	}
	render(w, r, h.templates["match_list"], data)
}
