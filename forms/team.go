// Package forms validates submitted team and player forms before they are
// persisted.
package forms

import (
	"net/url"

	"cricket/models"
)

const (
	teamNameMax = 100
	teamCityMax = 100
)

type TeamForm struct {
	Name   string
	City   string
	Errors Errors
}

func NewTeamForm() *TeamForm {
	return &TeamForm{Errors: Errors{}}
}

func ParseTeamForm(values url.Values) *TeamForm {
	return &TeamForm{
		Name:   values.Get("name"),
		City:   values.Get("city"),
		Errors: Errors{},
	}
}

// Clean validates the form. On success the returned team is ready to be
// created; otherwise f.Errors holds a message per failing field.
func (f *TeamForm) Clean() (*models.Team, bool) {
	name := cleanText(f.Errors, "name", f.Name, teamNameMax)
	city := cleanText(f.Errors, "city", f.City, teamCityMax)
	if f.Errors.Any() {
		return nil, false
	}
	return &models.Team{Name: name, City: city}, true
}
