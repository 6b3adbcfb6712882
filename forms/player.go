package forms

import (
	"net/url"

	"cricket/models"
)

const playerNameMax = 20

// PlayerForm keeps the raw submitted strings so an invalid form can be
// rendered back as typed. There is no team field: the team
// always comes from the URL.
type PlayerForm struct {
	Name       string
	Age        string
	Experience string
	Role       string
	ShirtNo    string
	Errors     Errors
}

func NewPlayerForm() *PlayerForm {
	return &PlayerForm{Errors: Errors{}}
}

func ParsePlayerForm(values url.Values) *PlayerForm {
	return &PlayerForm{
		Name:       values.Get("name"),
		Age:        values.Get("age"),
		Experience: values.Get("experience"),
		Role:       values.Get("role"),
		ShirtNo:    values.Get("shirt_no"),
		Errors:     Errors{},
	}
}

func (f *PlayerForm) Clean() (*models.Player, bool) {
	p := &models.Player{
		Name:       cleanText(f.Errors, "name", f.Name, playerNameMax),
		Age:        cleanNonNegative(f.Errors, "age", f.Age, maxBigInt),
		Experience: cleanNonNegative(f.Errors, "experience", f.Experience, maxInt),
		Role:       cleanRole(f.Errors, f.Role),
		ShirtNo:    cleanNonNegative(f.Errors, "shirt_no", f.ShirtNo, maxBigInt),
	}
	if f.Errors.Any() {
		return nil, false
	}
	return p, true
}

// cleanRole matches the submitted value exactly as sent.
func cleanRole(errs Errors, raw string) models.Role {
	if raw == "" {
		errs.Add("role", msgRequired)
		return ""
	}
	role := models.Role(raw)
	if !role.Valid() {
		errs.Add("role", msgInvalidChoice(raw))
		return ""
	}
	return role
}

// Roles exposes the selectable roles to templates.
func (f *PlayerForm) Roles() []models.Role {
	return models.Roles
}
