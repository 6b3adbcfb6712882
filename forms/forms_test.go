package forms

import (
	"net/url"
	"strings"
	"testing"

	"cricket/models"

	"github.com/stretchr/testify/require"
)

func TestTeamFormValid(t *testing.T) {
	f := ParseTeamForm(url.Values{"name": {"  Rajasthan Royals "}, "city": {"Jaipur"}})

	team, ok := f.Clean()
	require.True(t, ok)
	require.Empty(t, f.Errors)
	require.Equal(t, "Rajasthan Royals", team.Name)
	require.Equal(t, "Jaipur", team.City)
}

func TestTeamFormErrors(t *testing.T) {
	f := ParseTeamForm(url.Values{})
	_, ok := f.Clean()
	require.False(t, ok)
	require.Equal(t, msgRequired, f.Errors.Get("name"))
	require.Equal(t, msgRequired, f.Errors.Get("city"))

	f = ParseTeamForm(url.Values{"name": {strings.Repeat("x", 101)}, "city": {"   "}})
	_, ok = f.Clean()
	require.False(t, ok)
	require.Equal(t, "Ensure this value has at most 100 characters (it has 101).", f.Errors.Get("name"))
	require.Equal(t, msgRequired, f.Errors.Get("city"))
}

func validPlayerValues() url.Values {
	return url.Values{
		"name":       {"Dhoni"},
		"age":        {"42"},
		"experience": {"20"},
		"role":       {"Wicket-Keeper"},
		"shirt_no":   {"7"},
	}
}

func TestPlayerFormValid(t *testing.T) {
	values := validPlayerValues()
	values.Set("team", "99")

	f := ParsePlayerForm(values)
	p, ok := f.Clean()
	require.True(t, ok)
	require.Equal(t, "Dhoni", p.Name)
	require.EqualValues(t, 42, p.Age)
	require.EqualValues(t, 20, p.Experience)
	require.Equal(t, models.RoleWicketKeeper, p.Role)
	require.EqualValues(t, 7, p.ShirtNo)
	require.Zero(t, p.TeamID)
	require.Nil(t, p.Team)
}

func TestPlayerFormZeroValuesAccepted(t *testing.T) {
	values := validPlayerValues()
	values.Set("age", "0")
	values.Set("experience", "+0")
	values.Set("shirt_no", "0")

	p, ok := ParsePlayerForm(values).Clean()
	require.True(t, ok)
	require.Zero(t, p.Age)
	require.Zero(t, p.ShirtNo)
}

func TestPlayerFormFieldErrors(t *testing.T) {
	tests := []struct {
		field string
		value string
		want  string
	}{
		{"name", "", msgRequired},
		{"name", strings.Repeat("a", 21), "Ensure this value has at most 20 characters (it has 21)."},
		{"age", "", msgRequired},
		{"age", "-1", "Ensure this value is greater than or equal to 0."},
		{"age", "twelve", msgInteger},
		{"age", "1.5", msgInteger},
		{"age", "99999999999999999999", "Ensure this value is less than or equal to 9223372036854775807."},
		{"experience", "2147483648", "Ensure this value is less than or equal to 2147483647."},
		{"shirt_no", "-7", "Ensure this value is greater than or equal to 0."},
		{"role", "", msgRequired},
		{"role", "Captain", "Select a valid choice. Captain is not one of the available choices."},
		{"role", " Batsman ", "Select a valid choice.  Batsman  is not one of the available choices."},
		{"role", "batsman", "Select a valid choice. batsman is not one of the available choices."},
	}
	for _, tt := range tests {
		t.Run(tt.field+"="+tt.value, func(t *testing.T) {
			values := validPlayerValues()
			values.Set(tt.field, tt.value)

			f := ParsePlayerForm(values)
			p, ok := f.Clean()
			require.False(t, ok)
			require.Nil(t, p)
			require.Len(t, f.Errors, 1)
			require.Equal(t, tt.want, f.Errors.Get(tt.field))
		})
	}
}

func TestPlayerFormNameCountsRunes(t *testing.T) {
	values := validPlayerValues()
	values.Set("name", strings.Repeat("é", 20))

	_, ok := ParsePlayerForm(values).Clean()
	require.True(t, ok)
}

func TestErrorsKeepFirstMessage(t *testing.T) {
	errs := Errors{}
	require.False(t, errs.Any())
	errs.Add("name", "first")
	errs.Add("name", "second")
	require.True(t, errs.Has("name"))
	require.Equal(t, "first", errs.Get("name"))
	require.False(t, errs.Has("city"))
}

func TestPlayerFormRoles(t *testing.T) {
	require.Equal(t, models.Roles, NewPlayerForm().Roles())
}
