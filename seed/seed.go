// Package seed loads teams and players from a YAML file and inserts them
// through the same validation rules as the web forms.
package seed

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"cricket/forms"
	"cricket/store"

	"gopkg.in/yaml.v3"
)

type File struct {
	Teams []Team `yaml:"teams"`
}

type Team struct {
	Name    string   `yaml:"name"`
	City    string   `yaml:"city"`
	Players []Player `yaml:"players"`
}

type Player struct {
	Name       string `yaml:"name"`
	Age        uint   `yaml:"age"`
	Experience uint   `yaml:"experience"`
	Role       string `yaml:"role"`
	ShirtNo    uint   `yaml:"shirt_no"`
}

type Result struct {
	Teams   int
	Players int
}

func Load(filename string) (*File, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshalling YAML: %w", err)
	}
	return &f, nil
}

// Apply validates every entry first and then writes the whole file in one
// transaction, so a file that fails at any point leaves the database
// untouched.
func Apply(ctx context.Context, st *store.Store, f *File) (Result, error) {
	if err := f.Validate(); err != nil {
		return Result{}, err
	}

	var res Result
	err := st.Transaction(ctx, func(tx *store.Store) error {
		res = Result{}
		for _, t := range f.Teams {
			team, _ := forms.ParseTeamForm(t.values()).Clean()
			if err := tx.CreateTeam(ctx, team); err != nil {
				return fmt.Errorf("team %q: %w", t.Name, err)
			}
			res.Teams++

			for _, p := range t.Players {
				player, _ := forms.ParsePlayerForm(p.values()).Clean()
				if err := tx.CreatePlayer(ctx, team.ID, player); err != nil {
					return fmt.Errorf("team %q player %q: %w", t.Name, p.Name, err)
				}
				res.Players++
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func (f *File) Validate() error {
	for i, t := range f.Teams {
		tf := forms.ParseTeamForm(t.values())
		if _, ok := tf.Clean(); !ok {
			return fmt.Errorf("team #%d (%q): %s", i+1, t.Name, describe(tf.Errors))
		}
		for j, p := range t.Players {
			pf := forms.ParsePlayerForm(p.values())
			if _, ok := pf.Clean(); !ok {
				return fmt.Errorf("team %q player #%d (%q): %s", t.Name, j+1, p.Name, describe(pf.Errors))
			}
		}
	}
	return nil
}

func (t Team) values() url.Values {
	return url.Values{
		"name": {t.Name},
		"city": {t.City},
	}
}

func (p Player) values() url.Values {
	return url.Values{
		"name":       {p.Name},
		"age":        {strconv.FormatUint(uint64(p.Age), 10)},
		"experience": {strconv.FormatUint(uint64(p.Experience), 10)},
		"role":       {p.Role},
		"shirt_no":   {strconv.FormatUint(uint64(p.ShirtNo), 10)},
	}
}

func describe(errs forms.Errors) string {
	parts := make([]string, 0, len(errs))
	for _, field := range []string{"name", "city", "age", "experience", "role", "shirt_no"} {
		if errs.Has(field) {
			parts = append(parts, field+": "+errs.Get(field))
		}
	}
	return strings.Join(parts, "; ")
}
