package templates

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed *.html
var files embed.FS

var pages = []string{
	"team_list", "add_team", "add_player", "match_list",
	"admin_teams", "admin_players",
}

var funcMap = template.FuncMap{
	"selected": func(a, b any) bool {
		return fmt.Sprint(a) == fmt.Sprint(b)
	},
}

// Parse loads every page paired with the base layout, keyed by page name.
func Parse() (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.New("").Funcs(funcMap).ParseFS(files, "base.html", page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		templates[page] = t
	}
	return templates, nil
}
