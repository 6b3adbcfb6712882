// Package store is the data access layer for teams and players.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cricket/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Options struct {
	UniqueShirtNo bool
}

type Store struct {
	db   *gorm.DB
	opts Options
}

func New(db *gorm.DB, opts Options) *Store {
	return &Store{db: db, opts: opts}
}

// Transaction runs fn against a store bound to a single database transaction.
// Everything fn writes is rolled back if it returns an error.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx, opts: s.opts})
	})
}

func (s *Store) ListTeams(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if err := s.db.WithContext(ctx).Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// FirstTeams returns up to n teams in the storage's natural order.
func (s *Store) FirstTeams(ctx context.Context, n int) ([]models.Team, error) {
	var teams []models.Team
	if err := s.db.WithContext(ctx).Limit(n).Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("first teams: %w", err)
	}
	return teams, nil
}

func (s *Store) GetTeam(ctx context.Context, id uint) (*models.Team, error) {
	var team models.Team
	if err := s.db.WithContext(ctx).First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return &team, nil
}

func (s *Store) CreateTeam(ctx context.Context, team *models.Team) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(team).Error; err != nil {
		return fmt.Errorf("create team: %w", err)
	}
	return nil
}

// CreatePlayer inserts p under the team with teamID. The team row is locked
// for the duration of the transaction so it cannot disappear between the
// lookup and the insert. Any team already set on p is replaced.
func (s *Store) CreatePlayer(ctx context.Context, teamID uint, p *models.Player) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var team models.Team
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&team, teamID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamNotFound
		}
		if err != nil {
			return fmt.Errorf("lock team: %w", err)
		}

		if s.opts.UniqueShirtNo {
			var count int64
			err := tx.Model(&models.Player{}).
				Where("team_id = ? AND shirt_no = ?", team.ID, p.ShirtNo).
				Count(&count).Error
			if err != nil {
				return fmt.Errorf("check shirt number: %w", err)
			}
			if count > 0 {
				return ErrShirtNumberTaken
			}
		}

		p.TeamID = team.ID
		p.Team = nil
		if err := tx.Omit(clause.Associations).Create(p).Error; err != nil {
			return fmt.Errorf("create player: %w", err)
		}
		p.Team = &team
		return nil
	})
}

// DeleteTeam removes a team and its players in one transaction and reports
// how many players went with it.
func (s *Store) DeleteTeam(ctx context.Context, id uint) (int64, error) {
	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var team models.Team
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&team, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamNotFound
		}
		if err != nil {
			return fmt.Errorf("lock team: %w", err)
		}

		res := tx.Where("team_id = ?", team.ID).Delete(&models.Player{})
		if res.Error != nil {
			return fmt.Errorf("delete players: %w", res.Error)
		}
		removed = res.RowsAffected

		if err := tx.Delete(&team).Error; err != nil {
			return fmt.Errorf("delete team: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// SearchTeams matches q case-insensitively against name and city. An empty
// query returns every team.
func (s *Store) SearchTeams(ctx context.Context, q string) ([]models.Team, error) {
	query := s.db.WithContext(ctx).Model(&models.Team{})
	if pattern := likePattern(q); pattern != "" {
		query = query.Where("LOWER(name) LIKE ? OR LOWER(city) LIKE ?", pattern, pattern)
	}

	var teams []models.Team
	if err := query.Order("name").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("search teams: %w", err)
	}
	return teams, nil
}

type PlayerFilter struct {
	Query  string
	TeamID uint
	Role   models.Role
}

// SearchPlayers returns players with their team loaded. Query matches the
// player name or the team name.
func (s *Store) SearchPlayers(ctx context.Context, f PlayerFilter) ([]models.Player, error) {
	query := s.db.WithContext(ctx).
		Model(&models.Player{}).
		Select("players.*").
		Joins("JOIN teams ON teams.id = players.team_id").
		Preload("Team")

	if pattern := likePattern(f.Query); pattern != "" {
		query = query.Where("LOWER(players.name) LIKE ? OR LOWER(teams.name) LIKE ?", pattern, pattern)
	}
	if f.TeamID > 0 {
		query = query.Where("players.team_id = ?", f.TeamID)
	}
	if f.Role != "" {
		query = query.Where("players.role = ?", f.Role)
	}

	var players []models.Player
	if err := query.Order("players.id").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	return players, nil
}

type TeamSummary struct {
	ID          uint
	Name        string
	City        string
	PlayerCount int64
}

func (s *Store) TeamSummaries(ctx context.Context) ([]TeamSummary, error) {
	var rows []TeamSummary
	err := s.db.WithContext(ctx).
		Model(&models.Team{}).
		Select("teams.id, teams.name, teams.city, COUNT(players.id) AS player_count").
		Joins("LEFT JOIN players ON players.team_id = teams.id").
		Group("teams.id, teams.name, teams.city").
		Order("teams.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("team summaries: %w", err)
	}
	return rows, nil
}

func likePattern(q string) string {
	q = strings.TrimSpace(q)
	if q == "" {
		return ""
	}
	return "%" + strings.ToLower(q) + "%"
}
