package models

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleBatsman      Role = "Batsman"
	RoleBowler       Role = "Bowler"
	RoleAllRounder   Role = "All-Rounder"
	RoleWicketKeeper Role = "Wicket-Keeper"
	RoleImpactPlayer Role = "Impact-Player"
)

// Roles lists every playing role in display order.
var Roles = []Role{
	RoleBatsman,
	RoleBowler,
	RoleAllRounder,
	RoleWicketKeeper,
	RoleImpactPlayer,
}

func (r Role) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

type Player struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Name       string    `gorm:"not null;size:20" json:"name"`
	Age        uint      `gorm:"not null" json:"age"`
	Experience uint      `gorm:"not null" json:"experience"`
	Role       Role      `gorm:"not null;size:20" json:"role"`
	ShirtNo    uint      `gorm:"not null" json:"shirt_no"`
	TeamID     uint      `gorm:"not null;index" json:"team_id"`
	Team       *Team     `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE" json:"team,omitempty"`
}

func (p Player) String() string {
	return fmt.Sprintf("%s(%s)", p.Name, p.Role)
}
