package models

import (
	"time"
)

type Team struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	City      string    `gorm:"not null;size:100" json:"city"`
	Players   []Player  `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE" json:"players,omitempty"`
}

func (t Team) String() string {
	return t.Name
}
