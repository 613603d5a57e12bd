// Package model provides roster entries: a player's membership of a team
// in a season.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Defaults for a newly added roster entry.
const (
	DefaultRole   = "Jugadora"
	DefaultStatus = "active"
)

// RosterPlayer is the player summary embedded in a roster entry.
type RosterPlayer struct {
	ID           string `gorm:"primaryKey;column:id" json:"id,omitempty"`
	FirstName    string `gorm:"column:first_name" json:"first_name"`
	LastName     string `gorm:"column:last_name" json:"last_name"`
	MainPosition string `gorm:"column:main_position" json:"main_position"`
}

// TableName specifies the table name for GORM.
func (RosterPlayer) TableName() string {
	return "players"
}

// RosterEntry links a player to a team for a season. Entries carry no
// club id; they belong to the club of their team.
type RosterEntry struct {
	ID               string        `gorm:"primaryKey;column:id" json:"id,omitempty"`
	PlayerID         string        `gorm:"column:player_id;not null;uniqueIndex:idx_player_team_season" json:"player_id"`
	TeamID           string        `gorm:"column:team_id;not null;uniqueIndex:idx_player_team_season" json:"team_id"`
	SeasonID         string        `gorm:"column:season_id;not null;uniqueIndex:idx_player_team_season" json:"season_id"`
	JerseyNumber     *string       `gorm:"column:jersey_number" json:"jersey_number"`
	Role             *string       `gorm:"column:role" json:"role"`
	ExpectedCategory *string       `gorm:"column:expected_category" json:"expected_category"`
	CurrentCategory  *string       `gorm:"column:current_category" json:"current_category"`
	Status           *string       `gorm:"column:status" json:"status"`
	Notes            *string       `gorm:"column:notes" json:"notes"`
	CreatedAt        time.Time     `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time     `gorm:"column:updated_at" json:"updated_at"`
	Player           *RosterPlayer `gorm:"foreignKey:PlayerID" json:"players,omitempty"`
}

// TableName specifies the table name for GORM.
func (RosterEntry) TableName() string {
	return "player_team_season"
}

// BeforeCreate assigns an id when the database adapter inserts the row.
func (e *RosterEntry) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
