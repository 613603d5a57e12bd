// Package model provides the player entity and its request types.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Playing positions.
const (
	PositionSetter   = "S"
	PositionOutside  = "OH"
	PositionMiddle   = "MB"
	PositionOpposite = "OPP"
	PositionLibero   = "L"
)

// Player is a club member who plays. Players are never hard-deleted;
// deactivation clears IsActive.
type Player struct {
	ID                string    `gorm:"primaryKey;column:id" json:"id,omitempty"`
	ClubID            string    `gorm:"column:club_id;not null;index" json:"club_id"`
	FirstName         string    `gorm:"column:first_name;not null" json:"first_name"`
	LastName          string    `gorm:"column:last_name;not null" json:"last_name"`
	BirthDate         *string   `gorm:"column:birth_date" json:"birth_date"`
	MainPosition      string    `gorm:"column:main_position;not null" json:"main_position"`
	SecondaryPosition *string   `gorm:"column:secondary_position" json:"secondary_position"`
	DominantHand      *string   `gorm:"column:dominant_hand" json:"dominant_hand"`
	HeightCM          *int      `gorm:"column:height_cm" json:"height_cm"`
	Notes             *string   `gorm:"column:notes" json:"notes"`
	IsActive          bool      `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Player) TableName() string {
	return "players"
}

// BeforeCreate assigns an id when the database adapter inserts the row.
func (p *Player) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// FullName returns "First Last".
func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}
