// Package model provides the team entity and its request types.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Genders accepted for a team.
const (
	GenderFemale = "female"
	GenderMale   = "male"
	GenderMixed  = "mixed"
)

// Form defaults for a new team.
const (
	DefaultCategory = "Senior"
	DefaultGender   = GenderFemale
)

// Team is a squad of the club in one season.
type Team struct {
	ID               string    `gorm:"primaryKey;column:id" json:"id,omitempty"`
	ClubID           string    `gorm:"column:club_id;not null;index" json:"club_id"`
	SeasonID         string    `gorm:"column:season_id;not null;index" json:"season_id"`
	Name             string    `gorm:"column:name;not null" json:"name"`
	Category         string    `gorm:"column:category;not null" json:"category"`
	Gender           string    `gorm:"column:gender;not null" json:"gender"`
	CompetitionLevel *string   `gorm:"column:competition_level" json:"competition_level"`
	HeadCoachID      *string   `gorm:"column:head_coach_id" json:"head_coach_id"`
	AssistantCoachID *string   `gorm:"column:assistant_coach_id" json:"assistant_coach_id"`
	Notes            *string   `gorm:"column:notes" json:"notes"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeCreate assigns an id when the database adapter inserts the row.
func (t *Team) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
