// Package model provides the season entity and its request types.
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Season is a club's competition year. At most one season per club is
// current.
type Season struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id,omitempty"`
	ClubID    string    `gorm:"column:club_id;not null;index" json:"club_id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	StartDate *string   `gorm:"column:start_date" json:"start_date"`
	EndDate   *string   `gorm:"column:end_date" json:"end_date"`
	IsCurrent bool      `gorm:"column:is_current;not null" json:"is_current"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Season) TableName() string {
	return "seasons"
}

// BeforeCreate assigns an id when the database adapter inserts the row.
func (s *Season) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// CreateSeasonRequest is the season form. Every field is optional: an
// empty body creates "Temporada <year>-<year+1>" and makes it current.
type CreateSeasonRequest struct {
	Name      *string `json:"name"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	IsCurrent *bool   `json:"is_current"`
}

// DefaultName returns the name of the season starting in year.
func DefaultName(year int) string {
	return fmt.Sprintf("Temporada %d-%d", year, year+1)
}
