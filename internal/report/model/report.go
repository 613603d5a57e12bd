// Package model provides player reports: dated notes written by staff
// about one player.
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the format of Report.Date.
const DateLayout = "2006-01-02"

// Report is a staff note about a player.
type Report struct {
	ID           string    `gorm:"primaryKey;column:id" json:"id,omitempty"`
	ClubID       string    `gorm:"column:club_id;not null;index" json:"club_id"`
	PlayerID     string    `gorm:"column:player_id;not null;index" json:"player_id"`
	AuthorUserID string    `gorm:"column:author_user_id;not null" json:"author_user_id"`
	Date         string    `gorm:"column:date;not null" json:"date"`
	Title        string    `gorm:"column:title;not null" json:"title"`
	Content      string    `gorm:"column:content;not null" json:"content"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Report) TableName() string {
	return "reports"
}

// BeforeCreate assigns an id when the database adapter inserts the row.
func (r *Report) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

var (
	// ErrNoAuthor indicates a report without a signed-in author.
	ErrNoAuthor = errors.New("report author is required")
	// ErrEmptyReport indicates a title or content that is blank after
	// sanitizing.
	ErrEmptyReport = errors.New("report title and content are required")
	// ErrEmptyUpdate indicates an update request without fields.
	ErrEmptyUpdate = errors.New("no fields to update")
)

// CreateReportRequest is the new report form. Date defaults to today.
type CreateReportRequest struct {
	Date    string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdateReportRequest edits a report.
type UpdateReportRequest struct {
	Date    *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Title   *string `json:"title" binding:"omitempty,min=1"`
	Content *string `json:"content" binding:"omitempty,min=1"`
}
