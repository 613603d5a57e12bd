package model

import (
	"strings"

	seasonModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/season/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

// CreateTeamRequest is the team form on creation. SeasonID defaults to
// the club's current season.
type CreateTeamRequest struct {
	SeasonID         string  `json:"season_id"`
	Name             string  `json:"name" binding:"required"`
	Category         string  `json:"category"`
	Gender           string  `json:"gender" binding:"omitempty,oneof=female male mixed"`
	CompetitionLevel *string `json:"competition_level"`
	Notes            *string `json:"notes"`
}

// ToTeam builds the record to insert.
func (r *CreateTeamRequest) ToTeam(clubID, seasonID string) *Team {
	t := &Team{
		ClubID:           clubID,
		SeasonID:         seasonID,
		Name:             strings.TrimSpace(r.Name),
		Category:         strings.TrimSpace(r.Category),
		Gender:           r.Gender,
		CompetitionLevel: store.OptionalText(r.CompetitionLevel),
		Notes:            store.OptionalText(r.Notes),
	}
	if t.Category == "" {
		t.Category = DefaultCategory
	}
	if t.Gender == "" {
		t.Gender = DefaultGender
	}
	return t
}

// UpdateTeamRequest is a partial team update.
type UpdateTeamRequest struct {
	Name             *string `json:"name" binding:"omitempty,min=1"`
	Category         *string `json:"category" binding:"omitempty,min=1"`
	Gender           *string `json:"gender" binding:"omitempty,oneof=female male mixed"`
	CompetitionLevel *string `json:"competition_level"`
	HeadCoachID      *string `json:"head_coach_id"`
	AssistantCoachID *string `json:"assistant_coach_id"`
	Notes            *string `json:"notes"`
}

// Patch returns the columns to update.
func (r *UpdateTeamRequest) Patch() store.Patch {
	p := store.Patch{}
	store.SetText(p, "name", r.Name)
	store.SetText(p, "category", r.Category)
	store.SetText(p, "gender", r.Gender)
	store.SetText(p, "competition_level", r.CompetitionLevel)
	store.SetText(p, "head_coach_id", r.HeadCoachID)
	store.SetText(p, "assistant_coach_id", r.AssistantCoachID)
	store.SetText(p, "notes", r.Notes)
	return p
}

// TeamsResponse is the teams screen: the season shown and its teams.
// Season is nil when the club has no current season.
type TeamsResponse struct {
	Season *seasonModel.Season `json:"season"`
	Teams  []Team              `json:"teams"`
}
