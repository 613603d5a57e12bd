package model

import (
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

// AddPlayerRequest is the add-to-roster form. The team comes from the path.
type AddPlayerRequest struct {
	PlayerID         string  `json:"player_id" binding:"required"`
	SeasonID         string  `json:"season_id" binding:"required"`
	JerseyNumber     *string `json:"jersey_number"`
	Role             *string `json:"role"`
	ExpectedCategory *string `json:"expected_category"`
	CurrentCategory  *string `json:"current_category"`
	Status           *string `json:"status"`
	Notes            *string `json:"notes"`
}

// ToEntry builds the entry to insert for teamID.
func (r *AddPlayerRequest) ToEntry(teamID string) *RosterEntry {
	e := &RosterEntry{
		PlayerID:         r.PlayerID,
		TeamID:           teamID,
		SeasonID:         r.SeasonID,
		JerseyNumber:     store.OptionalText(r.JerseyNumber),
		Role:             store.OptionalText(r.Role),
		ExpectedCategory: store.OptionalText(r.ExpectedCategory),
		CurrentCategory:  store.OptionalText(r.CurrentCategory),
		Status:           store.OptionalText(r.Status),
		Notes:            store.OptionalText(r.Notes),
	}
	if e.Role == nil {
		role := DefaultRole
		e.Role = &role
	}
	if e.Status == nil {
		status := DefaultStatus
		e.Status = &status
	}
	return e
}

// UpdateEntryRequest edits a roster entry in place.
type UpdateEntryRequest struct {
	JerseyNumber     *string `json:"jersey_number"`
	Role             *string `json:"role"`
	ExpectedCategory *string `json:"expected_category"`
	CurrentCategory  *string `json:"current_category"`
	Status           *string `json:"status"`
	Notes            *string `json:"notes"`
}

// Patch returns the columns to update.
func (r *UpdateEntryRequest) Patch() store.Patch {
	p := store.Patch{}
	store.SetText(p, "jersey_number", r.JerseyNumber)
	store.SetText(p, "role", r.Role)
	store.SetText(p, "expected_category", r.ExpectedCategory)
	store.SetText(p, "current_category", r.CurrentCategory)
	store.SetText(p, "status", r.Status)
	store.SetText(p, "notes", r.Notes)
	return p
}
