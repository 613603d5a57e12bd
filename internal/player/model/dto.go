package model

import (
	"strings"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

// CreatePlayerRequest is the player form on creation. club_id comes from
// the caller's scope, never from the body.
type CreatePlayerRequest struct {
	FirstName         string  `json:"first_name" binding:"required"`
	LastName          string  `json:"last_name" binding:"required"`
	BirthDate         *string `json:"birth_date"`
	MainPosition      string  `json:"main_position" binding:"required"`
	SecondaryPosition *string `json:"secondary_position"`
	DominantHand      *string `json:"dominant_hand" binding:"omitempty,oneof=left right"`
	HeightCM          *int    `json:"height_cm" binding:"omitempty,min=100,max=250"`
	Notes             *string `json:"notes"`
	// IsActive defaults to true.
	IsActive *bool `json:"is_active"`
}

// ToPlayer builds the record to insert for clubID.
func (r *CreatePlayerRequest) ToPlayer(clubID string) *Player {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &Player{
		ClubID:            clubID,
		FirstName:         strings.TrimSpace(r.FirstName),
		LastName:          strings.TrimSpace(r.LastName),
		BirthDate:         store.OptionalText(r.BirthDate),
		MainPosition:      strings.TrimSpace(r.MainPosition),
		SecondaryPosition: store.OptionalText(r.SecondaryPosition),
		DominantHand:      store.OptionalText(r.DominantHand),
		HeightCM:          r.HeightCM,
		Notes:             store.OptionalText(r.Notes),
		IsActive:          active,
	}
}

// UpdatePlayerRequest is a partial player update. Absent fields are kept;
// blank optional text fields are cleared.
type UpdatePlayerRequest struct {
	FirstName         *string `json:"first_name" binding:"omitempty,min=1"`
	LastName          *string `json:"last_name" binding:"omitempty,min=1"`
	BirthDate         *string `json:"birth_date"`
	MainPosition      *string `json:"main_position" binding:"omitempty,min=1"`
	SecondaryPosition *string `json:"secondary_position"`
	DominantHand      *string `json:"dominant_hand"`
	HeightCM          *int    `json:"height_cm" binding:"omitempty,min=100,max=250"`
	Notes             *string `json:"notes"`
	IsActive          *bool   `json:"is_active"`
}

// Patch returns the columns to update.
func (r *UpdatePlayerRequest) Patch() store.Patch {
	p := store.Patch{}
	store.SetText(p, "first_name", r.FirstName)
	store.SetText(p, "last_name", r.LastName)
	store.SetText(p, "birth_date", r.BirthDate)
	store.SetText(p, "main_position", r.MainPosition)
	store.SetText(p, "secondary_position", r.SecondaryPosition)
	store.SetText(p, "dominant_hand", r.DominantHand)
	store.Set(p, "height_cm", r.HeightCM)
	store.SetText(p, "notes", r.Notes)
	store.Set(p, "is_active", r.IsActive)
	return p
}

// Status filter values.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusAll      = "all"
)

// PlayerFilter narrows the roster list on the players screen.
type PlayerFilter struct {
	Search   string `form:"search"`
	Position string `form:"position"`
	// Status is active (default), inactive or all.
	Status string `form:"status"`
}

// Normalize fills defaults and validates the status.
func (f PlayerFilter) Normalize() (PlayerFilter, error) {
	f.Search = strings.TrimSpace(f.Search)
	f.Position = strings.TrimSpace(f.Position)
	if f.Position == StatusAll {
		f.Position = ""
	}
	switch f.Status {
	case "":
		f.Status = StatusActive
	case StatusActive, StatusInactive, StatusAll:
	default:
		return f, ErrInvalidStatus
	}
	return f, nil
}

// Apply returns the players matching f, keeping their order. Search
// matches first or last name case-insensitively.
func (f PlayerFilter) Apply(players []Player) []Player {
	term := strings.ToLower(f.Search)
	out := make([]Player, 0, len(players))
	for _, p := range players {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.FirstName), term) &&
			!strings.Contains(strings.ToLower(p.LastName), term) {
			continue
		}
		if f.Position != "" && p.MainPosition != f.Position {
			continue
		}
		if f.Status == StatusActive && !p.IsActive {
			continue
		}
		if f.Status == StatusInactive && p.IsActive {
			continue
		}
		out = append(out, p)
	}
	return out
}
