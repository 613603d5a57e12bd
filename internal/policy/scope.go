// Package policy holds the authorization and scoping rules: which club's
// data a user may touch and which navigation entries they see. It has no
// side effects.
package policy

import (
	"errors"
	"strings"

	profileModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/profile/model"
)

// ErrNoScope indicates the user has no club assigned.
var ErrNoScope = errors.New("no club assigned")

// ClubScope is the club every read and write is restricted to. The zero
// value is not a valid scope; obtain one from NewClubScope or ScopeFromProfile.
type ClubScope struct {
	clubID string
}

// NewClubScope validates clubID.
func NewClubScope(clubID string) (ClubScope, error) {
	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return ClubScope{}, ErrNoScope
	}
	return ClubScope{clubID: clubID}, nil
}

// ScopeFromProfile derives the scope of the signed-in user.
func ScopeFromProfile(p *profileModel.Profile) (ClubScope, error) {
	if p == nil {
		return ClubScope{}, ErrNoScope
	}
	return NewClubScope(p.ClubID)
}

// ClubID returns the scoped club id.
func (s ClubScope) ClubID() string {
	return s.clubID
}

// Valid reports whether s was built from a club id.
func (s ClubScope) Valid() bool {
	return s.clubID != ""
}

// Require returns ErrNoScope for the zero scope. Access functions call it
// before touching the store.
func (s ClubScope) Require() error {
	if !s.Valid() {
		return ErrNoScope
	}
	return nil
}
