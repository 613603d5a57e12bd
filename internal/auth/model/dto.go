// Package model provides request and response types of the auth endpoints.
package model

import (
	profileModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/profile/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/policy"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/session"
)

// LoginRequest represents the login form.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// MeResponse describes the signed-in client: its session state plus what
// the shell renders around every screen.
type MeResponse struct {
	State      session.View     `json:"state"`
	Navigation []policy.NavItem `json:"navigation"`
	RoleLabel  string           `json:"role_label,omitempty"`
}

// NewMeResponse builds the response for view. Navigation and the role label
// are only filled in when the client is authenticated.
func NewMeResponse(view session.View) MeResponse {
	resp := MeResponse{State: view, Navigation: []policy.NavItem{}}
	if !view.IsAuthenticated {
		return resp
	}
	var role profileModel.Role
	if view.Profile != nil {
		role = view.Profile.RoleOrNone()
	}
	resp.Navigation = policy.NavigationSet(role)
	resp.RoleLabel = policy.RoleLabel(role)
	return resp
}
