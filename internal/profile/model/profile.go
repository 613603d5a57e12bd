// Package model provides the profile entity.
package model

// Role controls which navigation entries a user sees.
type Role string

// Known roles.
const (
	RoleDirectorTecnic Role = "director_tecnic"
	RoleEntrenador     Role = "entrenador"
)

// Profile is the application record attached to an authenticated user.
// It is read once per login and never written by this service.
type Profile struct {
	ID       string `gorm:"primaryKey;column:id" json:"id"`
	ClubID   string `gorm:"column:club_id" json:"club_id"`
	FullName string `gorm:"column:full_name" json:"full_name"`
	Role     *Role  `gorm:"column:role" json:"role"`
}

// TableName specifies the table name for GORM.
func (Profile) TableName() string {
	return "profiles"
}

// RoleOrNone returns the role, or "" when absent.
func (p *Profile) RoleOrNone() Role {
	if p == nil || p.Role == nil {
		return ""
	}
	return *p.Role
}
