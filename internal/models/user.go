package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleAdmin   = "admin"
	RolePartner = "partner"
)

type User struct {
	gorm.Model
	Email               string `gorm:"uniqueIndex;not null" json:"email"`
	Password            string `gorm:"not null" json:"-"`
	FullName            string `gorm:"not null" json:"full_name"`
	Role                string `gorm:"default:'partner'" json:"role"`
	Status              string `gorm:"default:'active'" json:"status"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	TokenVersion        int        `gorm:"default:1" json:"-"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
