package models

import (
	"time"
)

type UserRole int8

const (
	RoleAdmin  UserRole = 1
	RoleSeller UserRole = 2
)

func (r UserRole) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleSeller:
		return "seller"
	default:
		return "unknown"
	}
}

type User struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Username      string    `gorm:"size:255;uniqueIndex;not null" json:"username"`
	Email         *string   `gorm:"size:255;uniqueIndex" json:"email"`
	EmailVerified bool      `gorm:"default:false" json:"email_verified"`
	Password      string    `gorm:"size:255" json:"-"`
	IsAdmin       bool      `gorm:"default:false" json:"is_admin"`
	Role          UserRole  `gorm:"type:smallint;not null;default:2" json:"role"`
	TokenVersion  int       `gorm:"default:1" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

// HasAdminRights reports whether the user may process credit requests.
func (u *User) HasAdminRights() bool {
	return u != nil && (u.IsAdmin || u.Role == RoleAdmin)
}

// EmailAddress returns the email or an empty string for users without one.
func (u *User) EmailAddress() string {
	if u == nil || u.Email == nil {
		return ""
	}
	return *u.Email
}
