package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const AdminRole = "admin"

type User struct {
	gorm.Model
	UUID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4()"`
	Username    string    `gorm:"uniqueIndex"`
	Email       string    `gorm:"uniqueIndex"`
	IsSuperuser bool
	Roles       []Role `gorm:"many2many:user_roles;"`
}

// IsPrivileged reports whether the user may act on other users' content.
func (u *User) IsPrivileged() bool {
	if u.IsSuperuser {
		return true
	}

	for _, role := range u.Roles {
		if role.Name == AdminRole {
			return true
		}
	}

	return false
}

type Role struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex"`
	Description string
}
