package models

import "time"

const (
	RoleOwner  = "owner"
	RolePlayer = "player"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	IsOwner      bool   `gorm:"default:false" json:"is_owner"`

	CreatedAt time.Time `json:"created_at"`
}

// Role is the value carried in the "role" token claim.
func (u *User) Role() string {
	if u.IsOwner {
		return RoleOwner
	}
	return RolePlayer
}
