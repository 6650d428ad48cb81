package users_models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                   uuid.UUID `json:"id"`
	Email                string    `json:"email"`
	Name                 string    `json:"name"`
	HashedPassword       *string   `json:"-"         gorm:"column:hashed_password"`
	PasswordCreationTime time.Time `json:"-"         gorm:"column:password_creation_time"`
	CreatedAt            time.Time `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) HasPassword() bool {
	return u.HashedPassword != nil && *u.HashedPassword != ""
}

// DisplayName is what other members see in notifications and chat.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}

	return u.Email
}
