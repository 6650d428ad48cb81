package users_models

import (
	"time"

	"github.com/google/uuid"
)

type UserSettings struct {
	UserID    uuid.UUID `json:"userId"    gorm:"column:user_id;primaryKey"`
	DarkMode  bool      `json:"darkMode"  gorm:"column:dark_mode"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}
