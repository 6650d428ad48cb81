package projects_models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	Name      string    `json:"name"      gorm:"column:name"`
	OwnerID   uuid.UUID `json:"ownerId"   gorm:"column:owner_id"`
	OwnerName string    `json:"ownerName" gorm:"column:owner_name"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`

	// Cache-related field for negative caching of lookups
	IsNotExists bool `json:"isNotExists,omitempty" gorm:"-"`
}

func (Project) TableName() string {
	return "projects"
}
