package chat

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID         uuid.UUID `json:"id"         gorm:"column:id"`
	ProjectID  uuid.UUID `json:"projectId"  gorm:"column:project_id"`
	AuthorID   uuid.UUID `json:"authorId"   gorm:"column:author_id"`
	AuthorName string    `json:"authorName" gorm:"column:author_name"`
	Content    string    `json:"content"    gorm:"column:content"`
	CreatedAt  time.Time `json:"createdAt"  gorm:"column:created_at"`
}

func (Message) TableName() string {
	return "messages"
}

const DefaultAutoDeleteDays = 7

// ChatSettings controls the retention window of a project's chat.
type ChatSettings struct {
	ProjectID      uuid.UUID `json:"projectId"      gorm:"column:project_id;primaryKey"`
	AutoDeleteDays int       `json:"autoDeleteDays" gorm:"column:auto_delete_days"`
	UpdatedAt      time.Time `json:"updatedAt"      gorm:"column:updated_at"`
}

func (ChatSettings) TableName() string {
	return "chat_settings"
}
