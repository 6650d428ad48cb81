package notifications

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeProjectInvitation  = "project_invitation"
	TypeInvitationAccepted = "invitation_accepted"
	TypeTaskCompleted      = "task_completed"
	TypeDeletionVote       = "deletion_vote"
	TypeDeletionRejected   = "deletion_rejected"
	TypeProjectDeleted     = "project_deleted"
)

type Notification struct {
	ID        uuid.UUID  `json:"id"        gorm:"column:id"`
	UserID    uuid.UUID  `json:"userId"    gorm:"column:user_id"`
	Type      string     `json:"type"      gorm:"column:type"`
	Message   string     `json:"message"   gorm:"column:message"`
	ProjectID *uuid.UUID `json:"projectId" gorm:"column:project_id"`
	TaskID    *uuid.UUID `json:"taskId"    gorm:"column:task_id"`
	Read      bool       `json:"read"      gorm:"column:read"`
	CreatedAt time.Time  `json:"createdAt" gorm:"column:created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

// Draft is an unsaved notification produced by a fan-out. Dispatch
// persists drafts one by one and logs failures instead of failing the
// operation that produced them.
type Draft struct {
	UserID    uuid.UUID
	Type      string
	Message   string
	ProjectID *uuid.UUID
	TaskID    *uuid.UUID
}
