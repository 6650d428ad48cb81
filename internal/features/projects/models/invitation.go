package projects_models

import (
	"time"

	"github.com/google/uuid"
)

// Invitation exists only while pending. Accept and decline both remove
// the row.
type Invitation struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	ProjectID uuid.UUID `json:"projectId" gorm:"column:project_id"`
	InviteeID uuid.UUID `json:"inviteeId" gorm:"column:invitee_id"`
	InviterID uuid.UUID `json:"inviterId" gorm:"column:inviter_id"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (Invitation) TableName() string {
	return "invitations"
}
