package projects_dto

import (
	"time"

	"github.com/google/uuid"

	users_enums "teamboard/internal/features/users/enums"
)

type CreateProjectRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type ProjectResponseDTO struct {
	ID        uuid.UUID                `json:"id"        gorm:"column:id"`
	Name      string                   `json:"name"      gorm:"column:name"`
	OwnerID   uuid.UUID                `json:"ownerId"   gorm:"column:owner_id"`
	OwnerName string                   `json:"ownerName" gorm:"column:owner_name"`
	CreatedAt time.Time                `json:"createdAt" gorm:"column:created_at"`
	UserRole  *users_enums.ProjectRole `json:"userRole,omitempty" gorm:"column:user_role"`
}

type ListProjectsResponseDTO struct {
	Projects []ProjectResponseDTO `json:"projects"`
}

type ProjectMemberResponseDTO struct {
	UserID    uuid.UUID               `json:"userId"   gorm:"column:user_id"`
	Name      string                  `json:"name"     gorm:"column:name"`
	Email     string                  `json:"email"    gorm:"column:email"`
	Role      users_enums.ProjectRole `json:"role"     gorm:"column:role"`
	JoinedAt  time.Time               `json:"joinedAt" gorm:"column:created_at"`
}

type ListMembersResponseDTO struct {
	Members []*ProjectMemberResponseDTO `json:"members"`
}

type InviteMemberRequestDTO struct {
	Email string `json:"email" binding:"required,email"`
}

type PendingInvitationDTO struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id"`
	ProjectID   uuid.UUID `json:"projectId"   gorm:"column:project_id"`
	ProjectName string    `json:"projectName" gorm:"column:project_name"`
	InviterName string    `json:"inviterName" gorm:"column:inviter_name"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
}

type ListInvitationsResponseDTO struct {
	Invitations []*PendingInvitationDTO `json:"invitations"`
}
