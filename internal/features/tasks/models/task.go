package tasks_models

import (
	"time"

	"github.com/google/uuid"

	tasks_enums "teamboard/internal/features/tasks/enums"
)

type Task struct {
	ID          uuid.UUID              `json:"id"          gorm:"column:id"`
	ProjectID   uuid.UUID              `json:"projectId"   gorm:"column:project_id"`
	Title       string                 `json:"title"       gorm:"column:title"`
	Description string                 `json:"description" gorm:"column:description"`
	Status      tasks_enums.TaskStatus `json:"status"      gorm:"column:status"`
	Position    int                    `json:"position"    gorm:"column:position"`

	// Assignee name is denormalized for board rendering and kept in
	// sync by the user rename listener.
	AssignedTo     *uuid.UUID `json:"assignedTo"     gorm:"column:assigned_to"`
	AssignedToName string     `json:"assignedToName" gorm:"column:assigned_to_name"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}
