package tasks_dto

import (
	"github.com/google/uuid"

	tasks_models "teamboard/internal/features/tasks/models"
)

// Board save actions that only the project owner may perform.
const (
	BoardActionAdd    = "add"
	BoardActionDelete = "delete"
)

type BoardResponseDTO struct {
	Todo       []*tasks_models.Task `json:"todo"`
	InProgress []*tasks_models.Task `json:"inProgress"`
	Done       []*tasks_models.Task `json:"done"`
}

type BoardTaskDTO struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"       binding:"required,min=1,max=500"`
	Description string     `json:"description"`
	AssignedTo  *uuid.UUID `json:"assignedTo"`
}

type SaveBoardRequestDTO struct {
	Todo       []BoardTaskDTO `json:"todo"`
	InProgress []BoardTaskDTO `json:"inProgress"`
	Done       []BoardTaskDTO `json:"done"`
	Action     string         `json:"action" binding:"omitempty,oneof=add delete move"`
}
