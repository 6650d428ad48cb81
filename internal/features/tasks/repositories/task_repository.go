package tasks_repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	tasks_enums "teamboard/internal/features/tasks/enums"
	tasks_models "teamboard/internal/features/tasks/models"
	"teamboard/internal/storage"
)

type TaskRepository struct{}

func (r *TaskRepository) GetBoard(projectID uuid.UUID) ([]*tasks_models.Task, error) {
	var tasks = make([]*tasks_models.Task, 0)

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&tasks).Error

	return tasks, err
}

func (r *TaskRepository) GetTaskByID(taskID uuid.UUID) (*tasks_models.Task, error) {
	var task tasks_models.Task

	if err := storage.GetDb().Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &task, nil
}

// ReplaceBoard swaps the whole board for a project in one
// transaction so readers never observe a half-saved board.
func (r *TaskRepository) ReplaceBoard(projectID uuid.UUID, tasks []*tasks_models.Task) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&tasks_models.Task{}).Error; err != nil {
			return err
		}

		if len(tasks) == 0 {
			return nil
		}

		return tx.Create(tasks).Error
	})
}

func (r *TaskRepository) UpdateTaskStatus(taskID uuid.UUID, status tasks_enums.TaskStatus) error {
	return storage.GetDb().
		Model(&tasks_models.Task{}).
		Where("id = ?", taskID).
		Update("status", status).Error
}

func (r *TaskRepository) CountIncomplete(projectID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&tasks_models.Task{}).
		Where("project_id = ? AND status != ?", projectID, tasks_enums.TaskStatusDone).
		Count(&count).Error

	return count, err
}

func (r *TaskRepository) UnassignMember(projectID, userID uuid.UUID) error {
	return storage.GetDb().
		Model(&tasks_models.Task{}).
		Where("project_id = ? AND assigned_to = ?", projectID, userID).
		Updates(map[string]any{
			"assigned_to":      nil,
			"assigned_to_name": "",
		}).Error
}

func (r *TaskRepository) UpdateAssigneeName(userID uuid.UUID, name string) error {
	return storage.GetDb().
		Model(&tasks_models.Task{}).
		Where("assigned_to = ?", userID).
		Update("assigned_to_name", name).Error
}

func (r *TaskRepository) DeleteByProjectTx(tx *gorm.DB, projectID uuid.UUID) error {
	return tx.Where("project_id = ?", projectID).Delete(&tasks_models.Task{}).Error
}
