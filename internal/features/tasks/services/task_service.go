package tasks_services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	audit_logs "teamboard/internal/features/audit_logs"
	"teamboard/internal/features/notifications"
	projects_services "teamboard/internal/features/projects/services"
	tasks_dto "teamboard/internal/features/tasks/dto"
	tasks_enums "teamboard/internal/features/tasks/enums"
	tasks_models "teamboard/internal/features/tasks/models"
	tasks_repositories "teamboard/internal/features/tasks/repositories"
	users_models "teamboard/internal/features/users/models"
	users_services "teamboard/internal/features/users/services"
)

type TaskService struct {
	taskRepository      *tasks_repositories.TaskRepository
	projectService      *projects_services.ProjectService
	userService         *users_services.UserService
	notificationService *notifications.NotificationService
	auditLogService     *audit_logs.AuditLogService
}

func (s *TaskService) GetBoard(projectID uuid.UUID, user *users_models.User) (*tasks_dto.BoardResponseDTO, error) {
	isMember, err := s.projectService.IsMember(projectID, user.ID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, errors.New("insufficient permissions to view tasks")
	}

	tasks, err := s.taskRepository.GetBoard(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	return bucketize(tasks), nil
}

// SaveBoard replaces the whole board. The add and delete actions are
// owner only; moving tasks between buckets is open to every member.
func (s *TaskService) SaveBoard(
	projectID uuid.UUID,
	request *tasks_dto.SaveBoardRequestDTO,
	user *users_models.User,
) (*tasks_dto.BoardResponseDTO, error) {
	role, err := s.projectService.GetUserProjectRole(projectID, user.ID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, errors.New("insufficient permissions to modify tasks")
	}

	if request.Action == tasks_dto.BoardActionAdd || request.Action == tasks_dto.BoardActionDelete {
		isOwner, err := s.projectService.IsOwner(projectID, user.ID)
		if err != nil {
			return nil, err
		}
		if !isOwner {
			return nil, errors.New("only project owner can add or delete tasks")
		}
	}

	tasks, err := s.buildBoard(projectID, request)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepository.ReplaceBoard(projectID, tasks); err != nil {
		return nil, fmt.Errorf("failed to save board: %w", err)
	}

	if request.Action == tasks_dto.BoardActionAdd {
		s.auditLogService.WriteAuditLog("Task added to board", &user.ID, &projectID)
	}
	if request.Action == tasks_dto.BoardActionDelete {
		s.auditLogService.WriteAuditLog("Task deleted from board", &user.ID, &projectID)
	}

	return bucketize(tasks), nil
}

func (s *TaskService) CompleteTask(taskID uuid.UUID, user *users_models.User) (*tasks_models.Task, error) {
	task, err := s.taskRepository.GetTaskByID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, errors.New("task not found")
	}

	isMember, err := s.projectService.IsMember(task.ProjectID, user.ID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, errors.New("insufficient permissions to complete task")
	}

	if err := s.taskRepository.UpdateTaskStatus(taskID, tasks_enums.TaskStatusDone); err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	task.Status = tasks_enums.TaskStatusDone

	memberIDs, err := s.projectService.GetMemberIDs(task.ProjectID)
	if err != nil {
		return task, nil
	}

	drafts := make([]notifications.Draft, 0, len(memberIDs))
	for _, memberID := range memberIDs {
		if memberID == user.ID {
			continue
		}

		drafts = append(drafts, notifications.Draft{
			UserID:    memberID,
			Type:      notifications.TypeTaskCompleted,
			Message:   fmt.Sprintf("%s completed task \"%s\"", user.DisplayName(), task.Title),
			ProjectID: &task.ProjectID,
			TaskID:    &task.ID,
		})
	}
	s.notificationService.Dispatch(drafts)

	return task, nil
}

// CountIncompleteTasks reports how many tasks are not in the DONE
// bucket. The deletion workflow keys off this number.
func (s *TaskService) CountIncompleteTasks(projectID uuid.UUID) (int64, error) {
	return s.taskRepository.CountIncomplete(projectID)
}

// OnUserRenamed implements users_interfaces.UserRenameListener.
func (s *TaskService) OnUserRenamed(userID uuid.UUID, name string) error {
	return s.taskRepository.UpdateAssigneeName(userID, name)
}

// OnMemberRemoved implements projects_interfaces.MemberRemovalListener.
func (s *TaskService) OnMemberRemoved(projectID uuid.UUID, userID uuid.UUID) error {
	return s.taskRepository.UnassignMember(projectID, userID)
}

func (s *TaskService) buildBoard(
	projectID uuid.UUID,
	request *tasks_dto.SaveBoardRequestDTO,
) ([]*tasks_models.Task, error) {
	now := time.Now().UTC()
	assigneeNames := map[uuid.UUID]string{}

	buckets := []struct {
		status tasks_enums.TaskStatus
		items  []tasks_dto.BoardTaskDTO
	}{
		{tasks_enums.TaskStatusTodo, request.Todo},
		{tasks_enums.TaskStatusInProgress, request.InProgress},
		{tasks_enums.TaskStatusDone, request.Done},
	}

	tasks := make([]*tasks_models.Task, 0)
	for _, bucket := range buckets {
		for position, item := range bucket.items {
			task := &tasks_models.Task{
				ID:          item.ID,
				ProjectID:   projectID,
				Title:       item.Title,
				Description: item.Description,
				Status:      bucket.status,
				Position:    position,
				AssignedTo:  item.AssignedTo,
				CreatedAt:   now,
				UpdatedAt:   now,
			}

			if task.ID == uuid.Nil {
				task.ID = uuid.New()
			}

			if item.AssignedTo != nil {
				name, ok := assigneeNames[*item.AssignedTo]
				if !ok {
					assignee, err := s.userService.GetUserByID(*item.AssignedTo)
					if err != nil {
						return nil, errors.New("assignee not found")
					}

					name = assignee.DisplayName()
					assigneeNames[*item.AssignedTo] = name
				}

				task.AssignedToName = name
			}

			tasks = append(tasks, task)
		}
	}

	return tasks, nil
}

func bucketize(tasks []*tasks_models.Task) *tasks_dto.BoardResponseDTO {
	board := &tasks_dto.BoardResponseDTO{
		Todo:       make([]*tasks_models.Task, 0),
		InProgress: make([]*tasks_models.Task, 0),
		Done:       make([]*tasks_models.Task, 0),
	}

	for _, task := range tasks {
		switch task.Status {
		case tasks_enums.TaskStatusTodo:
			board.Todo = append(board.Todo, task)
		case tasks_enums.TaskStatusInProgress:
			board.InProgress = append(board.InProgress, task)
		case tasks_enums.TaskStatusDone:
			board.Done = append(board.Done, task)
		}
	}

	return board
}
