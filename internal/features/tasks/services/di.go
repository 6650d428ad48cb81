package tasks_services

import (
	audit_logs "teamboard/internal/features/audit_logs"
	"teamboard/internal/features/notifications"
	projects_services "teamboard/internal/features/projects/services"
	tasks_repositories "teamboard/internal/features/tasks/repositories"
	users_services "teamboard/internal/features/users/services"
)

var taskService = &TaskService{
	taskRepository:      &tasks_repositories.TaskRepository{},
	projectService:      projects_services.GetProjectService(),
	userService:         users_services.GetUserService(),
	notificationService: notifications.GetNotificationService(),
	auditLogService:     audit_logs.GetAuditLogService(),
}

func GetTaskService() *TaskService {
	return taskService
}

func SetupDependencies() {
	users_services.GetUserService().AddRenameListener(taskService)
	projects_services.GetMembershipService().AddMemberRemovalListener(taskService)
}
