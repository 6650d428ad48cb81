package projects_services

import (
	"teamboard/internal/cache"
	audit_logs "teamboard/internal/features/audit_logs"
	"teamboard/internal/features/notifications"
	projects_models "teamboard/internal/features/projects/models"
	projects_repositories "teamboard/internal/features/projects/repositories"
	users_services "teamboard/internal/features/users/services"
	cache_utils "teamboard/internal/util/cache"
)

var projectRepository = &projects_repositories.ProjectRepository{}
var membershipRepository = &projects_repositories.MembershipRepository{}
var invitationRepository = &projects_repositories.InvitationRepository{}

var projectService = &ProjectService{
	projectRepository:    projectRepository,
	membershipRepository: membershipRepository,
	auditLogService:      audit_logs.GetAuditLogService(),
	projectCacheUtil:     cache_utils.NewCacheUtil[projects_models.Project](cache.GetCache(), "tb_project:"),
}

var membershipService = &MembershipService{
	membershipRepository: membershipRepository,
	invitationRepository: invitationRepository,
	projectService:       projectService,
	auditLogService:      audit_logs.GetAuditLogService(),
}

var invitationService = &InvitationService{
	invitationRepository: invitationRepository,
	membershipRepository: membershipRepository,
	projectService:       projectService,
	userService:          users_services.GetUserService(),
	notificationService:  notifications.GetNotificationService(),
	auditLogService:      audit_logs.GetAuditLogService(),
}

func GetProjectService() *ProjectService {
	return projectService
}

func GetMembershipService() *MembershipService {
	return membershipService
}

func GetInvitationService() *InvitationService {
	return invitationService
}

func SetupDependencies() {
	audit_logs.GetAuditLogService().SetMembershipChecker(projectService)
	users_services.GetUserService().AddRenameListener(projectService)
}
