package projects_controllers

import (
	projects_services "teamboard/internal/features/projects/services"
)

var projectController = &ProjectController{
	projectService: projects_services.GetProjectService(),
}

var membershipController = &MembershipController{
	membershipService: projects_services.GetMembershipService(),
	invitationService: projects_services.GetInvitationService(),
}

func GetProjectController() *ProjectController {
	return projectController
}

func GetMembershipController() *MembershipController {
	return membershipController
}
