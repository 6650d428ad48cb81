package timetracking

import (
	projects_services "teamboard/internal/features/projects/services"
)

var timeEntryService = &TimeEntryService{
	timeEntryRepository: &TimeEntryRepository{},
	projectService:      projects_services.GetProjectService(),
}

var timeEntryController = &TimeEntryController{
	timeEntryService: timeEntryService,
}

func GetTimeEntryService() *TimeEntryService {
	return timeEntryService
}

func GetTimeEntryController() *TimeEntryController {
	return timeEntryController
}

func SetupDependencies() {
	projects_services.GetMembershipService().AddMemberRemovalListener(timeEntryService)
}
