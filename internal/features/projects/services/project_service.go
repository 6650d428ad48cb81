package projects_services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	audit_logs "teamboard/internal/features/audit_logs"
	projects_dto "teamboard/internal/features/projects/dto"
	projects_interfaces "teamboard/internal/features/projects/interfaces"
	projects_models "teamboard/internal/features/projects/models"
	projects_repositories "teamboard/internal/features/projects/repositories"
	users_enums "teamboard/internal/features/users/enums"
	users_models "teamboard/internal/features/users/models"
	cache_utils "teamboard/internal/util/cache"
	"teamboard/internal/util/logger"
)

type ProjectService struct {
	projectRepository        *projects_repositories.ProjectRepository
	membershipRepository     *projects_repositories.MembershipRepository
	auditLogService          *audit_logs.AuditLogService
	projectDeletionListeners []projects_interfaces.ProjectDeletionListener

	projectCacheUtil *cache_utils.CacheUtil[projects_models.Project]
	singleflight     singleflight.Group // Prevents thundering herd on DB calls
}

func (s *ProjectService) AddProjectDeletionListener(listener projects_interfaces.ProjectDeletionListener) {
	s.projectDeletionListeners = append(s.projectDeletionListeners, listener)
}

func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	creator *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	project := &projects_models.Project{
		ID:        uuid.New(),
		Name:      request.Name,
		OwnerID:   creator.ID,
		OwnerName: creator.DisplayName(),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.projectRepository.CreateProject(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	// Pre-warm cache with new project for immediate availability
	s.projectCacheUtil.Set(project.ID.String(), project)

	membership := &projects_models.ProjectMembership{
		UserID:    creator.ID,
		ProjectID: project.ID,
		Role:      users_enums.ProjectRoleOwner,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return nil, fmt.Errorf("failed to create project membership: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project created: %s", project.Name),
		&creator.ID,
		&project.ID,
	)

	ownerRole := users_enums.ProjectRoleOwner
	return &projects_dto.ProjectResponseDTO{
		ID:        project.ID,
		Name:      project.Name,
		OwnerID:   project.OwnerID,
		OwnerName: project.OwnerName,
		CreatedAt: project.CreatedAt,
		UserRole:  &ownerRole,
	}, nil
}

func (s *ProjectService) GetUserProjects(user *users_models.User) (*projects_dto.ListProjectsResponseDTO, error) {
	projects, err := s.membershipRepository.GetProjectsWithRolesByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user projects: %w", err)
	}

	return &projects_dto.ListProjectsResponseDTO{
		Projects: projects,
	}, nil
}

func (s *ProjectService) GetProject(projectID uuid.UUID, user *users_models.User) (*projects_models.Project, error) {
	isMember, err := s.IsMember(projectID, user.ID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, errors.New("insufficient permissions to view project")
	}

	return s.GetProjectWithCache(projectID)
}

func (s *ProjectService) GetUserProjectRole(projectID uuid.UUID, userID uuid.UUID) (*users_enums.ProjectRole, error) {
	return s.membershipRepository.GetUserProjectRole(projectID, userID)
}

// IsMember implements audit_logs.MembershipChecker.
func (s *ProjectService) IsMember(projectID uuid.UUID, userID uuid.UUID) (bool, error) {
	role, err := s.membershipRepository.GetUserProjectRole(projectID, userID)
	if err != nil {
		return false, err
	}

	return role != nil, nil
}

func (s *ProjectService) IsOwner(projectID uuid.UUID, userID uuid.UUID) (bool, error) {
	role, err := s.membershipRepository.GetUserProjectRole(projectID, userID)
	if err != nil {
		return false, err
	}

	return role != nil && *role == users_enums.ProjectRoleOwner, nil
}

func (s *ProjectService) GetMemberIDs(projectID uuid.UUID) ([]uuid.UUID, error) {
	return s.membershipRepository.GetMemberIDs(projectID)
}

func (s *ProjectService) GetProjectWithCache(projectID uuid.UUID) (*projects_models.Project, error) {
	projectIDStr := projectID.String()

	// Tier 1: Check cache
	if cachedProject := s.projectCacheUtil.Get(projectIDStr); cachedProject != nil {
		if cachedProject.IsNotExists {
			return nil, errors.New("project not found")
		}

		return cachedProject, nil
	}

	// Tier 2: Database lookup with singleflight protection (prevents thundering herd)
	result, err, _ := s.singleflight.Do(projectIDStr, func() (any, error) {
		project, err := s.projectRepository.GetProjectByID(projectID)
		if err != nil {
			return nil, err
		}
		if project == nil {
			return nil, errors.New("project not found")
		}

		return project, nil
	})

	if err != nil {
		// Cache the missing project to prevent future DB hits
		invalidCachedProject := &projects_models.Project{
			ID:          projectID,
			IsNotExists: true,
		}
		s.projectCacheUtil.Set(projectIDStr, invalidCachedProject)
		return nil, errors.New("project not found")
	}

	project, ok := result.(*projects_models.Project)
	if !ok {
		return nil, fmt.Errorf("failed to cast result to Project")
	}

	s.projectCacheUtil.Set(projectIDStr, project)

	return project, nil
}

func (s *ProjectService) InvalidateProjectCache(projectID uuid.UUID) {
	s.projectCacheUtil.Invalidate(projectID.String())
}

// NotifyProjectDeleted invalidates the project cache and fans out to
// deletion listeners. Called after the project rows are gone.
func (s *ProjectService) NotifyProjectDeleted(projectID uuid.UUID) {
	s.projectCacheUtil.Invalidate(projectID.String())

	for _, listener := range s.projectDeletionListeners {
		if err := listener.OnProjectDeleted(projectID); err != nil {
			logger.GetLogger().Error(
				"project deletion listener failed",
				"projectId", projectID.String(),
				"error", err,
			)
		}
	}
}

// OnUserRenamed implements users_interfaces.UserRenameListener and
// refreshes the denormalized owner name.
func (s *ProjectService) OnUserRenamed(userID uuid.UUID, name string) error {
	if err := s.projectRepository.UpdateOwnerName(userID, name); err != nil {
		return err
	}

	// Cached copies still carry the old owner name; drop them.
	projects, err := s.membershipRepository.GetProjectsWithRolesByUserID(userID)
	if err != nil {
		return err
	}

	for _, project := range projects {
		s.projectCacheUtil.Invalidate(project.ID.String())
	}

	return nil
}
