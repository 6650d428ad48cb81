package projects_services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	audit_logs "teamboard/internal/features/audit_logs"
	projects_dto "teamboard/internal/features/projects/dto"
	projects_interfaces "teamboard/internal/features/projects/interfaces"
	projects_repositories "teamboard/internal/features/projects/repositories"
	users_enums "teamboard/internal/features/users/enums"
	users_models "teamboard/internal/features/users/models"
	"teamboard/internal/util/logger"
)

type MembershipService struct {
	membershipRepository   *projects_repositories.MembershipRepository
	invitationRepository   *projects_repositories.InvitationRepository
	projectService         *ProjectService
	auditLogService        *audit_logs.AuditLogService
	memberRemovalListeners []projects_interfaces.MemberRemovalListener
}

func (s *MembershipService) AddMemberRemovalListener(listener projects_interfaces.MemberRemovalListener) {
	s.memberRemovalListeners = append(s.memberRemovalListeners, listener)
}

func (s *MembershipService) GetProjectMembers(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_dto.ListMembersResponseDTO, error) {
	isMember, err := s.projectService.IsMember(projectID, user.ID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, errors.New("insufficient permissions to view project members")
	}

	members, err := s.membershipRepository.GetProjectMembers(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project members: %w", err)
	}

	return &projects_dto.ListMembersResponseDTO{Members: members}, nil
}

func (s *MembershipService) RemoveMember(
	projectID uuid.UUID,
	memberID uuid.UUID,
	actor *users_models.User,
) error {
	actorRole, err := s.membershipRepository.GetUserProjectRole(projectID, actor.ID)
	if err != nil {
		return fmt.Errorf("failed to get actor role: %w", err)
	}
	if actorRole == nil || *actorRole != users_enums.ProjectRoleOwner {
		return errors.New("only project owner can remove members")
	}

	memberRole, err := s.membershipRepository.GetUserProjectRole(projectID, memberID)
	if err != nil {
		return fmt.Errorf("failed to get member role: %w", err)
	}
	if memberRole == nil {
		return errors.New("member not found")
	}
	if *memberRole == users_enums.ProjectRoleOwner {
		return errors.New("project owner cannot be removed")
	}

	if err := s.membershipRepository.RemoveMember(memberID, projectID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	if err := s.invitationRepository.DeletePendingForMember(projectID, memberID); err != nil {
		logger.GetLogger().Error(
			"failed to delete pending invitations for removed member",
			"projectId", projectID.String(),
			"userId", memberID.String(),
			"error", err,
		)
	}

	for _, listener := range s.memberRemovalListeners {
		if err := listener.OnMemberRemoved(projectID, memberID); err != nil {
			logger.GetLogger().Error(
				"member removal listener failed",
				"projectId", projectID.String(),
				"userId", memberID.String(),
				"error", err,
			)
		}
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Member %s removed from project", memberID.String()),
		&actor.ID,
		&projectID,
	)

	return nil
}
