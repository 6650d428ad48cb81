package projects_services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	audit_logs "teamboard/internal/features/audit_logs"
	"teamboard/internal/features/notifications"
	projects_dto "teamboard/internal/features/projects/dto"
	projects_models "teamboard/internal/features/projects/models"
	projects_repositories "teamboard/internal/features/projects/repositories"
	users_enums "teamboard/internal/features/users/enums"
	users_models "teamboard/internal/features/users/models"
	users_services "teamboard/internal/features/users/services"
)

type InvitationService struct {
	invitationRepository *projects_repositories.InvitationRepository
	membershipRepository *projects_repositories.MembershipRepository
	projectService       *ProjectService
	userService          *users_services.UserService
	notificationService  *notifications.NotificationService
	auditLogService      *audit_logs.AuditLogService
}

func (s *InvitationService) InviteMember(
	projectID uuid.UUID,
	request *projects_dto.InviteMemberRequestDTO,
	actor *users_models.User,
) error {
	isOwner, err := s.projectService.IsOwner(projectID, actor.ID)
	if err != nil {
		return fmt.Errorf("failed to check actor role: %w", err)
	}
	if !isOwner {
		return errors.New("only project owner can invite members")
	}

	invitee, err := s.userService.GetUserByEmail(request.Email)
	if err != nil {
		return fmt.Errorf("failed to look up invitee: %w", err)
	}
	if invitee == nil {
		return errors.New("no user with this email")
	}

	inviteeRole, err := s.membershipRepository.GetUserProjectRole(projectID, invitee.ID)
	if err != nil {
		return fmt.Errorf("failed to check invitee membership: %w", err)
	}
	if inviteeRole != nil {
		return errors.New("user is already a member")
	}

	hasPending, err := s.invitationRepository.HasPendingInvitation(projectID, invitee.ID)
	if err != nil {
		return fmt.Errorf("failed to check pending invitations: %w", err)
	}
	if hasPending {
		return errors.New("invitation already pending")
	}

	invitation := &projects_models.Invitation{
		ID:        uuid.New(),
		ProjectID: projectID,
		InviteeID: invitee.ID,
		InviterID: actor.ID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.invitationRepository.CreateInvitation(invitation); err != nil {
		return fmt.Errorf("failed to create invitation: %w", err)
	}

	project, err := s.projectService.GetProjectWithCache(projectID)
	if err != nil {
		return err
	}

	s.notificationService.Dispatch([]notifications.Draft{{
		UserID:    invitee.ID,
		Type:      notifications.TypeProjectInvitation,
		Message:   fmt.Sprintf("%s invited you to join project \"%s\"", actor.DisplayName(), project.Name),
		ProjectID: &projectID,
	}})

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Invitation sent to %s", request.Email),
		&actor.ID,
		&projectID,
	)

	return nil
}

func (s *InvitationService) GetPendingInvitations(
	user *users_models.User,
) (*projects_dto.ListInvitationsResponseDTO, error) {
	invitations, err := s.invitationRepository.GetPendingByInvitee(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invitations: %w", err)
	}

	return &projects_dto.ListInvitationsResponseDTO{Invitations: invitations}, nil
}

func (s *InvitationService) AcceptInvitation(invitationID uuid.UUID, user *users_models.User) error {
	invitation, err := s.invitationRepository.GetInvitationByID(invitationID)
	if err != nil {
		return fmt.Errorf("failed to get invitation: %w", err)
	}
	if invitation == nil || invitation.InviteeID != user.ID {
		return errors.New("invitation not found")
	}

	membership := &projects_models.ProjectMembership{
		UserID:    user.ID,
		ProjectID: invitation.ProjectID,
		Role:      users_enums.ProjectRoleMember,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return fmt.Errorf("failed to create membership: %w", err)
	}

	if err := s.invitationRepository.DeleteInvitation(invitationID); err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}

	project, err := s.projectService.GetProjectWithCache(invitation.ProjectID)
	if err == nil {
		s.notificationService.Dispatch([]notifications.Draft{{
			UserID:    invitation.InviterID,
			Type:      notifications.TypeInvitationAccepted,
			Message:   fmt.Sprintf("%s joined project \"%s\"", user.DisplayName(), project.Name),
			ProjectID: &invitation.ProjectID,
		}})
	}

	s.auditLogService.WriteAuditLog(
		"Invitation accepted",
		&user.ID,
		&invitation.ProjectID,
	)

	return nil
}

func (s *InvitationService) DeclineInvitation(invitationID uuid.UUID, user *users_models.User) error {
	invitation, err := s.invitationRepository.GetInvitationByID(invitationID)
	if err != nil {
		return fmt.Errorf("failed to get invitation: %w", err)
	}
	if invitation == nil || invitation.InviteeID != user.ID {
		return errors.New("invitation not found")
	}

	if err := s.invitationRepository.DeleteInvitation(invitationID); err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}

	return nil
}
