package deletion

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	audit_logs "teamboard/internal/features/audit_logs"
	"teamboard/internal/features/notifications"
	projects_repositories "teamboard/internal/features/projects/repositories"
	projects_services "teamboard/internal/features/projects/services"
	tasks_repositories "teamboard/internal/features/tasks/repositories"
	tasks_services "teamboard/internal/features/tasks/services"
	users_models "teamboard/internal/features/users/models"
	"teamboard/internal/storage"
	lock_utils "teamboard/internal/util/lock"
)

type DeletionService struct {
	voteRepository      *DeletionVoteRepository
	projectRepository   *projects_repositories.ProjectRepository
	taskRepository      *tasks_repositories.TaskRepository
	projectService      *projects_services.ProjectService
	taskService         *tasks_services.TaskService
	notificationService *notifications.NotificationService
	auditLogService     *audit_logs.AuditLogService

	// Serializes deletion mutations per project so concurrent votes
	// cannot lose updates or finalize twice.
	projectLocks *lock_utils.KeyedMutex
}

func (s *DeletionService) RequestDeletion(
	projectID uuid.UUID,
	user *users_models.User,
) (*RequestDeletionResponseDTO, error) {
	s.projectLocks.Lock(projectID.String())
	defer s.projectLocks.Unlock(projectID.String())

	project, err := s.projectService.GetProjectWithCache(projectID)
	if err != nil {
		return nil, ErrProjectNotFound
	}

	memberIDs, err := s.projectService.GetMemberIDs(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project members: %w", err)
	}

	incompleteCount, err := s.taskService.CountIncompleteTasks(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to count incomplete tasks: %w", err)
	}

	outcome, err := EvaluateRequest(RequestInput{
		ProjectID:       projectID,
		ProjectName:     project.Name,
		OwnerID:         project.OwnerID,
		RequesterID:     user.ID,
		RequesterName:   user.DisplayName(),
		MemberIDs:       memberIDs,
		IncompleteTasks: int(incompleteCount),
	})
	if err != nil {
		return nil, err
	}

	switch outcome.Kind {
	case OutcomeDeleted:
		if err := s.finalize(projectID); err != nil {
			return nil, err
		}

		s.auditLogService.WriteAuditLog(
			fmt.Sprintf("Project \"%s\" deleted (no incomplete tasks)", project.Name),
			&user.ID,
			nil,
		)

		return &RequestDeletionResponseDTO{Deleted: true}, nil

	case OutcomeConfirmationRequired:
		return &RequestDeletionResponseDTO{
			RequiresConfirmation: true,
			IncompleteTasks:      int(incompleteCount),
		}, nil

	default: // OutcomeVoteOpened
		vote := &DeletionVote{
			ProjectID:       projectID,
			RequestedBy:     user.ID,
			RequestedAt:     time.Now().UTC(),
			Required:        outcome.Required,
			IncompleteTasks: int(incompleteCount),
			Votes:           []uuid.UUID{user.ID},
		}

		if err := s.voteRepository.Save(vote); err != nil {
			return nil, fmt.Errorf("failed to save deletion vote: %w", err)
		}

		s.notificationService.Dispatch(outcome.Drafts)

		s.auditLogService.WriteAuditLog(
			fmt.Sprintf("Deletion vote opened for project \"%s\"", project.Name),
			&user.ID,
			&projectID,
		)

		return &RequestDeletionResponseDTO{
			VotingRequired: true,
			Votes:          outcome.Votes,
			Required:       outcome.Required,
		}, nil
	}
}

// ForceDelete skips the vote entirely. Owner only, no notifications.
func (s *DeletionService) ForceDelete(projectID uuid.UUID, user *users_models.User) error {
	s.projectLocks.Lock(projectID.String())
	defer s.projectLocks.Unlock(projectID.String())

	project, err := s.projectService.GetProjectWithCache(projectID)
	if err != nil {
		return ErrProjectNotFound
	}

	if project.OwnerID != user.ID {
		return ErrNotOwner
	}

	if err := s.finalize(projectID); err != nil {
		return err
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project \"%s\" force deleted", project.Name),
		&user.ID,
		nil,
	)

	return nil
}

func (s *DeletionService) CastVote(
	projectID uuid.UUID,
	approve bool,
	user *users_models.User,
) (*CastVoteResponseDTO, error) {
	s.projectLocks.Lock(projectID.String())
	defer s.projectLocks.Unlock(projectID.String())

	project, err := s.projectService.GetProjectWithCache(projectID)
	if err != nil {
		return nil, ErrProjectNotFound
	}

	isMember, err := s.projectService.IsMember(projectID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return nil, ErrNotMember
	}

	vote, err := s.voteRepository.GetByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get deletion vote: %w", err)
	}
	if vote == nil {
		return nil, ErrNoVoteInProgress
	}

	memberIDs, err := s.projectService.GetMemberIDs(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project members: %w", err)
	}

	outcome := EvaluateVote(vote, VoteInput{
		ProjectID:   projectID,
		ProjectName: project.Name,
		VoterID:     user.ID,
		VoterName:   user.DisplayName(),
		Approve:     approve,
		MemberIDs:   memberIDs,
	})

	switch outcome.Kind {
	case OutcomeRejected:
		if err := s.voteRepository.Delete(projectID); err != nil {
			return nil, fmt.Errorf("failed to cancel deletion vote: %w", err)
		}

		s.notificationService.Dispatch(outcome.Drafts)

		s.auditLogService.WriteAuditLog(
			fmt.Sprintf("Deletion of project \"%s\" rejected", project.Name),
			&user.ID,
			&projectID,
		)

		approved := false
		return &CastVoteResponseDTO{Approved: &approved}, nil

	case OutcomeDeleted:
		if err := s.finalize(projectID); err != nil {
			return nil, err
		}

		s.notificationService.Dispatch(outcome.Drafts)

		s.auditLogService.WriteAuditLog(
			fmt.Sprintf("Project \"%s\" deleted by vote (%d/%d)", project.Name, outcome.Votes, outcome.Required),
			&user.ID,
			nil,
		)

		return &CastVoteResponseDTO{Deleted: true}, nil

	default: // OutcomeVoteRecorded
		vote.Votes = outcome.Voters

		if err := s.voteRepository.Save(vote); err != nil {
			return nil, fmt.Errorf("failed to save deletion vote: %w", err)
		}

		approved := true
		return &CastVoteResponseDTO{
			Approved: &approved,
			Votes:    outcome.Votes,
			Required: outcome.Required,
		}, nil
	}
}

func (s *DeletionService) GetVoteStatus(
	projectID uuid.UUID,
	user *users_models.User,
) (*VoteStatusResponseDTO, error) {
	project, err := s.projectService.GetProjectWithCache(projectID)
	if err != nil || project == nil {
		return nil, ErrProjectNotFound
	}

	isMember, err := s.projectService.IsMember(projectID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return nil, ErrNotMember
	}

	vote, err := s.voteRepository.GetByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get deletion vote: %w", err)
	}
	if vote == nil {
		return &VoteStatusResponseDTO{VoteInProgress: false}, nil
	}

	hasVoted := vote.HasVoted(user.ID)
	return &VoteStatusResponseDTO{
		VoteInProgress: true,
		Votes:          len(vote.Votes),
		Required:       vote.Required,
		HasVoted:       &hasVoted,
		// The count snapshotted when the vote was opened, not a live
		// recount. Voters judge the request as it was made.
		IncompleteTasks: vote.IncompleteTasks,
	}, nil
}

// finalize removes the project, its tasks, and the vote in one
// transaction, then lets the other features clean up their state.
func (s *DeletionService) finalize(projectID uuid.UUID) error {
	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := s.taskRepository.DeleteByProjectTx(tx, projectID); err != nil {
			return err
		}

		if err := s.voteRepository.DeleteTx(tx, projectID); err != nil {
			return err
		}

		return s.projectRepository.DeleteProjectTx(tx, projectID)
	})
	if err != nil {
		return fmt.Errorf("failed to finalize project deletion: %w", err)
	}

	s.projectService.NotifyProjectDeleted(projectID)

	return nil
}
