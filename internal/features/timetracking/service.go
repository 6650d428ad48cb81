package timetracking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	projects_services "teamboard/internal/features/projects/services"
	users_models "teamboard/internal/features/users/models"
)

type TimeEntryService struct {
	timeEntryRepository *TimeEntryRepository
	projectService      *projects_services.ProjectService
}

func (s *TimeEntryService) GetProjectTimeEntries(
	projectID uuid.UUID,
	user *users_models.User,
) (*ListTimeEntriesResponse, error) {
	isMember, err := s.projectService.IsMember(projectID, user.ID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, errors.New("insufficient permissions to view time entries")
	}

	entries, err := s.timeEntryRepository.GetByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get time entries: %w", err)
	}

	return &ListTimeEntriesResponse{Entries: entries}, nil
}

func (s *TimeEntryService) CreateTimeEntry(
	projectID uuid.UUID,
	request *CreateTimeEntryRequest,
	user *users_models.User,
) (*TimeEntry, error) {
	isMember, err := s.projectService.IsMember(projectID, user.ID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, errors.New("insufficient permissions to log time")
	}

	entry := &TimeEntry{
		ID:        uuid.New(),
		ProjectID: projectID,
		UserID:    user.ID,
		UserName:  user.DisplayName(),
		Hours:     request.Hours,
		Date:      request.Date,
		TaskNames: request.TaskNames,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.timeEntryRepository.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}

	return entry, nil
}

func (s *TimeEntryService) DeleteTimeEntry(
	projectID uuid.UUID,
	entryID uuid.UUID,
	user *users_models.User,
) error {
	entry, err := s.timeEntryRepository.GetByID(entryID)
	if err != nil {
		return fmt.Errorf("failed to get time entry: %w", err)
	}
	if entry == nil || entry.ProjectID != projectID {
		return errors.New("time entry not found")
	}

	// Only the author may delete their entry.
	if entry.UserID != user.ID {
		return errors.New("only the author can delete a time entry")
	}

	return s.timeEntryRepository.Delete(entryID)
}

// OnMemberRemoved implements projects_interfaces.MemberRemovalListener.
func (s *TimeEntryService) OnMemberRemoved(projectID uuid.UUID, userID uuid.UUID) error {
	return s.timeEntryRepository.DeleteByMember(projectID, userID)
}
