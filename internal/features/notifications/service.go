package notifications

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type NotificationService struct {
	notificationRepository *NotificationRepository
	logger                 *slog.Logger
}

func (s *NotificationService) Create(draft Draft) error {
	notification := &Notification{
		ID:        uuid.New(),
		UserID:    draft.UserID,
		Type:      draft.Type,
		Message:   draft.Message,
		ProjectID: draft.ProjectID,
		TaskID:    draft.TaskID,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	return s.notificationRepository.Create(notification)
}

// Dispatch persists a fan-out batch. Delivery is best effort: a
// failed draft is logged and the rest still go out.
func (s *NotificationService) Dispatch(drafts []Draft) {
	for _, draft := range drafts {
		if err := s.Create(draft); err != nil {
			s.logger.Error(
				"failed to deliver notification",
				"userId", draft.UserID.String(),
				"type", draft.Type,
				"error", err,
			)
		}
	}
}

func (s *NotificationService) GetUserNotifications(userID uuid.UUID) (*ListNotificationsResponse, error) {
	items, err := s.notificationRepository.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	return &ListNotificationsResponse{Notifications: items}, nil
}

func (s *NotificationService) MarkRead(notificationID uuid.UUID, userID uuid.UUID) error {
	notification, err := s.notificationRepository.GetByID(notificationID)
	if err != nil {
		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification == nil || notification.UserID != userID {
		return errors.New("notification not found")
	}

	return s.notificationRepository.MarkRead(notificationID)
}
