package notifications

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teamboard/internal/storage"
)

type NotificationRepository struct{}

func (r *NotificationRepository) Create(notification *Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}

	return storage.GetDb().Create(notification).Error
}

func (r *NotificationRepository) GetByUser(userID uuid.UUID) ([]*Notification, error) {
	var items = make([]*Notification, 0)

	err := storage.GetDb().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error

	return items, err
}

func (r *NotificationRepository) GetByID(notificationID uuid.UUID) (*Notification, error) {
	var notification Notification

	if err := storage.GetDb().Where("id = ?", notificationID).First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &notification, nil
}

func (r *NotificationRepository) MarkRead(notificationID uuid.UUID) error {
	return storage.GetDb().
		Model(&Notification{}).
		Where("id = ?", notificationID).
		Update("read", true).Error
}
