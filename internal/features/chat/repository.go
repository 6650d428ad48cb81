package chat

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"teamboard/internal/storage"
)

type ChatRepository struct{}

func (r *ChatRepository) CreateMessage(message *Message) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}

	return storage.GetDb().Create(message).Error
}

func (r *ChatRepository) GetMessagesSince(projectID uuid.UUID, cutoff time.Time) ([]*Message, error) {
	var messages = make([]*Message, 0)

	err := storage.GetDb().
		Where("project_id = ? AND created_at >= ?", projectID, cutoff).
		Order("created_at ASC").
		Find(&messages).Error

	return messages, err
}

func (r *ChatRepository) PruneMessagesBefore(projectID uuid.UUID, cutoff time.Time) error {
	return storage.GetDb().
		Where("project_id = ? AND created_at < ?", projectID, cutoff).
		Delete(&Message{}).Error
}

// PruneAllExpired deletes messages older than each project's retention
// window in one pass. Projects without a settings row fall back to
// defaultDays.
func (r *ChatRepository) PruneAllExpired(defaultDays int) (int64, error) {
	result := storage.GetDb().Exec(`
		DELETE FROM messages m
		USING chat_settings cs
		WHERE cs.project_id = m.project_id
		  AND m.created_at < NOW() - (cs.auto_delete_days || ' days')::interval`)
	if result.Error != nil {
		return 0, result.Error
	}

	pruned := result.RowsAffected

	result = storage.GetDb().Exec(`
		DELETE FROM messages m
		WHERE NOT EXISTS (
			SELECT 1 FROM chat_settings cs WHERE cs.project_id = m.project_id
		)
		  AND m.created_at < NOW() - (? || ' days')::interval`, defaultDays)
	if result.Error != nil {
		return pruned, result.Error
	}

	return pruned + result.RowsAffected, nil
}

func (r *ChatRepository) ClearMessages(projectID uuid.UUID) error {
	return storage.GetDb().
		Where("project_id = ?", projectID).
		Delete(&Message{}).Error
}

func (r *ChatRepository) GetSettings(projectID uuid.UUID) (*ChatSettings, error) {
	var settings ChatSettings

	if err := storage.GetDb().Where("project_id = ?", projectID).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &settings, nil
}

func (r *ChatRepository) SaveSettings(settings *ChatSettings) error {
	return storage.GetDb().Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}},
		UpdateAll: true,
	}).Create(settings).Error
}
