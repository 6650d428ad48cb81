package timetracking

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teamboard/internal/storage"
)

type TimeEntryRepository struct{}

func (r *TimeEntryRepository) Create(entry *TimeEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	return storage.GetDb().Create(entry).Error
}

func (r *TimeEntryRepository) GetByProject(projectID uuid.UUID) ([]*TimeEntry, error) {
	var entries = make([]*TimeEntry, 0)

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("date DESC, created_at DESC").
		Find(&entries).Error

	return entries, err
}

func (r *TimeEntryRepository) GetByID(entryID uuid.UUID) (*TimeEntry, error) {
	var entry TimeEntry

	if err := storage.GetDb().Where("id = ?", entryID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &entry, nil
}

func (r *TimeEntryRepository) Delete(entryID uuid.UUID) error {
	return storage.GetDb().Where("id = ?", entryID).Delete(&TimeEntry{}).Error
}

func (r *TimeEntryRepository) DeleteByMember(projectID, userID uuid.UUID) error {
	return storage.GetDb().
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&TimeEntry{}).Error
}
