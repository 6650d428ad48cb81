package users_repositories

import (
	users_models "teamboard/internal/features/users/models"
	"teamboard/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserSettingsRepository struct{}

func (r *UserSettingsRepository) GetByUserID(userID uuid.UUID) (*users_models.UserSettings, error) {
	var settings users_models.UserSettings

	if err := storage.GetDb().Where("user_id = ?", userID).First(&settings).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &settings, nil
}

func (r *UserSettingsRepository) Save(settings *users_models.UserSettings) error {
	return storage.GetDb().Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(settings).Error
}
