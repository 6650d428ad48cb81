package users_services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	users_models "teamboard/internal/features/users/models"
	users_repositories "teamboard/internal/features/users/repositories"
)

type SettingsService struct {
	userSettingsRepository *users_repositories.UserSettingsRepository
}

// GetSettings returns stored settings or defaults when the user has
// never saved any.
func (s *SettingsService) GetSettings(userID uuid.UUID) (*users_models.UserSettings, error) {
	settings, err := s.userSettingsRepository.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	if settings == nil {
		return &users_models.UserSettings{
			UserID:   userID,
			DarkMode: false,
		}, nil
	}

	return settings, nil
}

func (s *SettingsService) SaveSettings(userID uuid.UUID, darkMode bool) (*users_models.UserSettings, error) {
	settings := &users_models.UserSettings{
		UserID:    userID,
		DarkMode:  darkMode,
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.userSettingsRepository.Save(settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return settings, nil
}
