package users_services

import (
	"time"

	"teamboard/internal/cache"
	users_repositories "teamboard/internal/features/users/repositories"
	cache_utils "teamboard/internal/util/cache"
)

var userService = &UserService{
	userRepository:      &users_repositories.UserRepository{},
	secretKeyRepository: &users_repositories.SecretKeyRepository{},
	tokenBlacklist: cache_utils.NewCacheUtilWithExpiry[string](
		cache.GetCache(),
		"tb_revoked_token:",
		tokenLifetime+time.Hour,
	),
}

var settingsService = &SettingsService{
	userSettingsRepository: &users_repositories.UserSettingsRepository{},
}

func GetUserService() *UserService {
	return userService
}

func GetSettingsService() *SettingsService {
	return settingsService
}
