package users_controllers

import (
	"golang.org/x/time/rate"

	users_services "teamboard/internal/features/users/services"
)

var userController = &UserController{
	userService:     users_services.GetUserService(),
	settingsService: users_services.GetSettingsService(),
	signinLimiter:   rate.NewLimiter(rate.Limit(3), 3), // 3 RPS with burst of 3
}

func GetUserController() *UserController {
	return userController
}
