package cmd

import (
	"Stowage/internal/handlers"
	"Stowage/internal/middleware"
	"Stowage/internal/services"

	"gorm.io/gorm"
)

type Server struct {
	DB              *gorm.DB
	AuthService     services.AuthService
	AuthHandler     *handlers.AuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
	BoxService      services.BoxService
	BoxHandler      *handlers.BoxHandler
	LocationService services.LocationService
	LocationHandler *handlers.LocationHandler
	UserService     services.UserService
	ProfileHandler  *handlers.ProfileHandler
	LogService      services.LogService
	JanitorService  *services.Janitor
}

func NewServer(
	db *gorm.DB,
	authService services.AuthService,
	authHandler *handlers.AuthHandler,
	authMiddleware *middleware.AuthMiddleware,
	boxService services.BoxService,
	boxHandler *handlers.BoxHandler,
	locationService services.LocationService,
	locationHandler *handlers.LocationHandler,
	userService services.UserService,
	profileHandler *handlers.ProfileHandler,
	logService services.LogService,
	janitorService *services.Janitor,
) *Server {
	return &Server{
		DB:              db,
		AuthService:     authService,
		AuthHandler:     authHandler,
		AuthMiddleware:  authMiddleware,
		BoxService:      boxService,
		BoxHandler:      boxHandler,
		LocationService: locationService,
		LocationHandler: locationHandler,
		UserService:     userService,
		ProfileHandler:  profileHandler,
		LogService:      logService,
		JanitorService:  janitorService,
	}
}
