//go:build wireinject
// +build wireinject

package main

import (
	"Stowage/cmd"
	"Stowage/database"
	"Stowage/internal/config"
	"Stowage/internal/handlers"
	"Stowage/internal/middleware"
	"Stowage/internal/services"
	"Stowage/internal/store"
	"github.com/google/wire"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("stowage.yaml")
}

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		database.SetupDatabase,
		store.NewDocumentStore,
		store.NewBlobStore,
		services.NewLogService,
		services.NewAuthService,
		handlers.NewAuthHandler,
		middleware.NewAuthMiddleware,
		services.NewBoxService,
		services.NewSuggestService,
		handlers.NewBoxHandler,
		services.NewLocationService,
		handlers.NewLocationHandler,
		services.NewUserService,
		handlers.NewProfileHandler,
		services.NewJanitorService,
		Provider,
	)
	return nil, nil
}
