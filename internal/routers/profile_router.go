package routers

import (
	"Stowage/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupProfileRouter(app *fiber.App, server *cmd.Server) {
	profileHandler := server.ProfileHandler
	requireAuth := server.AuthMiddleware.RequireAuth
	app.Get("/profile", requireAuth, profileHandler.GetProfile)
	app.Put("/profile", requireAuth, profileHandler.UpdateProfile)
}
