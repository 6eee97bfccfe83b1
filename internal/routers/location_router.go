package routers

import (
	"Stowage/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupLocationRouter(app *fiber.App, server *cmd.Server) {
	locationHandler := server.LocationHandler
	requireAuth := server.AuthMiddleware.RequireAuth
	app.Get("/locations", requireAuth, locationHandler.GetLocations)
	app.Post("/locations", requireAuth, locationHandler.AddLocation)
}
