package routers

import (
	"Stowage/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupBoxRouter(app *fiber.App, server *cmd.Server) {
	boxHandler := server.BoxHandler
	requireAuth := server.AuthMiddleware.RequireAuth
	app.Get("/boxes", requireAuth, boxHandler.ListBoxes)
	app.Post("/boxes", requireAuth, boxHandler.CreateBox)
	app.Post("/boxes/suggest-name", requireAuth, boxHandler.SuggestName)
	app.Get("/boxes/:id", requireAuth, boxHandler.GetBoxByID)
	app.Put("/boxes/:id", requireAuth, boxHandler.UpdateBox)
	app.Delete("/boxes/:id", requireAuth, boxHandler.DeleteBox)
}
