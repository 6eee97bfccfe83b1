package routers

import (
	"Stowage/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupAuthRouter(app *fiber.App, server *cmd.Server) {
	authHandler := server.AuthHandler
	app.Post("/register", authHandler.Register)
	app.Post("/signin", authHandler.SignIn)
	app.Post("/signout", authHandler.SignOut)
	app.Put("/password", server.AuthMiddleware.RequireAuth, authHandler.ChangePassword)
}
