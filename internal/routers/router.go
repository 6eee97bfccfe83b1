package routers

import (
	"Stowage/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	SetupAuthRouter(app, server)
	SetupBoxRouter(app, server)
	SetupLocationRouter(app, server)
	SetupProfileRouter(app, server)
	SetupJanitorRouter(app, server)
}
