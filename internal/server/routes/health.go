package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/multimeric/flapison/internal/controllers/paths"
)

func (r *Routes) HealthRoutes(app *fiber.App) {
	app.Get(paths.HealthBase, r.controllers.HealthCheck)
}
