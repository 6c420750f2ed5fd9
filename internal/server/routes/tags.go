package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/multimeric/flapison/internal/controllers/paths"
)

func (r *Routes) TagsRoutes(app *fiber.App) {
	router := jsonAPIRouter(app, paths.TagsBase)

	router.Get(paths.Base, r.controllers.ListTags)
	router.Get(paths.TagsSingle, r.controllers.GetTag)
}
