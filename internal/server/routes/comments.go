// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/multimeric/flapison/internal/controllers/paths"
)

func (r *Routes) CommentsRoutes(app *fiber.App) {
	router := jsonAPIRouter(app, paths.CommentsBase)

	router.Get(paths.Base, r.controllers.ListComments)
	router.Get(paths.CommentsSingle, r.controllers.GetComment)
}
