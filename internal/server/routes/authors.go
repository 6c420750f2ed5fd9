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

func (r *Routes) AuthorsRoutes(app *fiber.App) {
	router := jsonAPIRouter(app, paths.AuthorsBase)

	router.Get(paths.Base, r.controllers.ListAuthors)
	router.Get(paths.AuthorsSingle, r.controllers.GetAuthor)
	router.Get(paths.AuthorsPosts, r.controllers.GetAuthorPosts)
}
