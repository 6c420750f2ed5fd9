// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/multimeric/flapison/fiberapi"
)

// jsonAPIRouter groups the resource routes behind the media type checks.
func jsonAPIRouter(app *fiber.App, basePath string) fiber.Router {
	return app.Group(basePath, fiberapi.ContentNegotiation())
}
