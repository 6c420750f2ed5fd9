// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/multimeric/flapison/internal/controllers/params"
)

const tagsLocation string = "tags"

func (c *Controllers) ListTags(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, tagsLocation, "ListTags")
	logRequest(logger, ctx)

	return modelListResponse(c, logger, ctx, c.tagDef, c.dataset.Tags)
}

func (c *Controllers) GetTag(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, tagsLocation, "GetTag")
	logRequest(logger, ctx)

	urlParams := params.TagURLParams{TagSlug: ctx.Params("tagSlug")}
	if err := c.validate.StructCtx(ctx.UserContext(), &urlParams); err != nil {
		return validateURLParamsErrorResponse(logger, ctx, err)
	}

	tag, ok := c.dataset.TagBySlug(urlParams.TagSlug)
	if !ok {
		return notFoundResponse(logger, ctx, fmt.Sprintf("Tag %s not found", urlParams.TagSlug))
	}

	return modelResponse(c, logger, ctx, c.tagDef, tag)
}
