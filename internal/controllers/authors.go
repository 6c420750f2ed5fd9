// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/multimeric/flapison/internal/controllers/params"
)

const authorsLocation string = "authors"

func (c *Controllers) ListAuthors(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, authorsLocation, "ListAuthors")
	logRequest(logger, ctx)

	return modelListResponse(c, logger, ctx, c.authorDef, c.dataset.Authors)
}

func (c *Controllers) GetAuthor(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, authorsLocation, "GetAuthor")
	logRequest(logger, ctx)

	urlParams := params.AuthorURLParams{AuthorID: ctx.Params("authorID")}
	if err := c.validate.StructCtx(ctx.UserContext(), &urlParams); err != nil {
		return validateURLParamsErrorResponse(logger, ctx, err)
	}

	author, ok := c.dataset.AuthorByID(uuid.MustParse(urlParams.AuthorID))
	if !ok {
		return notFoundResponse(logger, ctx, fmt.Sprintf("Author %s not found", urlParams.AuthorID))
	}

	return modelResponse(c, logger, ctx, c.authorDef, author)
}

func (c *Controllers) GetAuthorPosts(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, authorsLocation, "GetAuthorPosts")
	logRequest(logger, ctx)

	urlParams := params.AuthorURLParams{AuthorID: ctx.Params("authorID")}
	if err := c.validate.StructCtx(ctx.UserContext(), &urlParams); err != nil {
		return validateURLParamsErrorResponse(logger, ctx, err)
	}

	author, ok := c.dataset.AuthorByID(uuid.MustParse(urlParams.AuthorID))
	if !ok {
		return notFoundResponse(logger, ctx, fmt.Sprintf("Author %s not found", urlParams.AuthorID))
	}

	return modelListResponse(c, logger, ctx, c.postDef, author.Posts)
}
