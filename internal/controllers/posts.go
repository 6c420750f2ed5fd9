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

const postsLocation string = "posts"

func (c *Controllers) ListPosts(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, postsLocation, "ListPosts")
	logRequest(logger, ctx)

	return modelListResponse(c, logger, ctx, c.postDef, c.dataset.Posts)
}

func (c *Controllers) GetPost(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, postsLocation, "GetPost")
	logRequest(logger, ctx)

	urlParams := params.PostURLParams{PostID: ctx.Params("postID")}
	if err := c.validate.StructCtx(ctx.UserContext(), &urlParams); err != nil {
		return validateURLParamsErrorResponse(logger, ctx, err)
	}

	post, ok := c.dataset.PostByID(uuid.MustParse(urlParams.PostID))
	if !ok {
		return notFoundResponse(logger, ctx, fmt.Sprintf("Post %s not found", urlParams.PostID))
	}

	return modelResponse(c, logger, ctx, c.postDef, post)
}

func (c *Controllers) GetPostAuthor(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, postsLocation, "GetPostAuthor")
	logRequest(logger, ctx)

	urlParams := params.PostURLParams{PostID: ctx.Params("postID")}
	if err := c.validate.StructCtx(ctx.UserContext(), &urlParams); err != nil {
		return validateURLParamsErrorResponse(logger, ctx, err)
	}

	post, ok := c.dataset.PostByID(uuid.MustParse(urlParams.PostID))
	if !ok {
		return notFoundResponse(logger, ctx, fmt.Sprintf("Post %s not found", urlParams.PostID))
	}
	if post.Author == nil {
		return notFoundResponse(logger, ctx, fmt.Sprintf("Post %s has no author", post.ID))
	}

	return modelResponse(c, logger, ctx, c.authorDef, post.Author)
}

func (c *Controllers) GetPostComments(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, postsLocation, "GetPostComments")
	logRequest(logger, ctx)

	urlParams := params.PostURLParams{PostID: ctx.Params("postID")}
	if err := c.validate.StructCtx(ctx.UserContext(), &urlParams); err != nil {
		return validateURLParamsErrorResponse(logger, ctx, err)
	}

	post, ok := c.dataset.PostByID(uuid.MustParse(urlParams.PostID))
	if !ok {
		return notFoundResponse(logger, ctx, fmt.Sprintf("Post %s not found", urlParams.PostID))
	}

	return modelListResponse(c, logger, ctx, c.commentDef, post.Comments)
}
