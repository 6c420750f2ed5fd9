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

const commentsLocation string = "comments"

func (c *Controllers) ListComments(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, commentsLocation, "ListComments")
	logRequest(logger, ctx)

	return modelListResponse(c, logger, ctx, c.commentDef, c.dataset.Comments)
}

func (c *Controllers) GetComment(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, commentsLocation, "GetComment")
	logRequest(logger, ctx)

	urlParams := params.CommentURLParams{CommentID: ctx.Params("commentID")}
	if err := c.validate.StructCtx(ctx.UserContext(), &urlParams); err != nil {
		return validateURLParamsErrorResponse(logger, ctx, err)
	}

	comment, ok := c.dataset.CommentByID(uuid.MustParse(urlParams.CommentID))
	if !ok {
		return notFoundResponse(logger, ctx, fmt.Sprintf("Comment %s not found", urlParams.CommentID))
	}

	return modelResponse(c, logger, ctx, c.commentDef, comment)
}
