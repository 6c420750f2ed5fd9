// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/multimeric/flapison/documents"
	"github.com/multimeric/flapison/exceptions"
	"github.com/multimeric/flapison/fiberapi"
	"github.com/multimeric/flapison/internal/utils"
	"github.com/multimeric/flapison/queries"
	"github.com/multimeric/flapison/schemas"
)

func (c *Controllers) buildLogger(
	requestID,
	location,
	method string,
) *slog.Logger {
	return utils.BuildLogger(c.logger, utils.LoggerOptions{
		Location:  location,
		Method:    method,
		RequestID: requestID,
	})
}

func logRequest(logger *slog.Logger, ctx *fiber.Ctx) {
	logger.InfoContext(
		ctx.UserContext(),
		fmt.Sprintf("Request: %s %s", ctx.Method(), ctx.Path()),
	)
}

func getRequestID(ctx *fiber.Ctx) string {
	return ctx.Get("requestid", uuid.NewString())
}

func logResponse(logger *slog.Logger, ctx *fiber.Ctx, status int) {
	logger.InfoContext(
		ctx.UserContext(),
		fmt.Sprintf("Response: %s %s", ctx.Method(), ctx.Path()),
		"status", status,
	)
}

func errorStatus(apiErr *exceptions.Error) int {
	if status, err := strconv.Atoi(apiErr.Status); err == nil && status >= fiber.StatusBadRequest {
		return status
	}
	return exceptions.NewRequestErrorStatus(apiErr.Code)
}

func requestErrorResponse(logger *slog.Logger, ctx *fiber.Ctx, err error) error {
	var apiErr *exceptions.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	status := errorStatus(apiErr)
	resErr := exceptions.NewErrorResponse(apiErr)
	logResponse(logger, ctx, status)
	return ctx.Status(status).JSON(&resErr, documents.MediaType)
}

func validateURLParamsErrorResponse(logger *slog.Logger, ctx *fiber.Ctx, err error) error {
	logger.WarnContext(ctx.UserContext(), "Failed to validate URL params", "error", err)
	logResponse(logger, ctx, fiber.StatusBadRequest)

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		resErr := exceptions.NewErrorResponse(exceptions.NewBadRequest("Invalid URL parameters"))
		return ctx.Status(fiber.StatusBadRequest).JSON(&resErr, documents.MediaType)
	}

	resErr := exceptions.NewErrorResponse(exceptions.ValidationErrorsToErrors(&errs)...)
	return ctx.Status(fiber.StatusBadRequest).JSON(&resErr, documents.MediaType)
}

func notFoundResponse(logger *slog.Logger, ctx *fiber.Ctx, detail string) error {
	resErr := exceptions.NewErrorResponse(exceptions.NewObjectNotFound(detail))
	logResponse(logger, ctx, fiber.StatusNotFound)
	return ctx.Status(fiber.StatusNotFound).JSON(&resErr, documents.MediaType)
}

// modelListResponse sorts and paginates models by the request's query
// parameters and renders the page as a list document with pagination links
// and a count meta.
func modelListResponse[T any](
	c *Controllers,
	logger *slog.Logger,
	ctx *fiber.Ctx,
	def *schemas.Definition,
	models []T,
) error {
	queryParams, err := fiberapi.ParseParams(ctx)
	if err != nil {
		return requestErrorResponse(logger, ctx, err)
	}
	if err := queryParams.CheckIncludeDepth(c.maxIncludeDepth); err != nil {
		return requestErrorResponse(logger, ctx, err)
	}
	if err := queryParams.Validate(c.registry, def); err != nil {
		return requestErrorResponse(logger, ctx, err)
	}

	models = slices.Clone(models)
	if err := queries.ApplySort(models, def, queryParams.Sort); err != nil {
		return requestErrorResponse(logger, ctx, err)
	}

	total := len(models)
	page := queries.ApplyPage(models, queryParams.Page, c.defaultPageSize, c.maxPageSize)
	number, size := queryParams.Page.Resolve(c.defaultPageSize, c.maxPageSize)

	err = fiberapi.RenderParams(ctx, c.registry, def, page, queryParams, fiberapi.RenderOptions{
		Compute:         schemas.ComputeOptions{Many: true},
		MaxIncludeDepth: c.maxIncludeDepth,
		Links:           documents.PageLinks(ctx.Path(), fiberapi.QueryValues(ctx), number, size, total),
		Meta:            map[string]any{"count": total},
	})
	if err != nil {
		return requestErrorResponse(logger, ctx, err)
	}

	logResponse(logger, ctx, fiber.StatusOK)
	return nil
}

func modelResponse(
	c *Controllers,
	logger *slog.Logger,
	ctx *fiber.Ctx,
	def *schemas.Definition,
	model any,
) error {
	err := fiberapi.Render(ctx, c.registry, def, model, fiberapi.RenderOptions{
		MaxIncludeDepth: c.maxIncludeDepth,
	})
	if err != nil {
		return requestErrorResponse(logger, ctx, err)
	}

	logResponse(logger, ctx, fiber.StatusOK)
	return nil
}
