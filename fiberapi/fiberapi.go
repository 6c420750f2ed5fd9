// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package fiberapi

import (
	"errors"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/multimeric/flapison/documents"
	"github.com/multimeric/flapison/exceptions"
	"github.com/multimeric/flapison/queries"
)

// QueryValues copies the request's query string into url.Values.
func QueryValues(ctx *fiber.Ctx) url.Values {
	values := make(url.Values)
	ctx.Context().QueryArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})
	return values
}

// ParseParams reads the JSON API query parameters from the request.
func ParseParams(ctx *fiber.Ctx) (*queries.Params, error) {
	return queries.Parse(QueryValues(ctx))
}

// ContentNegotiation enforces the JSON API media type rules. Bodies posted
// with a parameterized application/vnd.api+json content type are rejected
// with 415, and an Accept header listing the media type only with parameters
// is rejected with 406.
func ContentNegotiation() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		method := ctx.Method()
		if method == fiber.MethodPost || method == fiber.MethodPatch {
			contentType := strings.TrimSpace(ctx.Get(fiber.HeaderContentType))
			if strings.Contains(contentType, documents.MediaType) && contentType != documents.MediaType {
				return exceptions.NewUnsupportedMediaType(
					"Content-Type header must be " + documents.MediaType,
				)
			}
		}

		if accept := ctx.Get(fiber.HeaderAccept); accept != "" {
			flagged := false
			for _, part := range strings.Split(accept, ",") {
				part = strings.TrimSpace(part)
				if part == documents.MediaType {
					flagged = false
					break
				}
				if strings.Contains(part, documents.MediaType) {
					flagged = true
				}
			}
			if flagged {
				return exceptions.NewNotAcceptable(
					"Accept header must be " + documents.MediaType + " without media type parameters",
				)
			}
		}

		return ctx.Next()
	}
}

// NewErrorHandler builds the fiber error handler rendering every error as a
// JSON API error document with the JSON API content type.
func NewErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var apiErr *exceptions.Error
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &apiErr):
		case errors.As(err, &fiberErr):
			apiErr = fromFiberError(fiberErr)
		default:
			apiErr = exceptions.NewServerError()
		}

		status := statusFor(apiErr)
		if status >= fiber.StatusInternalServerError {
			logger.ErrorContext(
				ctx.UserContext(),
				"Request failed",
				"method", ctx.Method(),
				"path", ctx.Path(),
				"error", err,
			)
		} else {
			logger.WarnContext(
				ctx.UserContext(),
				"Request rejected",
				"method", ctx.Method(),
				"path", ctx.Path(),
				"error", err,
			)
		}

		res := exceptions.NewErrorResponse(apiErr)
		return ctx.Status(status).JSON(&res, documents.MediaType)
	}
}

func fromFiberError(fiberErr *fiber.Error) *exceptions.Error {
	status := strconv.Itoa(fiberErr.Code)
	if fiberErr.Code >= fiber.StatusInternalServerError {
		return exceptions.NewError(
			exceptions.CodeServerError,
			status,
			exceptions.TitleServerError,
			exceptions.MessageUnknown,
			nil,
		)
	}
	return exceptions.NewError(
		exceptions.CodeBadRequest,
		status,
		exceptions.TitleBadRequest,
		fiberErr.Message,
		nil,
	)
}

// statusFor keeps the status an error object already carries, falling back
// to the code based mapping.
func statusFor(apiErr *exceptions.Error) int {
	if status, err := strconv.Atoi(apiErr.Status); err == nil && status >= fiber.StatusBadRequest {
		return status
	}
	return exceptions.NewRequestErrorStatus(apiErr.Code)
}
