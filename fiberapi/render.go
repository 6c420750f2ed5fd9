// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package fiberapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/multimeric/flapison/documents"
	"github.com/multimeric/flapison/queries"
	"github.com/multimeric/flapison/schemas"
)

// RenderOptions carries the endpoint configuration shared by all requests to
// a handler.
type RenderOptions struct {
	// Compute seeds the schema computation, e.g. a handler level Only.
	Compute schemas.ComputeOptions
	// MaxIncludeDepth caps include path nesting, non-positive means no cap.
	MaxIncludeDepth int
	// Links and Meta are copied onto the top level document when set.
	Links documents.Links
	Meta  map[string]any
}

// Render parses the request parameters, computes the schema scoped by them
// and responds with the marshalled document.
func Render(
	ctx *fiber.Ctx,
	reg *schemas.Registry,
	def *schemas.Definition,
	model any,
	opts RenderOptions,
) error {
	params, err := ParseParams(ctx)
	if err != nil {
		return err
	}
	return RenderParams(ctx, reg, def, model, params, opts)
}

// RenderParams is Render for callers that already parsed the parameters,
// typically to sort and paginate a model list first.
func RenderParams(
	ctx *fiber.Ctx,
	reg *schemas.Registry,
	def *schemas.Definition,
	model any,
	params *queries.Params,
	opts RenderOptions,
) error {
	if err := params.CheckIncludeDepth(opts.MaxIncludeDepth); err != nil {
		return err
	}
	if err := params.Validate(reg, def); err != nil {
		return err
	}

	schema, err := reg.Compute(def, opts.Compute, params.SparseFields(), params.Include)
	if err != nil {
		return err
	}
	doc, err := documents.Marshal(schema, model)
	if err != nil {
		return err
	}
	if len(opts.Links) > 0 {
		doc.Links = opts.Links
	}
	if len(opts.Meta) > 0 {
		doc.Meta = opts.Meta
	}

	return ctx.JSON(doc, documents.MediaType)
}

// RenderList renders a slice of models as a list document.
func RenderList(
	ctx *fiber.Ctx,
	reg *schemas.Registry,
	def *schemas.Definition,
	models any,
	opts RenderOptions,
) error {
	opts.Compute.Many = true
	return Render(ctx, reg, def, models, opts)
}
