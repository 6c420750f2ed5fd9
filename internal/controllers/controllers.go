package controllers

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/multimeric/flapison/internal/fixtures"
	"github.com/multimeric/flapison/schemas"
)

type Controllers struct {
	logger          *slog.Logger
	registry        *schemas.Registry
	dataset         *fixtures.Dataset
	validate        *validator.Validate
	authorDef       *schemas.Definition
	postDef         *schemas.Definition
	commentDef      *schemas.Definition
	tagDef          *schemas.Definition
	maxIncludeDepth int
	defaultPageSize int
	maxPageSize     int
}

func NewControllers(
	logger *slog.Logger,
	registry *schemas.Registry,
	dataset *fixtures.Dataset,
	validate *validator.Validate,
	maxIncludeDepth,
	defaultPageSize,
	maxPageSize int,
) *Controllers {
	return &Controllers{
		logger:          logger,
		registry:        registry,
		dataset:         dataset,
		validate:        validate,
		authorDef:       registry.MustGet(fixtures.AuthorSchema),
		postDef:         registry.MustGet(fixtures.PostSchema),
		commentDef:      registry.MustGet(fixtures.CommentSchema),
		tagDef:          registry.MustGet(fixtures.TagSchema),
		maxIncludeDepth: maxIncludeDepth,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}
