package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/multimeric/flapison/fiberapi"
	"github.com/multimeric/flapison/internal/config"
	"github.com/multimeric/flapison/internal/controllers"
	"github.com/multimeric/flapison/internal/fixtures"
	"github.com/multimeric/flapison/internal/server/routes"
	"github.com/multimeric/flapison/internal/server/validations"
	"github.com/multimeric/flapison/schemas"
)

type FiberServer struct {
	*fiber.App
	routes   *routes.Routes
	registry *schemas.Registry
	dataset  *fixtures.Dataset
}

// Registry returns the schema registry serving the endpoints.
func (s *FiberServer) Registry() *schemas.Registry {
	return s.registry
}

// Dataset returns the seeded sample data, so tests can target known
// resources.
func (s *FiberServer) Dataset() *fixtures.Dataset {
	return s.dataset
}

func New(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.Config,
) *FiberServer {
	logger.InfoContext(ctx, "Building schema registry...")
	registry := fixtures.NewSchemaRegistry()
	logger.InfoContext(ctx, "Finished building schema registry")

	logger.InfoContext(ctx, "Seeding sample dataset...")
	dataset, err := fixtures.SeedDefault()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to seed sample dataset", "error", err)
		panic(err)
	}
	logger.InfoContext(ctx, "Finished seeding sample dataset")

	logger.InfoContext(ctx, "Loading validators...")
	vld := validations.NewValidator(logger)
	logger.InfoContext(ctx, "Finished loading validators")

	server := &FiberServer{
		App: fiber.New(fiber.Config{
			ServerHeader: cfg.ServiceName(),
			AppName:      cfg.ServiceName(),
			ErrorHandler: fiberapi.NewErrorHandler(logger),
		}),
		routes: routes.NewRoutes(controllers.NewControllers(
			logger,
			registry,
			dataset,
			vld,
			int(cfg.MaxIncludeDepth()),
			int(cfg.DefaultPageSize()),
			int(cfg.MaxPageSize()),
		)),
		registry: registry,
		dataset:  dataset,
	}

	logger.InfoContext(ctx, "Loading middleware...")
	server.Use(helmet.New())
	server.Use(requestid.New(requestid.Config{
		Header: fiber.HeaderXRequestID,
		Generator: func() string {
			return uuid.NewString()
		},
	}))
	server.Use(limiter.New(limiter.Config{
		Max:               int(cfg.RateLimiterMax()),
		Expiration:        time.Duration(cfg.RateLimiterExpSec()) * time.Second,
		LimiterMiddleware: limiter.SlidingWindow{},
	}))
	server.App.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,OPTIONS,HEAD",
		AllowHeaders:     "Accept,Content-Type",
		AllowCredentials: false, // credentials require explicit origins
		MaxAge:           300,
	}))
	logger.Info("Finished loading common middlewares")

	return server
}
