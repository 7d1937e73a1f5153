package main

import (
	"errors"
	"time"

	"github.com/fadilmartias/resume-reviewer/internal/config"
	"github.com/fadilmartias/resume-reviewer/internal/domain/fiber/handler"
	"github.com/fadilmartias/resume-reviewer/internal/middleware"
	"github.com/fadilmartias/resume-reviewer/internal/repository"
	"github.com/fadilmartias/resume-reviewer/internal/service"
	"github.com/fadilmartias/resume-reviewer/internal/usecase"
	"github.com/fadilmartias/resume-reviewer/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type circuitBreaker interface {
	GetCircuitBreakerStatus() (consecutiveErrors int, isOpen bool)
}

// newServer builds the fiber app with its middlewares and API routes over a
// fresh in-memory store.
func newServer(appConfig *config.AppConfig, uploadConfig *config.UploadConfig, generationConfig *config.GenerationConfig, generator service.ContentGeneratorInterface) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		// multipart overhead on top of the largest accepted file
		BodyLimit: int(uploadConfig.MaxFileSize) + 1024*1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New(healthcheck.Config{
		ReadinessProbe: func(c *fiber.Ctx) bool {
			cb, ok := generator.(circuitBreaker)
			if !ok {
				return true
			}
			_, open := cb.GetCircuitBreakerStatus()
			return !open
		},
	}))
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.NewRateLimiter(middleware.RateLimitConfig{
		Max:    50,
		Window: time.Minute,
	}))

	store := repository.NewRecordStore()
	generation := usecase.NewGenerationUsecase(generator, generationConfig.Workers, generationConfig.QuestionCount)
	uc := usecase.NewResumeUsecase(store, generation)
	h := handler.NewResumeHandler(uc, util.NewTextExtractor(uploadConfig.PDFOCRFallback), handler.Options{
		UploadDir:         uploadConfig.Dir,
		MaxFileSize:       uploadConfig.MaxFileSize,
		GenerationTimeout: generationConfig.Timeout,
	})
	h.RegisterRoutes(app)

	return app
}
