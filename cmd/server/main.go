package main

import (
	"context"
	"errors"
	"log"
	"runtime"
	"time"

	"github.com/Shank312/ml-resume-scorer/internal/config"
	"github.com/Shank312/ml-resume-scorer/internal/domain/fiber/handler"
	"github.com/Shank312/ml-resume-scorer/internal/middleware"
	"github.com/Shank312/ml-resume-scorer/internal/service"
	"github.com/Shank312/ml-resume-scorer/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
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
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return config.LoadAppConfig().Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	llmConfig := config.LoadLLMConfig()
	var generator service.ContentGenerator
	if llmConfig.APIKey != "" {
		gemini, err := service.NewGeminiService(ctx, llmConfig.APIKey)
		if err != nil {
			log.Fatal(err)
		}
		generator = gemini
	} else {
		log.Println("GEMINI_API_KEY not set; judge bonus degrades to heuristic only")
	}

	judge := service.NewJudgeService(generator, llmConfig.Model, llmConfig.Mode)
	github := service.NewGithubService(config.LoadGithubConfig().Token)
	uc := usecase.NewScoreUsecase(github, judge)
	scoreHandler := handler.NewScoreHandler(uc)
	scoreHandler.RegisterRoutes(app)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	port := appConfig.Port
	if port == "" {
		port = ":3000"
	}
	log.Println("Server running on ", port)
	if err := app.Listen(port); err != nil {
		log.Fatal(err)
	}
}
