package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"finance-assistant-go-be/assistant"
	"finance-assistant-go-be/auth"
	"finance-assistant-go-be/config"
	"finance-assistant-go-be/database"
	"finance-assistant-go-be/handlers"
	"finance-assistant-go-be/logger"
	"finance-assistant-go-be/middleware"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New()

	db := database.Connect(cfg.DatabaseURL, log)

	model, err := assistant.NewGeminiClient(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("gemini client init failed")
	}
	pipeline := assistant.New(model, log)

	tokens := auth.NewTokenService(cfg)
	h := handlers.New(db, tokens, pipeline, log)
	transcribe := handlers.NewTranscribeHandler(cfg.OpenAIKey, cfg.TranscribeUpstream, log)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Public: auth and the transcription relay (the relay does its own CORS).
	app.Post("/api/v1/auth/register", h.Register)
	app.Post("/api/v1/auth/login", h.Login)
	app.All("/api/transcribe", transcribe.Handle)

	api := app.Group("/api/v1", middleware.RequireAuth(tokens))

	api.Get("/transactions", h.ListTransactions)
	api.Post("/transactions", h.CreateTransaction)
	api.Delete("/transactions/:id", h.DeleteTransaction)
	api.Get("/transactions/summary", h.TransactionSummary)

	api.Get("/recurring", h.ListRecurring)
	api.Post("/recurring", h.CreateRecurring)
	api.Patch("/recurring/:id/toggle", h.ToggleRecurring)
	api.Delete("/recurring/:id", h.DeleteRecurring)
	api.Post("/recurring/run", h.RunRecurring)

	api.Get("/budgets", h.ListBudgets)
	api.Post("/budgets", h.CreateBudget)
	api.Delete("/budgets/:id", h.DeleteBudget)
	api.Get("/budgets/status", h.BudgetStatus)

	api.Get("/alerts", h.ListAlerts)
	api.Post("/alerts", h.CreateAlert)
	api.Patch("/alerts/:id/read", h.MarkAlertRead)
	api.Post("/alerts/read-all", h.MarkAllAlertsRead)
	api.Delete("/alerts/:id", h.DeleteAlert)

	api.Get("/career/profile", h.GetCareerProfile)
	api.Put("/career/profile", h.PutCareerProfile)
	api.Get("/career/history", h.ListSalaryHistory)
	api.Post("/career/history", h.CreateSalaryEntry)
	api.Delete("/career/history/:id", h.DeleteSalaryEntry)
	api.Get("/career/goals", h.ListIncomeGoals)
	api.Post("/career/goals", h.CreateIncomeGoal)
	api.Patch("/career/goals/:id/progress", h.UpdateGoalProgress)
	api.Delete("/career/goals/:id", h.DeleteIncomeGoal)
	api.Get("/career/expenses", h.ListCareerExpenses)
	api.Post("/career/expenses", h.CreateCareerExpense)
	api.Delete("/career/expenses/:id", h.DeleteCareerExpense)

	api.Post("/assistant/message", h.AssistantMessage)
	api.Post("/assistant/confirm", h.AssistantConfirm)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
