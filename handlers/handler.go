package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"finance-assistant-go-be/assistant"
	"finance-assistant-go-be/auth"
	"finance-assistant-go-be/middleware"
)

// Handler holds the dependencies of the API handlers.
type Handler struct {
	DB        *gorm.DB
	Tokens    *auth.TokenService
	Assistant *assistant.Pipeline
	Log       zerolog.Logger
}

func New(db *gorm.DB, tokens *auth.TokenService, pipeline *assistant.Pipeline, log zerolog.Logger) *Handler {
	return &Handler{DB: db, Tokens: tokens, Assistant: pipeline, Log: log}
}

// userID returns the id set by the auth middleware.
func (h *Handler) userID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(middleware.UserIDKey).(uuid.UUID)
	return id
}
