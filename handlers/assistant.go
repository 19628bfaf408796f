package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"finance-assistant-go-be/assistant"
	"finance-assistant-go-be/models"
)

type assistantMessageRequest struct {
	Msg string `json:"msg"`
}

type assistantConfirmRequest struct {
	Itens []assistant.Draft `json:"itens"`
}

// AssistantMessage runs the user message through the parsing pipeline. The
// month's transactions are loaded first so the model sees current totals.
func (h *Handler) AssistantMessage(c *fiber.Ctx) error {
	userID := h.userID(c)

	var req assistantMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	mes := time.Now().Format("2006-01")
	var txs []models.Transaction
	if err := h.DB.Where("user_id = ? AND data LIKE ?", userID, mes+"%").Find(&txs).Error; err != nil {
		h.Log.Error().Err(err).Msg("assistant context query failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch transactions"})
	}

	reply, err := h.Assistant.HandleMessage(c.Context(), req.Msg, txs)
	if errors.Is(err, assistant.ErrEmptyMessage) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Mensagem vazia"})
	}
	if err != nil {
		h.Log.Error().Err(err).Msg("assistant model call failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Assistente indisponível. Tente novamente."})
	}
	return c.JSON(reply)
}

// AssistantConfirm persists drafts the user accepted. Each draft is written
// independently; the response reports what was saved and what failed.
func (h *Handler) AssistantConfirm(c *fiber.Ctx) error {
	userID := h.userID(c)

	var req assistantConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.Itens) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nada para confirmar"})
	}

	now := time.Now()
	saved := make([]models.Transaction, 0, len(req.Itens))
	failed := 0
	for _, draft := range req.Itens {
		if !models.ValidTipo(draft.Tipo) || draft.Valor <= 0 {
			failed++
			continue
		}
		tx := draft.Materialize(now)
		tx.UserID = userID
		if err := h.DB.Create(&tx).Error; err != nil {
			h.Log.Warn().Err(err).Str("desc", draft.Desc).Msg("confirm write failed")
			failed++
			continue
		}
		saved = append(saved, tx)
	}

	status := fiber.StatusCreated
	if len(saved) == 0 {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{"salvos": saved, "falhas": failed})
}
