package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"finance-assistant-go-be/models"
	"finance-assistant-go-be/validation"
)

type createAlertRequest struct {
	Msg  string `json:"msg" validate:"required,notblank"`
	Tipo string `json:"tipo"`
	Data string `json:"data" validate:"omitempty,isodate"`
}

func (h *Handler) ListAlerts(c *fiber.Ctx) error {
	userID := h.userID(c)

	q := h.DB.Where("user_id = ?", userID)
	if c.Query("naoLidos") == "true" {
		q = q.Where("lido = false")
	}

	var alerts []models.Alert
	if err := q.Order("data DESC").Find(&alerts).Error; err != nil {
		h.Log.Error().Err(err).Msg("list alerts failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch alerts"})
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}
	return c.JSON(alerts)
}

func (h *Handler) CreateAlert(c *fiber.Ctx) error {
	userID := h.userID(c)

	var req createAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Informe a mensagem."})
	}
	tipo := req.Tipo
	if tipo == "" {
		tipo = "lembrete"
	}
	data := req.Data
	if data == "" {
		data = time.Now().Format("2006-01-02")
	}

	alert := models.Alert{UserID: userID, Msg: req.Msg, Tipo: tipo, Data: data}
	if err := h.DB.Create(&alert).Error; err != nil {
		h.Log.Error().Err(err).Msg("create alert failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save alert"})
	}
	return c.Status(fiber.StatusCreated).JSON(alert)
}

func (h *Handler) MarkAlertRead(c *fiber.Ctx) error {
	userID := h.userID(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid alert id"})
	}

	result := h.DB.Model(&models.Alert{}).Where("id = ? AND user_id = ?", id, userID).Update("lido", true)
	if result.Error != nil {
		h.Log.Error().Err(result.Error).Msg("mark alert read failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update alert"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Alert not found"})
	}
	return c.JSON(fiber.Map{"message": "Lido."})
}

func (h *Handler) MarkAllAlertsRead(c *fiber.Ctx) error {
	userID := h.userID(c)

	result := h.DB.Model(&models.Alert{}).Where("user_id = ? AND lido = false", userID).Update("lido", true)
	if result.Error != nil {
		h.Log.Error().Err(result.Error).Msg("mark all alerts read failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update alerts"})
	}
	return c.JSON(fiber.Map{"atualizados": result.RowsAffected})
}

func (h *Handler) DeleteAlert(c *fiber.Ctx) error {
	userID := h.userID(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid alert id"})
	}

	result := h.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Alert{})
	if result.Error != nil {
		h.Log.Error().Err(result.Error).Msg("delete alert failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete alert"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Alert not found"})
	}
	return c.JSON(fiber.Map{"message": "Removido."})
}
