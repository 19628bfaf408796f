package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"finance-assistant-go-be/models"
	"finance-assistant-go-be/recurrence"
	"finance-assistant-go-be/validation"
)

type createRecurringRequest struct {
	Tipo  string  `json:"tipo" validate:"required"`
	Desc  string  `json:"desc"`
	Cat   string  `json:"cat" validate:"required"`
	Forma string  `json:"forma" validate:"required"`
	Valor float64 `json:"valor" validate:"required,gt=0"`
	Freq  string  `json:"freq"`
	Dia   int     `json:"dia" validate:"gte=0,lte=31"`
}

func (h *Handler) ListRecurring(c *fiber.Ctx) error {
	userID := h.userID(c)

	var templates []models.RecurringTemplate
	if err := h.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&templates).Error; err != nil {
		h.Log.Error().Err(err).Msg("list recurring failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch recurring templates"})
	}
	if templates == nil {
		templates = []models.RecurringTemplate{}
	}
	return c.JSON(templates)
}

func (h *Handler) CreateRecurring(c *fiber.Ctx) error {
	userID := h.userID(c)

	var req createRecurringRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Informe o valor."})
	}
	if !models.ValidTipo(req.Tipo) || !models.ValidCategory(req.Tipo, req.Cat) || !models.ValidPaymentMethod(req.Tipo, req.Forma) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Categoria ou forma inválida"})
	}
	freq := req.Freq
	if freq == "" {
		freq = models.FreqMensal
	}
	if !models.ValidFrequency(freq) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Frequência inválida"})
	}
	dia := req.Dia
	if dia < 1 {
		dia = 1
	}

	template := models.RecurringTemplate{
		UserID: userID,
		Tipo:   req.Tipo,
		Desc:   req.Desc,
		Cat:    req.Cat,
		Forma:  req.Forma,
		Valor:  req.Valor,
		Freq:   freq,
		Dia:    dia,
		Ativo:  true,
	}
	if err := h.DB.Create(&template).Error; err != nil {
		h.Log.Error().Err(err).Msg("create recurring failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save recurring template"})
	}
	return c.Status(fiber.StatusCreated).JSON(template)
}

// ToggleRecurring flips the ativo flag of one template.
func (h *Handler) ToggleRecurring(c *fiber.Ctx) error {
	userID := h.userID(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid template id"})
	}

	var template models.RecurringTemplate
	if err := h.DB.Where("id = ? AND user_id = ?", id, userID).First(&template).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Template not found"})
	}
	if err := h.DB.Model(&template).Update("ativo", !template.Ativo).Error; err != nil {
		h.Log.Error().Err(err).Msg("toggle recurring failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update template"})
	}
	return c.JSON(template)
}

// DeleteRecurring removes a template and cascade-deletes every transaction
// it generated.
func (h *Handler) DeleteRecurring(c *fiber.Ctx) error {
	userID := h.userID(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid template id"})
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.RecurringTemplate{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("user_id = ? AND rec_id = ?", userID, id).Delete(&models.Transaction{}).Error
	})
	if err == gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Template not found"})
	}
	if err != nil {
		h.Log.Error().Err(err).Msg("delete recurring failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete template"})
	}
	return c.JSON(fiber.Map{"message": "Recorrente removido."})
}

// RunRecurring derives and persists this month's missing occurrences and
// reports a result per attempted write.
func (h *Handler) RunRecurring(c *fiber.Ctx) error {
	userID := h.userID(c)

	var templates []models.RecurringTemplate
	if err := h.DB.Where("user_id = ?", userID).Find(&templates).Error; err != nil {
		h.Log.Error().Err(err).Msg("recurring templates query failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch templates"})
	}
	var existing []models.Transaction
	if err := h.DB.Where("user_id = ? AND rec_id IS NOT NULL", userID).Find(&existing).Error; err != nil {
		h.Log.Error().Err(err).Msg("recurring transactions query failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch transactions"})
	}

	drafts := recurrence.DeriveMissing(templates, existing, time.Now())
	results := recurrence.Materialize(h.DB, userID, drafts)

	type runResult struct {
		Draft models.Transaction `json:"draft"`
		OK    bool               `json:"ok"`
		Error string             `json:"error,omitempty"`
	}
	out := make([]runResult, 0, len(results))
	saved := 0
	for _, r := range results {
		rr := runResult{Draft: r.Draft, OK: r.Err == nil}
		if r.Err != nil {
			rr.Error = r.Err.Error()
			h.Log.Warn().Err(r.Err).Str("data", r.Draft.Data).Msg("recurring write failed")
		} else {
			saved++
		}
		out = append(out, rr)
	}
	return c.JSON(fiber.Map{"gerados": saved, "resultados": out})
}
