package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"finance-assistant-go-be/models"
	"finance-assistant-go-be/recurrence"
	"finance-assistant-go-be/summary"
	"finance-assistant-go-be/validation"
)

type createTransactionRequest struct {
	Tipo  string  `json:"tipo" validate:"required"`
	Desc  string  `json:"desc"`
	Cat   string  `json:"cat" validate:"required"`
	Forma string  `json:"forma" validate:"required"`
	Valor float64 `json:"valor" validate:"required,gt=0"`
	Data  string  `json:"data" validate:"required,isodate"`

	// Setting recorrente also creates a template for future months.
	Recorrente bool   `json:"recorrente"`
	Freq       string `json:"freq"`
	Dia        int    `json:"dia"`
}

// ListTransactions returns the user's transactions, optionally filtered by
// mes (YYYY-MM), cat and tipo. Before reading it materializes any recurring
// occurrences due this month, so clients always see an up-to-date log.
func (h *Handler) ListTransactions(c *fiber.Ctx) error {
	userID := h.userID(c)
	h.materializeRecurring(userID)

	q := h.DB.Where("user_id = ?", userID)
	if mes := c.Query("mes"); mes != "" {
		q = q.Where("data LIKE ?", mes+"%")
	}
	if cat := c.Query("cat"); cat != "" {
		q = q.Where("cat = ?", cat)
	}
	if tipo := c.Query("tipo"); tipo != "" {
		q = q.Where("tipo = ?", tipo)
	}

	var txs []models.Transaction
	if err := q.Order("data DESC, created_at DESC").Find(&txs).Error; err != nil {
		h.Log.Error().Err(err).Msg("list transactions failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch transactions"})
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return c.JSON(txs)
}

func (h *Handler) CreateTransaction(c *fiber.Ctx) error {
	userID := h.userID(c)

	var req createTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Informe o valor e a data."})
	}
	if !models.ValidTipo(req.Tipo) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tipo inválido"})
	}
	if !models.ValidCategory(req.Tipo, req.Cat) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Categoria inválida"})
	}
	if !models.ValidPaymentMethod(req.Tipo, req.Forma) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Forma de pagamento inválida"})
	}

	// Template fields must be validated before the first write.
	freq := req.Freq
	dia := req.Dia
	if req.Recorrente {
		if freq == "" {
			freq = models.FreqMensal
		}
		if !models.ValidFrequency(freq) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Frequência inválida"})
		}
		if dia < 1 || dia > 31 {
			dia = 1
		}
	}

	tx := models.Transaction{
		UserID: userID,
		Tipo:   req.Tipo,
		Desc:   req.Desc,
		Cat:    req.Cat,
		Forma:  req.Forma,
		Valor:  req.Valor,
		Data:   req.Data,
	}
	if err := h.DB.Create(&tx).Error; err != nil {
		h.Log.Error().Err(err).Msg("create transaction failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save transaction"})
	}

	resp := fiber.Map{"transaction": tx}
	if req.Recorrente {
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
			h.Log.Error().Err(err).Msg("create recurring template failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save recurring template"})
		}
		resp["recurring"] = template
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *Handler) DeleteTransaction(c *fiber.Ctx) error {
	userID := h.userID(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid transaction id"})
	}

	result := h.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		h.Log.Error().Err(result.Error).Msg("delete transaction failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete transaction"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction not found"})
	}
	return c.JSON(fiber.Map{"message": "Removido."})
}

// TransactionSummary returns the aggregate view for one month (default: the
// current one).
func (h *Handler) TransactionSummary(c *fiber.Ctx) error {
	userID := h.userID(c)
	mes := c.Query("mes")
	if mes == "" {
		mes = time.Now().Format("2006-01")
	}
	if err := validation.Validate.Var(mes, "yearmonth"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "mes must be YYYY-MM"})
	}

	var txs []models.Transaction
	if err := h.DB.Where("user_id = ? AND data LIKE ?", userID, mes+"%").Find(&txs).Error; err != nil {
		h.Log.Error().Err(err).Msg("summary query failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch transactions"})
	}
	return c.JSON(summary.ForMonth(txs, mes))
}

// materializeRecurring derives and persists this month's missing recurring
// occurrences. Best-effort: failures are logged and retried on the next run.
func (h *Handler) materializeRecurring(userID uuid.UUID) {
	var templates []models.RecurringTemplate
	if err := h.DB.Where("user_id = ?", userID).Find(&templates).Error; err != nil {
		h.Log.Warn().Err(err).Msg("recurring templates query failed")
		return
	}
	if len(templates) == 0 {
		return
	}

	var existing []models.Transaction
	if err := h.DB.Where("user_id = ? AND rec_id IS NOT NULL", userID).Find(&existing).Error; err != nil {
		h.Log.Warn().Err(err).Msg("recurring transactions query failed")
		return
	}

	drafts := recurrence.DeriveMissing(templates, existing, time.Now())
	for _, r := range recurrence.Materialize(h.DB, userID, drafts) {
		if r.Err != nil {
			h.Log.Warn().Err(r.Err).Str("data", r.Draft.Data).Msg("recurring write failed")
		}
	}
}
