package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"finance-assistant-go-be/models"
	"finance-assistant-go-be/validation"
)

type createBudgetRequest struct {
	Cat    string  `json:"cat" validate:"required,notblank"`
	Limite float64 `json:"limite" validate:"required,gt=0"`
	Cor    string  `json:"cor"`
}

func (h *Handler) ListBudgets(c *fiber.Ctx) error {
	userID := h.userID(c)

	var budgets []models.Budget
	if err := h.DB.Where("user_id = ?", userID).Find(&budgets).Error; err != nil {
		h.Log.Error().Err(err).Msg("list budgets failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch budgets"})
	}
	if budgets == nil {
		budgets = []models.Budget{}
	}
	return c.JSON(budgets)
}

func (h *Handler) CreateBudget(c *fiber.Ctx) error {
	userID := h.userID(c)

	var req createBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Informe a categoria e o limite."})
	}
	if !models.ValidCategory(models.TipoDespesa, req.Cat) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Categoria inválida"})
	}

	var count int64
	h.DB.Model(&models.Budget{}).Where("user_id = ? AND cat = ?", userID, req.Cat).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Categoria já tem orçamento."})
	}

	budget := models.Budget{UserID: userID, Cat: req.Cat, Limite: req.Limite, Cor: req.Cor}
	if err := h.DB.Create(&budget).Error; err != nil {
		h.Log.Error().Err(err).Msg("create budget failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save budget"})
	}
	return c.Status(fiber.StatusCreated).JSON(budget)
}

func (h *Handler) DeleteBudget(c *fiber.Ctx) error {
	userID := h.userID(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid budget id"})
	}

	result := h.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Budget{})
	if result.Error != nil {
		h.Log.Error().Err(result.Error).Msg("delete budget failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete budget"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Budget not found"})
	}
	return c.JSON(fiber.Map{"message": "Orçamento removido."})
}

type budgetStatus struct {
	models.Budget
	Gasto   string `json:"gasto"`
	Percent int    `json:"percent"`
	Nivel   string `json:"nivel"`
}

// BudgetStatus returns each budget with the month's spend against its limit.
// Nivel is "ok" below 80%, "alerta" from 80%, "estourado" at 100% or more.
func (h *Handler) BudgetStatus(c *fiber.Ctx) error {
	userID := h.userID(c)
	mes := c.Query("mes")
	if mes == "" {
		mes = time.Now().Format("2006-01")
	}
	if err := validation.Validate.Var(mes, "yearmonth"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "mes must be YYYY-MM"})
	}

	var budgets []models.Budget
	if err := h.DB.Where("user_id = ?", userID).Find(&budgets).Error; err != nil {
		h.Log.Error().Err(err).Msg("budget status query failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch budgets"})
	}
	var txs []models.Transaction
	if err := h.DB.Where("user_id = ? AND tipo = ? AND data LIKE ?", userID, models.TipoDespesa, mes+"%").Find(&txs).Error; err != nil {
		h.Log.Error().Err(err).Msg("budget status query failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch transactions"})
	}

	byCat := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		byCat[tx.Cat] = byCat[tx.Cat].Add(decimal.NewFromFloat(tx.Valor))
	}

	statuses := make([]budgetStatus, 0, len(budgets))
	for _, b := range budgets {
		spent := byCat[b.Cat]
		percent := 0
		if b.Limite > 0 {
			percent = int(spent.Div(decimal.NewFromFloat(b.Limite)).Mul(decimal.NewFromInt(100)).IntPart())
		}
		nivel := "ok"
		switch {
		case percent >= 100:
			nivel = "estourado"
		case percent >= 80:
			nivel = "alerta"
		}
		statuses = append(statuses, budgetStatus{Budget: b, Gasto: spent.StringFixed(2), Percent: percent, Nivel: nivel})

		if nivel != "ok" {
			h.ensureBudgetAlert(userID, b.Cat, nivel, mes)
		}
	}
	return c.JSON(statuses)
}

// ensureBudgetAlert creates at most one alert per budget category, month and
// level. Best-effort: a failed write only logs.
func (h *Handler) ensureBudgetAlert(userID uuid.UUID, cat, nivel, mes string) {
	var msg string
	if nivel == "estourado" {
		msg = fmt.Sprintf("Orçamento de %s estourado!", cat)
	} else {
		msg = fmt.Sprintf("Orçamento de %s passou de 80%%.", cat)
	}

	var count int64
	h.DB.Model(&models.Alert{}).
		Where("user_id = ? AND msg = ? AND data LIKE ?", userID, msg, mes+"%").
		Count(&count)
	if count > 0 {
		return
	}

	alert := models.Alert{UserID: userID, Msg: msg, Tipo: "orcamento", Data: time.Now().Format("2006-01-02")}
	if err := h.DB.Create(&alert).Error; err != nil {
		h.Log.Warn().Err(err).Str("cat", cat).Msg("budget alert write failed")
	}
}
