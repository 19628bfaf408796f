package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"finance-assistant-go-be/models"
	"finance-assistant-go-be/validation"
)

// GetCareerProfile returns the user's profile, or an empty one if none was
// saved yet.
func (h *Handler) GetCareerProfile(c *fiber.Ctx) error {
	userID := h.userID(c)

	var profile models.CareerProfile
	err := h.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(models.CareerProfile{
			Skills:   []string{},
			Idiomas:  []string{},
			Formacao: []models.Education{},
		})
	}
	if err != nil {
		h.Log.Error().Err(err).Msg("career profile query failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}
	return c.JSON(profile)
}

// PutCareerProfile creates or fully replaces the user's profile.
func (h *Handler) PutCareerProfile(c *fiber.Ctx) error {
	userID := h.userID(c)

	var req models.CareerProfile
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	var profile models.CareerProfile
	err := h.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		h.Log.Error().Err(err).Msg("career profile lookup failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save profile"})
	}

	req.ID = profile.ID
	req.UserID = userID
	if err := h.DB.Save(&req).Error; err != nil {
		h.Log.Error().Err(err).Msg("career profile save failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save profile"})
	}
	return c.JSON(req)
}

type salaryEntryRequest struct {
	Cargo   string  `json:"cargo" validate:"required,notblank"`
	Empresa string  `json:"empresa"`
	Salario float64 `json:"salario" validate:"required,gt=0"`
	Data    string  `json:"data" validate:"required,yearmonth"`
	Obs     string  `json:"obs"`
}

func (h *Handler) ListSalaryHistory(c *fiber.Ctx) error {
	userID := h.userID(c)

	var entries []models.SalaryEntry
	if err := h.DB.Where("user_id = ?", userID).Order("data DESC").Find(&entries).Error; err != nil {
		h.Log.Error().Err(err).Msg("salary history query failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch history"})
	}
	if entries == nil {
		entries = []models.SalaryEntry{}
	}
	return c.JSON(entries)
}

func (h *Handler) CreateSalaryEntry(c *fiber.Ctx) error {
	userID := h.userID(c)

	var req salaryEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Informe cargo, salário e mês (YYYY-MM)."})
	}

	entry := models.SalaryEntry{
		UserID:  userID,
		Cargo:   req.Cargo,
		Empresa: req.Empresa,
		Salario: req.Salario,
		Data:    req.Data,
		Obs:     req.Obs,
	}
	if err := h.DB.Create(&entry).Error; err != nil {
		h.Log.Error().Err(err).Msg("create salary entry failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save entry"})
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *Handler) DeleteSalaryEntry(c *fiber.Ctx) error {
	userID := h.userID(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid entry id"})
	}

	result := h.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.SalaryEntry{})
	if result.Error != nil {
		h.Log.Error().Err(result.Error).Msg("delete salary entry failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete entry"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Entry not found"})
	}
	return c.JSON(fiber.Map{"message": "Removido."})
}

type incomeGoalRequest struct {
	Titulo     string  `json:"titulo" validate:"required,notblank"`
	Tipo       string  `json:"tipo"`
	ValorAlvo  float64 `json:"valorAlvo" validate:"required,gt=0"`
	ValorAtual float64 `json:"valorAtual" validate:"gte=0"`
	Prazo      string  `json:"prazo" validate:"omitempty,yearmonth"`
}

func (h *Handler) ListIncomeGoals(c *fiber.Ctx) error {
	userID := h.userID(c)

	var goals []models.IncomeGoal
	if err := h.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&goals).Error; err != nil {
		h.Log.Error().Err(err).Msg("income goals query failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch goals"})
	}
	if goals == nil {
		goals = []models.IncomeGoal{}
	}
	return c.JSON(goals)
}

func (h *Handler) CreateIncomeGoal(c *fiber.Ctx) error {
	userID := h.userID(c)

	var req incomeGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Informe o título e o valor alvo."})
	}
	tipo := req.Tipo
	if tipo == "" {
		tipo = "Renda Mensal"
	}

	goal := models.IncomeGoal{
		UserID:     userID,
		Titulo:     req.Titulo,
		Tipo:       tipo,
		ValorAlvo:  req.ValorAlvo,
		ValorAtual: req.ValorAtual,
		Prazo:      req.Prazo,
	}
	if err := h.DB.Create(&goal).Error; err != nil {
		h.Log.Error().Err(err).Msg("create income goal failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save goal"})
	}
	return c.Status(fiber.StatusCreated).JSON(goal)
}

// UpdateGoalProgress sets valorAtual on one goal.
func (h *Handler) UpdateGoalProgress(c *fiber.Ctx) error {
	userID := h.userID(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal id"})
	}

	var req struct {
		ValorAtual float64 `json:"valorAtual" validate:"gte=0"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Valor inválido"})
	}

	var goal models.IncomeGoal
	if err := h.DB.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Goal not found"})
	}
	if err := h.DB.Model(&goal).Update("valor_atual", req.ValorAtual).Error; err != nil {
		h.Log.Error().Err(err).Msg("update goal progress failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update goal"})
	}
	return c.JSON(goal)
}

func (h *Handler) DeleteIncomeGoal(c *fiber.Ctx) error {
	userID := h.userID(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal id"})
	}

	result := h.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.IncomeGoal{})
	if result.Error != nil {
		h.Log.Error().Err(result.Error).Msg("delete income goal failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete goal"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Goal not found"})
	}
	return c.JSON(fiber.Map{"message": "Removido."})
}

type careerExpenseRequest struct {
	Desc    string  `json:"desc" validate:"required,notblank"`
	Cat     string  `json:"cat"`
	Valor   float64 `json:"valor" validate:"required,gt=0"`
	Data    string  `json:"data" validate:"required,isodate"`
	Retorno string  `json:"retorno"`
}

func (h *Handler) ListCareerExpenses(c *fiber.Ctx) error {
	userID := h.userID(c)

	var expenses []models.CareerExpense
	if err := h.DB.Where("user_id = ?", userID).Order("data DESC").Find(&expenses).Error; err != nil {
		h.Log.Error().Err(err).Msg("career expenses query failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch expenses"})
	}
	if expenses == nil {
		expenses = []models.CareerExpense{}
	}
	return c.JSON(expenses)
}

func (h *Handler) CreateCareerExpense(c *fiber.Ctx) error {
	userID := h.userID(c)

	var req careerExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Informe descrição, valor e data."})
	}
	if req.Cat != "" && !models.ValidCareerCategory(req.Cat) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Categoria inválida"})
	}

	expense := models.CareerExpense{
		UserID:  userID,
		Desc:    req.Desc,
		Cat:     req.Cat,
		Valor:   req.Valor,
		Data:    req.Data,
		Retorno: req.Retorno,
	}
	if err := h.DB.Create(&expense).Error; err != nil {
		h.Log.Error().Err(err).Msg("create career expense failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save expense"})
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}

func (h *Handler) DeleteCareerExpense(c *fiber.Ctx) error {
	userID := h.userID(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid expense id"})
	}

	result := h.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.CareerExpense{})
	if result.Error != nil {
		h.Log.Error().Err(result.Error).Msg("delete career expense failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete expense"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expense not found"})
	}
	return c.JSON(fiber.Map{"message": "Removido."})
}
