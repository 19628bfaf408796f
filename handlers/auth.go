package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"finance-assistant-go-be/models"
	"finance-assistant-go-be/validation"
)

// Fixed user-facing auth messages. Unmapped failures fall back to msgTryAgain.
const (
	msgEmailInUse       = "Email já cadastrado."
	msgWeakPassword     = "Senha muito fraca (mín. 6 caracteres)."
	msgInvalidEmail     = "Email inválido."
	msgWrongCredentials = "Email ou senha incorretos."
	msgTryAgain         = "Erro ao entrar. Tente novamente."
)

type registerRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgTryAgain})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validation.Validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				if fe.Field() == "Senha" {
					return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgWeakPassword})
				}
			}
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgInvalidEmail})
	}

	var existing models.User
	err := h.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": msgEmailInUse})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.Log.Error().Err(err).Msg("register: lookup failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgTryAgain})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgTryAgain})
	}

	user := models.User{Email: req.Email, PasswordHash: string(hash), Nome: req.Nome}
	if err := h.DB.Create(&user).Error; err != nil {
		h.Log.Error().Err(err).Msg("register: create failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgTryAgain})
	}

	token, err := h.Tokens.Generate(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgTryAgain})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token, "user": user})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgTryAgain})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validation.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgInvalidEmail})
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msgWrongCredentials})
		}
		h.Log.Error().Err(err).Msg("login: lookup failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgTryAgain})
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Senha)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msgWrongCredentials})
	}

	token, err := h.Tokens.Generate(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgTryAgain})
	}
	return c.JSON(fiber.Map{"token": token, "user": user})
}
