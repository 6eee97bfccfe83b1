package handlers

import (
	"errors"
	"net/http"

	"Stowage/internal/middleware"
	"Stowage/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service    services.AuthService
	logService services.LogService
}

func NewAuthHandler(service services.AuthService, logService services.LogService) *AuthHandler {
	return &AuthHandler{service: service, logService: logService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req struct {
		FirstName       string `json:"firstName"`
		LastName        string `json:"lastName"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if req.Password != req.ConfirmPassword {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "passwords do not match"})
	}

	userID, token, err := h.service.Register(c.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields), errors.Is(err, services.ErrPasswordTooShort):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrEmailTaken):
			return c.Status(http.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "could not register"})
		}
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"userID": userID, "token": token})
}

func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	userID, token, err := h.service.SignIn(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "could not sign in"})
	}
	return c.JSON(fiber.Map{"userID": userID, "token": token})
}

// SignOut is a token discard on the caller's side; the endpoint only exists
// so clients have a uniform place to end the session.
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "signed out"})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req struct {
		NewPassword     string `json:"newPassword"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if req.NewPassword == "" || req.ConfirmPassword == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "please fill out both password fields"})
	}
	if req.NewPassword != req.ConfirmPassword {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "passwords do not match"})
	}

	err := h.service.ChangePassword(c.Context(), middleware.SessionUserID(c), req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordTooShort):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "could not change password"})
		}
	}
	return c.JSON(fiber.Map{"status": "password updated"})
}
