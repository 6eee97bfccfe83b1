package handlers

import (
	"errors"
	"net/http"

	"Stowage/internal/dto"
	"Stowage/internal/middleware"
	"Stowage/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	service services.UserService
}

func NewProfileHandler(service services.UserService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID := middleware.SessionUserID(c)
	user, err := h.service.FetchUser(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "could not load profile"})
	}
	return c.JSON(dto.ProfileGetDTO{
		UserID:    user.UserID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	})
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	userID := middleware.SessionUserID(c)
	err := h.service.UpdateProfile(c.Context(), userID, req.FirstName, req.LastName, req.Email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "could not update profile"})
	}
	return c.JSON(fiber.Map{"status": "profile updated"})
}
