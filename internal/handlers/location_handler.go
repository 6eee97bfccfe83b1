package handlers

import (
	"errors"
	"net/http"

	"Stowage/internal/middleware"
	"Stowage/internal/services"

	"github.com/gofiber/fiber/v2"
)

type LocationHandler struct {
	service services.LocationService
}

func NewLocationHandler(service services.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

func (h *LocationHandler) GetLocations(c *fiber.Ctx) error {
	userID := middleware.SessionUserID(c)
	locations, err := h.service.FetchOrInitialize(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "could not load locations"})
	}
	return c.JSON(fiber.Map{"availableLocations": locations})
}

func (h *LocationHandler) AddLocation(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	userID := middleware.SessionUserID(c)
	locations, err := h.service.AddLocation(c.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "could not add location"})
	}
	return c.JSON(fiber.Map{"availableLocations": locations})
}
