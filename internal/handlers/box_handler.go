package handlers

import (
	"errors"
	"io"
	"net/http"
	"sort"
	"strings"

	"Stowage/internal/mapper"
	"Stowage/internal/middleware"
	"Stowage/internal/models"
	"Stowage/internal/services"
	"Stowage/internal/store"

	"github.com/gofiber/fiber/v2"
)

type BoxHandler struct {
	service    services.BoxService
	suggest    services.SuggestService
	docs       store.DocumentStore
	blobs      store.BlobStore
	logService services.LogService
}

func NewBoxHandler(
	service services.BoxService,
	suggest services.SuggestService,
	docs store.DocumentStore,
	blobs store.BlobStore,
	logService services.LogService,
) *BoxHandler {
	return &BoxHandler{
		service:    service,
		suggest:    suggest,
		docs:       docs,
		blobs:      blobs,
		logService: logService,
	}
}

type boxSaveRequest struct {
	Name          string   `json:"name" form:"name"`
	Items         []string `json:"items" form:"items"`
	Location      string   `json:"location" form:"location"`
	LocationNotes string   `json:"locationNotes" form:"locationNotes"`
	RemovePhotos  []int    `json:"removePhotos" form:"removePhotos"`
}

func (h *BoxHandler) ListBoxes(c *fiber.Ctx) error {
	userID := middleware.SessionUserID(c)
	boxes, err := h.service.ListBoxes(c.Context(), userID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "could not list boxes"})
	}
	filtered := services.FilterBoxes(boxes, c.Query("search"), c.Query("location", services.AllLocations))
	return c.JSON(mapper.ToBoxGetDTOs(filtered))
}

func (h *BoxHandler) GetBoxByID(c *fiber.Ctx) error {
	userID := middleware.SessionUserID(c)
	box, err := h.service.GetBox(c.Context(), userID, c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrBoxNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "box not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "could not load box"})
	}
	return c.JSON(mapper.ToBoxGetDTO(box))
}

// CreateBox drives a fresh editor draft through one save.
func (h *BoxHandler) CreateBox(c *fiber.Ctx) error {
	return h.saveBox(c, nil)
}

// UpdateBox reopens an existing box in an editor, pulls its current photos
// back into the draft, applies the request and saves.
func (h *BoxHandler) UpdateBox(c *fiber.Ctx) error {
	userID := middleware.SessionUserID(c)
	existing, err := h.service.GetBox(c.Context(), userID, c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrBoxNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "box not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "could not load box"})
	}
	return h.saveBox(c, existing)
}

func (h *BoxHandler) saveBox(c *fiber.Ctx, existing *models.Box) error {
	userID := middleware.SessionUserID(c)

	var req boxSaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	editor := services.NewBoxEditor(userID, existing, h.docs, h.blobs, h.logService)
	if existing != nil {
		editor.LoadPhotos(c.Context())
	}

	editor.SetName(req.Name)
	editor.SetLocation(req.Location)
	editor.SetLocationNotes(req.LocationNotes)
	for range editor.Items() {
		editor.RemoveItem(0)
	}
	// Blank rows are skipped so every set lands on the trailing slot and
	// grows the list; binding by request index would stop at the first
	// blank and drop everything after it.
	next := 0
	for _, text := range req.Items {
		if strings.TrimSpace(text) == "" {
			continue
		}
		editor.SetItem(next, text)
		next++
	}

	// Highest index first, so earlier removals do not shift later ones.
	sort.Sort(sort.Reverse(sort.IntSlice(req.RemovePhotos)))
	for _, index := range req.RemovePhotos {
		editor.RemovePhoto(index)
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, header := range form.File["photos"] {
			file, err := header.Open()
			if err != nil {
				return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "could not read photo"})
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "could not read photo"})
			}
			editor.AddPhoto(data, header.Header.Get("Content-Type"))
		}
	}

	box, outcomes, err := editor.Save(c.Context())
	if err != nil {
		if errors.Is(err, services.ErrSaveInProgress) {
			return c.Status(http.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "could not save box"})
	}

	var failedUploads int
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failedUploads++
		}
	}
	status := http.StatusCreated
	if existing != nil {
		status = http.StatusOK
	}
	return c.Status(status).JSON(fiber.Map{
		"box":           mapper.ToBoxGetDTO(box),
		"failedUploads": failedUploads,
	})
}

func (h *BoxHandler) DeleteBox(c *fiber.Ctx) error {
	userID := middleware.SessionUserID(c)
	err := h.service.DeleteBox(c.Context(), userID, c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrBoxNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "box not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "could not delete box"})
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

// SuggestName is advisory; any upstream failure degrades to an empty
// suggestion instead of an error response.
func (h *BoxHandler) SuggestName(c *fiber.Ctx) error {
	var req struct {
		Items []string `json:"items"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	suggestion, err := h.suggest.SuggestName(c.Context(), req.Items)
	if err != nil {
		suggestion = ""
	}
	return c.JSON(fiber.Map{"suggestion": suggestion})
}
