package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"assist-backend/dto"
	"assist-backend/internal/middleware"
	"assist-backend/internal/services"
)

type ProfileHandler struct {
	profiles *services.ProfileService
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GetLocation godoc
// @Summary Read the saved profile location
// @Description Pre-fill read for the request form; location is null when none was ever saved.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileLocation
// @Failure 401 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /profile/location [get]
func (h *ProfileHandler) GetLocation(c *fiber.Ctx) error {
	userID, err := middleware.UIDObjectID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "You must be logged in"})
	}

	loc, err := h.profiles.LoadLocation(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to load profile"})
	}
	return c.Status(fiber.StatusOK).JSON(loc)
}

// PutLocation godoc
// @Summary Save a newly chosen map location
// @Description Merge the precise location and its name into the profile.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body dto.LocationChange true "Location chosen on the map"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /profile/location [put]
func (h *ProfileHandler) PutLocation(c *fiber.Ctx) error {
	userID, err := middleware.UIDObjectID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "You must be logged in"})
	}

	var change dto.LocationChange
	if err := c.BodyParser(&change); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.profiles.SaveLocation(c.Context(), userID, &change); err != nil {
		if errors.Is(err, services.ErrInvalidLocation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to save location"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Location saved"})
}
