package controllers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"assist-backend/dto"
	"assist-backend/internal/middleware"
	"assist-backend/internal/models"
	"assist-backend/internal/repository"
	"assist-backend/internal/services"
	"assist-backend/internal/utils"
	"assist-backend/internal/validation"
)

const (
	defaultNearbyKm  = 10.0
	maxNearbyKm      = 100.0
	maxNearbyResults = 50
)

// RequestSubmitter is what the create handler needs from the orchestrator.
type RequestSubmitter interface {
	Submit(ctx context.Context, userID bson.ObjectID, form *dto.NewRequest) (*dto.NewRequestResponse, error)
}

type RequestHandler struct {
	submitter RequestSubmitter
	requests  *repository.RequestRepository
}

func NewRequestHandler(submitter RequestSubmitter, requests *repository.RequestRepository) *RequestHandler {
	return &RequestHandler{submitter: submitter, requests: requests}
}

// Create godoc
// @Summary Submit a help request
// @Description Validate the request form and persist the private record, public projection, contact info and creation action under one id.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param newRequest body dto.NewRequest true "Request form values with chosen location"
// @Success 201 {object} dto.NewRequestResponse
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 401 {object} map[string]interface{} "Not logged in"
// @Failure 412 {object} map[string]interface{} "No location chosen"
// @Failure 422 {object} map[string]interface{} "Display name could not be split"
// @Failure 502 {object} map[string]interface{} "Store write failed"
// @Router /requests [post]
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var form dto.NewRequest
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	// Anonymous callers reach the orchestrator with a nil id so the
	// not-authenticated path stays in one place.
	userID, _ := middleware.UIDObjectID(c)

	resp, err := h.submitter.Submit(c.Context(), userID, &form)
	if err != nil {
		return submitError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func submitError(c *fiber.Ctx, err error) error {
	var ve *validation.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Please fix the errors above.",
			"fields": ve.Fields,
		})
	case errors.Is(err, services.ErrNotAuthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrNoLocation):
		return c.Status(fiber.StatusPreconditionFailed).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, utils.ErrNameSplit):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
}

// GetByID godoc
// @Summary Get a public request
// @Tags requests
// @Produce json
// @Param id path string true "Request ID (hex ObjectID)"
// @Success 200 {object} models.RequestPublic
// @Failure 404 {object} map[string]interface{}
// @Router /requests/{id} [get]
func (h *RequestHandler) GetByID(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request id"})
	}

	pub, err := h.requests.FindPublicByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch request"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": pub})
}

// Nearby godoc
// @Summary List public requests near a point
// @Tags requests
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param km query number false "Radius in kilometers (default 10, max 100)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /requests/nearby [get]
func (h *RequestHandler) Nearby(c *fiber.Ctx) error {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil || !utils.ValidLatLng(lat, lng) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "lat and lng are required"})
	}

	km := defaultNearbyKm
	if raw := c.Query("km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "km must be a positive number"})
		}
		km = parsed
	}
	if km > maxNearbyKm {
		km = maxNearbyKm
	}

	results, err := h.requests.FindPublicNear(c.Context(), lat, lng, km*1000, maxNearbyResults)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch nearby requests"})
	}
	if results == nil {
		results = []models.RequestPublic{}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": results})
}
