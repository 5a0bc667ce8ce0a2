package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"assist-backend/internal/middleware"
	"assist-backend/internal/repository"
	"assist-backend/internal/utils"
)

type NotificationHandler struct {
	col *mongo.Collection
}

func NewNotificationHandler(db *mongo.Database) *NotificationHandler {
	return &NotificationHandler{col: db.Collection(repository.NotificationsCollection)}
}

// GetUnread godoc
// @Summary List unread notifications for the current user
// @Description Return all unread notifications and the total count for the authenticated user.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Unread notification count and list"
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string "Failed to fetch notifications"
// @Router /notifications [get]
func (h *NotificationHandler) GetUnread(c *fiber.Ctx) error {
	userID, err := middleware.UIDObjectID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "You must be logged in"})
	}

	cursor, err := h.col.Find(c.Context(), bson.M{
		"user_id": userID,
		"read":    false,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch notifications"})
	}
	defer cursor.Close(c.Context())

	var notifications []bson.M
	if err := cursor.All(c.Context(), &notifications); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to parse notifications"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"unread_count": len(notifications),
		"data":         notifications,
	})
}

// GetAndMarkRead godoc
// @Summary Get a notification and mark it as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID (hex ObjectID)"
// @Success 200 {object} map[string]interface{} "Updated notification document"
// @Failure 404 {object} map[string]string "Notification not found"
// @Failure 500 {object} map[string]string "Failed to update notification"
// @Router /notifications/{id} [get]
func (h *NotificationHandler) GetAndMarkRead(c *fiber.Ctx) error {
	userID, err := middleware.UIDObjectID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "You must be logged in"})
	}

	notiID, err := utils.Oid(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid notification id"})
	}

	filter := bson.M{"_id": notiID, "user_id": userID}
	update := bson.M{"$set": bson.M{
		"read":    true,
		"read_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var notif bson.M
	err = h.col.FindOneAndUpdate(c.Context(), filter, update, opts).Decode(&notif)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "notification not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update notification"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": notif})
}
