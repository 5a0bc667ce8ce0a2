package routes

import (
	"github.com/gofiber/fiber/v2"

	"assist-backend/internal/controllers"
)

func SetupNotifications(app *fiber.App, h *controllers.NotificationHandler) {
	app.Get("/notifications", h.GetUnread)
	app.Get("/notifications/:id", h.GetAndMarkRead)
}
