package routes

import (
	"github.com/gofiber/fiber/v2"

	"assist-backend/internal/controllers"
)

func SetupRequests(app *fiber.App, h *controllers.RequestHandler) {
	app.Post("/requests", h.Create)
	// nearby before :id so the literal path wins
	app.Get("/requests/nearby", h.Nearby)
	app.Get("/requests/:id", h.GetByID)
}
