package routes

import (
	"github.com/gofiber/fiber/v2"

	"assist-backend/internal/controllers"
)

func SetupProfile(app *fiber.App, h *controllers.ProfileHandler) {
	app.Get("/profile/location", h.GetLocation)
	app.Put("/profile/location", h.PutLocation)
}
