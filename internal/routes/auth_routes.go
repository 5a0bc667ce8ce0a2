package routes

import (
	"github.com/gofiber/fiber/v2"

	"assist-backend/internal/controllers"
)

func SetupAuth(app *fiber.App, h *controllers.AuthHandler) {
	app.Post("/auth/register", h.Register)
	app.Post("/auth/login", h.Login)
}
