package v1

import (
	"career-compass/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterCareers(r fiber.Router, careerHandler *handler.CareerHandler) {
	if r == nil {
		return
	}
	if careerHandler == nil {
		return
	}

	careerHandler.RegisterRoutes(r)
}
