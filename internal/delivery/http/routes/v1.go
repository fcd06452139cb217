package routes

import (
	v1 "career-compass/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, deps v1.Deps) error {
	if r == nil {
		return nil
	}

	return v1.Register(r, deps)
}
