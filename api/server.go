// HTTP front end over the simulation facade. The API treats each run as an
// atomic, blocking call and never reuses process records across requests.

package api

import (
	"github.com/gofiber/fiber/v2"
)

// New builds the fiber application with all routes registered.
func New() *fiber.App {
	app := fiber.New()
	handler := NewSchedulerHandlerImpl()

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Get("/algorithms", handler.Algorithms)
		v1.Post("/schedule", handler.Schedule)
		v1.Post("/compare", handler.Compare)
	}

	return app
}
