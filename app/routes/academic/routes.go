package academic

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/routes/auth"
)

// RegisterRoutes wires academic session and term management.
func RegisterRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/academic")
	api.Use(auth.AuthMiddleware)

	api.Get("/sessions", func(c *fiber.Ctx) error { return GetSessionsAPI(c, db) })
	api.Post("/sessions", func(c *fiber.Ctx) error { return CreateSessionAPI(c, db) })
	api.Put("/sessions/:id", func(c *fiber.Ctx) error { return UpdateSessionAPI(c, db) })
	api.Post("/sessions/:id/set-current", func(c *fiber.Ctx) error { return SetCurrentSessionAPI(c, db) })

	api.Get("/sessions/:id/terms", func(c *fiber.Ctx) error { return GetTermsAPI(c, db) })
	api.Post("/terms", func(c *fiber.Ctx) error { return CreateTermAPI(c, db) })
	api.Put("/terms/:id", func(c *fiber.Ctx) error { return UpdateTermAPI(c, db) })
	api.Post("/terms/:id/set-current", func(c *fiber.Ctx) error { return SetCurrentTermAPI(c, db) })
	api.Get("/terms/current", func(c *fiber.Ctx) error { return GetCurrentTermAPI(c, db) })

	app.Get("/academic", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		return c.Render("academic/index", fiber.Map{
			"Title":       "Academic Calendar - Hemeson Academy",
			"CurrentPage": "academic",
			"user":        user,
			"FirstName":   user.FirstName,
			"LastName":    user.LastName,
			"Email":       user.Email,
		})
	})
}
