package results

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/routes/auth"
)

// SetupResultsRoutes wires the public result checker and the admin PIN
// management screens.
func SetupResultsRoutes(app *fiber.App, db *sql.DB) {
	// Public result check; the PIN is the credential.
	app.Post("/api/results/check", func(c *fiber.Ctx) error { return CheckResultAPI(c, db) })

	// Admin PIN management
	api := app.Group("/api/pins")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return ListPinsAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return GeneratePinsAPI(c, db) })

	// PIN management page
	app.Get("/settings/pins", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		return c.Render("results/pins", fiber.Map{
			"Title":       "Result PINs - Hemeson Academy",
			"CurrentPage": "settings",
			"user":        user,
			"FirstName":   user.FirstName,
			"LastName":    user.LastName,
			"Email":       user.Email,
		})
	})
}
