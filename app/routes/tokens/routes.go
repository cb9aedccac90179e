package tokens

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/routes/auth"
)

// SetupTokensRoutes wires the admin screens for issuing and revoking
// teacher tokens.
func SetupTokensRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/tokens")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return ListTokensAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return GenerateTokensAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return RevokeTokenAPI(c, db) })

	app.Get("/settings/tokens", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		return c.Render("tokens/index", fiber.Map{
			"Title":       "Teacher Tokens - Hemeson Academy",
			"CurrentPage": "settings",
			"user":        user,
			"FirstName":   user.FirstName,
			"LastName":    user.LastName,
			"Email":       user.Email,
		})
	})
}
