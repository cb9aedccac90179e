package scores

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupScoresRoutes wires the token-gated score entry flow. These
// routes are public; the token is the credential.
func SetupScoresRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api")
	api.Post("/tokens/redeem", func(c *fiber.Ctx) error { return RedeemTokenAPI(c, db) })
	api.Post("/scores/submit", func(c *fiber.Ctx) error { return SubmitScoresAPI(c, db) })

	// Score entry page for teachers holding a token.
	app.Get("/teacher/entry", func(c *fiber.Ctx) error {
		return c.Render("scores/entry", fiber.Map{
			"Title":       "Score Entry - Hemeson Academy",
			"CurrentPage": "entry",
		}, "layouts/public")
	})
}
