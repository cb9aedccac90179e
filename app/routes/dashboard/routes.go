package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/database"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/dashboard", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		return c.Render("dashboard/index", fiber.Map{
			"Title":       "Dashboard - Hemeson Academy",
			"CurrentPage": "dashboard",
			"user":        user,
			"FirstName":   user.FirstName,
			"LastName":    user.LastName,
			"Email":       user.Email,
		})
	})

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", func(c *fiber.Ctx) error { return GetStatsAPI(c, db) })
}

func GetStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := database.GetDashboardStats(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch dashboard statistics",
			"details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}
