package fees

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/routes/auth"
)

func SetupFeesRoutes(app *fiber.App, db *sql.DB) {
	// Money is the bursar's desk; plain staff accounts stay out.
	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware, auth.RequireRole("admin", "bursar"))
	api.Get("/types", func(c *fiber.Ctx) error { return GetFeeTypesAPI(c, db) })
	api.Post("/types", func(c *fiber.Ctx) error { return CreateFeeTypeAPI(c, db) })
	api.Put("/types/:id", func(c *fiber.Ctx) error { return UpdateFeeTypeAPI(c, db) })
	api.Post("/assign", func(c *fiber.Ctx) error { return AssignFeeAPI(c, db) })
	api.Get("/student/:studentId", func(c *fiber.Ctx) error { return GetStudentFeesAPI(c, db) })
	api.Post("/payments", func(c *fiber.Ctx) error { return RecordPaymentAPI(c, db) })

	app.Get("/fees", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		return c.Render("fees/index", fiber.Map{
			"Title":       "Fees - Hemeson Academy",
			"CurrentPage": "fees",
			"user":        user,
			"FirstName":   user.FirstName,
			"LastName":    user.LastName,
			"Email":       user.Email,
		})
	})
}
