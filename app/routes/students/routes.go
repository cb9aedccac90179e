package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	students := app.Group("/students")
	students.Use(auth.AuthMiddleware)
	students.Get("/", StudentsPage)

	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware, auth.RequireRole("admin", "records"))
	api.Get("/", GetStudentsAPI)
	api.Get("/:id", GetStudentByIDAPI)
	api.Post("/", CreateStudentAPI)
	api.Put("/:id", UpdateStudentAPI)
	api.Delete("/:id", DeleteStudentAPI)
}

func StudentsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("students/index", fiber.Map{
		"Title":       "Students - Hemeson Academy",
		"CurrentPage": "students",
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
	})
}
