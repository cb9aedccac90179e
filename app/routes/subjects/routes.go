package subjects

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/database"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/routes/auth"
)

func SetupSubjectsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetSubjectsAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateSubjectAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateSubjectAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteSubjectAPI(c, db) })

	app.Get("/subjects", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		return c.Render("subjects/index", fiber.Map{
			"Title":       "Subjects - Hemeson Academy",
			"CurrentPage": "subjects",
			"user":        user,
			"FirstName":   user.FirstName,
			"LastName":    user.LastName,
			"Email":       user.Email,
		})
	})
}

func GetSubjectsAPI(c *fiber.Ctx, db *sql.DB) error {
	subjects, err := database.GetAllSubjects(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subjects"})
	}
	return c.JSON(fiber.Map{"subjects": subjects, "count": len(subjects)})
}

func CreateSubjectAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		Name string `json:"name"`
		Code string `json:"code"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name == "" || req.Code == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name and code are required"})
	}

	subject := &models.Subject{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Code:     req.Code,
		IsActive: true,
	}
	if err := database.CreateSubject(db, subject); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return c.Status(409).JSON(fiber.Map{"error": "Subject name or code already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create subject"})
	}
	return c.Status(201).JSON(subject)
}

func UpdateSubjectAPI(c *fiber.Ctx, db *sql.DB) error {
	subject, err := database.GetSubjectByID(db, c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subject"})
	}

	var req struct {
		Name     string `json:"name"`
		Code     string `json:"code"`
		IsActive *bool  `json:"is_active,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name != "" {
		subject.Name = req.Name
	}
	if req.Code != "" {
		subject.Code = req.Code
	}
	if req.IsActive != nil {
		subject.IsActive = *req.IsActive
	}

	if err := database.UpdateSubject(db, subject); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update subject"})
	}
	return c.JSON(subject)
}

func DeleteSubjectAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteSubject(db, c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete subject"})
	}
	return c.JSON(fiber.Map{"message": "Subject deleted"})
}
