package classes

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/database"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/routes/auth"
)

func SetupClassesRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetClassesAPI(c, db) })
	api.Get("/:id/subjects", func(c *fiber.Ctx) error { return GetClassSubjectsAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateClassAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateClassAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteClassAPI(c, db) })
	api.Post("/:id/subjects", func(c *fiber.Ctx) error { return AssignSubjectAPI(c, db) })
	api.Delete("/:id/subjects/:subjectId", func(c *fiber.Ctx) error { return RemoveSubjectAPI(c, db) })

	app.Get("/classes", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		return c.Render("classes/index", fiber.Map{
			"Title":       "Classes - Hemeson Academy",
			"CurrentPage": "classes",
			"user":        user,
			"FirstName":   user.FirstName,
			"LastName":    user.LastName,
			"Email":       user.Email,
		})
	})
}

func GetClassesAPI(c *fiber.Ctx, db *sql.DB) error {
	classes, err := database.GetAllClasses(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}
	return c.JSON(fiber.Map{"classes": classes, "count": len(classes)})
}

func GetClassSubjectsAPI(c *fiber.Ctx, db *sql.DB) error {
	subjects, err := database.GetSubjectsForClass(db, c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class subjects"})
	}
	return c.JSON(fiber.Map{"subjects": subjects, "count": len(subjects)})
}

func CreateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		Name        string  `json:"name"`
		Code        string  `json:"code"`
		FormTeacher *string `json:"form_teacher,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name == "" || req.Code == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name and code are required"})
	}

	class := &models.Class{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Code:        req.Code,
		FormTeacher: req.FormTeacher,
		IsActive:    true,
	}
	if err := database.CreateClass(db, class); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create class"})
	}
	return c.Status(201).JSON(class)
}

func UpdateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	class, err := database.GetClassByID(db, c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class"})
	}

	var req struct {
		Name        string  `json:"name"`
		Code        string  `json:"code"`
		FormTeacher *string `json:"form_teacher,omitempty"`
		IsActive    *bool   `json:"is_active,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name != "" {
		class.Name = req.Name
	}
	if req.Code != "" {
		class.Code = req.Code
	}
	if req.FormTeacher != nil {
		class.FormTeacher = req.FormTeacher
	}
	if req.IsActive != nil {
		class.IsActive = *req.IsActive
	}

	if err := database.UpdateClass(db, class); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update class"})
	}
	return c.JSON(class)
}

func DeleteClassAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteClass(db, c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete class"})
	}
	return c.JSON(fiber.Map{"message": "Class deleted"})
}

func AssignSubjectAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		SubjectID string `json:"subject_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.SubjectID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "subject_id is required"})
	}
	if err := database.AssignSubjectToClass(db, c.Params("id"), req.SubjectID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to assign subject"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Subject assigned"})
}

func RemoveSubjectAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.RemoveSubjectFromClass(db, c.Params("id"), c.Params("subjectId")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to remove subject"})
	}
	return c.JSON(fiber.Map{"message": "Subject removed"})
}
