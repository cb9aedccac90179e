package students

import (
	"database/sql"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/config"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/database"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
)

var admissionPattern = regexp.MustCompile(`^[A-Z]{2,5}/\d{4}/\d{3,4}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("admission", func(fl validator.FieldLevel) bool {
		return admissionPattern.MatchString(fl.Field().String())
	})
	return v
}

// StudentRequest is the create/update payload for a student record.
type StudentRequest struct {
	AdmissionNumber string             `json:"admission_number" validate:"required,admission"`
	FirstName       string             `json:"first_name" validate:"required"`
	LastName        string             `json:"last_name" validate:"required"`
	MiddleName      *string            `json:"middle_name,omitempty"`
	Gender          *models.Gender     `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	DateOfBirth     *models.CustomDate `json:"date_of_birth,omitempty"`
	ClassID         *string            `json:"class_id,omitempty" validate:"omitempty,uuid"`
	GuardianName    *string            `json:"guardian_name,omitempty"`
	GuardianPhone   *string            `json:"guardian_phone,omitempty"`
	Status          string             `json:"status,omitempty" validate:"omitempty,oneof=active graduated withdrawn suspended"`
}

func GetStudentsAPI(c *fiber.Ctx) error {
	filters := database.StudentFilters{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		ClassID:   c.Query("class_id"),
		Gender:    c.Query("gender"),
		SortBy:    c.Query("sort_by", "admission_number"),
		SortOrder: c.Query("sort_order", "asc"),
		Limit:     c.QueryInt("limit", 25),
		Offset:    c.QueryInt("offset", 0),
	}

	students, totalCount, err := database.GetStudentsWithFilters(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students":    students,
		"count":       len(students),
		"total_count": totalCount,
	})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	return c.JSON(student)
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student fields", "details": err.Error()})
	}

	status := models.StudentStatus(req.Status)
	if status == "" {
		status = models.StudentActive
	}

	student := &models.Student{
		ID:              uuid.New().String(),
		AdmissionNumber: req.AdmissionNumber,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		MiddleName:      req.MiddleName,
		Gender:          req.Gender,
		DateOfBirth:     req.DateOfBirth,
		ClassID:         req.ClassID,
		GuardianName:    req.GuardianName,
		GuardianPhone:   req.GuardianPhone,
		Status:          status,
	}

	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return c.Status(409).JSON(fiber.Map{"error": "Admission number already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(student)
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student fields", "details": err.Error()})
	}

	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	student.AdmissionNumber = req.AdmissionNumber
	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.MiddleName = req.MiddleName
	student.Gender = req.Gender
	student.DateOfBirth = req.DateOfBirth
	student.ClassID = req.ClassID
	student.GuardianName = req.GuardianName
	student.GuardianPhone = req.GuardianPhone
	if req.Status != "" {
		student.Status = models.StudentStatus(req.Status)
	}

	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return c.Status(409).JSON(fiber.Map{"error": "Admission number already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(student)
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	err := database.DeleteStudent(config.GetDB(), c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	return c.JSON(fiber.Map{"message": "Student deleted"})
}
