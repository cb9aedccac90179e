package academic

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/database"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
)

func GetSessionsAPI(c *fiber.Ctx, db *sql.DB) error {
	sessions, err := database.GetAllSessions(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sessions"})
	}
	return c.JSON(fiber.Map{"sessions": sessions, "count": len(sessions)})
}

func CreateSessionAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		Name      string            `json:"name"`
		StartDate models.CustomDate `json:"start_date"`
		EndDate   models.CustomDate `json:"end_date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}
	if !req.EndDate.After(req.StartDate.Time) {
		return c.Status(400).JSON(fiber.Map{"error": "end_date must be after start_date"})
	}

	session := &models.AcademicSession{
		ID:        uuid.New().String(),
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if err := database.CreateSession(db, session); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create session"})
	}
	return c.Status(201).JSON(session)
}

func UpdateSessionAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		Name      string            `json:"name"`
		StartDate models.CustomDate `json:"start_date"`
		EndDate   models.CustomDate `json:"end_date"`
		IsActive  *bool             `json:"is_active,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	session := &models.AcademicSession{
		ID:        c.Params("id"),
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsActive:  true,
	}
	if req.IsActive != nil {
		session.IsActive = *req.IsActive
	}
	if err := database.UpdateSession(db, session); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update session"})
	}
	return c.JSON(session)
}

func SetCurrentSessionAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.SetCurrentSession(db, c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to set current session"})
	}
	return c.JSON(fiber.Map{"message": "Current session updated"})
}

func GetTermsAPI(c *fiber.Ctx, db *sql.DB) error {
	terms, err := database.GetTermsBySession(db, c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch terms"})
	}
	return c.JSON(fiber.Map{"terms": terms, "count": len(terms)})
}

func CreateTermAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		SessionID string            `json:"session_id"`
		Name      string            `json:"name"`
		StartDate models.CustomDate `json:"start_date"`
		EndDate   models.CustomDate `json:"end_date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.SessionID == "" || req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "session_id and name are required"})
	}
	if !req.EndDate.After(req.StartDate.Time) {
		return c.Status(400).JSON(fiber.Map{"error": "end_date must be after start_date"})
	}

	term := &models.Term{
		ID:        uuid.New().String(),
		SessionID: req.SessionID,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if err := database.CreateTerm(db, term); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create term"})
	}
	return c.Status(201).JSON(term)
}

func UpdateTermAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		Name      string            `json:"name"`
		StartDate models.CustomDate `json:"start_date"`
		EndDate   models.CustomDate `json:"end_date"`
		IsActive  *bool             `json:"is_active,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	term := &models.Term{
		ID:        c.Params("id"),
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsActive:  true,
	}
	if req.IsActive != nil {
		term.IsActive = *req.IsActive
	}
	if err := database.UpdateTerm(db, term); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update term"})
	}
	return c.JSON(term)
}

func SetCurrentTermAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.SetCurrentTerm(db, c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to set current term"})
	}
	return c.JSON(fiber.Map{"message": "Current term updated"})
}

func GetCurrentTermAPI(c *fiber.Ctx, db *sql.DB) error {
	term, err := database.GetCurrentTerm(db)
	if err == database.ErrNoCurrentTerm {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch current term"})
	}
	return c.JSON(term)
}
