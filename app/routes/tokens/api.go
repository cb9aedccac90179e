package tokens

import (
	"database/sql"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/database"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
)

var validate = validator.New()

// GenerateTokensAPI creates one teacher token per requested subject
// for a class and term. Each token is single-use and scoped to its
// (class, subject, term) triple.
func GenerateTokensAPI(c *fiber.Ctx, db *sql.DB) error {
	type GenerateRequest struct {
		ClassID    string     `json:"class_id" validate:"required,uuid"`
		SubjectIDs []string   `json:"subject_ids" validate:"required,min=1,dive,uuid"`
		TermID     string     `json:"term_id,omitempty" validate:"omitempty,uuid"`
		ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	}

	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "class_id and subject_ids are required"})
	}

	termID := req.TermID
	if termID == "" {
		term, err := database.GetCurrentTerm(db)
		if err == database.ErrNoCurrentTerm {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve current term"})
		}
		termID = term.ID
	}

	created := make([]*models.TeacherToken, 0, len(req.SubjectIDs))
	for _, subjectID := range req.SubjectIDs {
		taught, err := database.ClassTeachesSubject(db, req.ClassID, subjectID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to check class subjects"})
		}
		if !taught {
			return c.Status(400).JSON(fiber.Map{"error": "Subject is not assigned to this class"})
		}

		token := &models.TeacherToken{
			ID:        uuid.New().String(),
			Code:      GenerateTokenCode(),
			ClassID:   req.ClassID,
			SubjectID: subjectID,
			TermID:    termID,
			ExpiresAt: req.ExpiresAt,
		}

		err = database.CreateTeacherToken(db, token)
		// Retry once on a global code collision.
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			token.Code = GenerateTokenCode()
			err = database.CreateTeacherToken(db, token)
		}
		if err != nil {
			log.Printf("Failed to create token for subject %s: %v", subjectID, err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create tokens"})
		}
		created = append(created, token)
	}

	return c.Status(201).JSON(fiber.Map{
		"tokens": created,
		"count":  len(created),
	})
}

// ListTokensAPI returns tokens for a term (default: current term).
func ListTokensAPI(c *fiber.Ctx, db *sql.DB) error {
	termID := c.Query("term_id")
	if termID == "" {
		term, err := database.GetCurrentTerm(db)
		if err == database.ErrNoCurrentTerm {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve current term"})
		}
		termID = term.ID
	}

	tokens, err := database.ListTeacherTokens(db, termID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tokens"})
	}

	return c.JSON(fiber.Map{
		"tokens": tokens,
		"count":  len(tokens),
	})
}

// RevokeTokenAPI deletes an unused token; consumed tokens are kept for
// the audit trail.
func RevokeTokenAPI(c *fiber.Ctx, db *sql.DB) error {
	tokenID := c.Params("id")
	if _, err := uuid.Parse(tokenID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid token id"})
	}

	err := database.RevokeTeacherToken(db, tokenID)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Token not found or already used"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to revoke token"})
	}

	return c.JSON(fiber.Map{"message": "Token revoked"})
}
