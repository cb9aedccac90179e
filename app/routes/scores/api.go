package scores

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/database"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
)

// RedeemTokenAPI checks a teacher token against its entry context and,
// when the token is live, hands back an entry ticket plus the class
// roster. The token itself is only consumed after a successful
// submission, so an abandoned entry session leaves it usable.
func RedeemTokenAPI(c *fiber.Ctx, db *sql.DB) error {
	type RedeemRequest struct {
		Code      string `json:"code" validate:"required,alphanum,min=8,max=12"`
		ClassID   string `json:"class_id" validate:"required,uuid"`
		SubjectID string `json:"subject_id" validate:"required,uuid"`
	}

	var req RedeemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "code, class_id and subject_id are required"})
	}

	token, err := database.GetTokenForEntry(db, req.Code, req.ClassID, req.SubjectID)
	if err == sql.ErrNoRows {
		return c.Status(403).JSON(fiber.Map{"error": string(models.TokenInvalid)})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to look up token"})
	}

	if denial := token.EvaluateAt(time.Now()); denial != models.TokenOK {
		return c.Status(403).JSON(fiber.Map{"error": string(denial)})
	}

	ticket, err := IssueEntryTicket(token.ID, token.ClassID, token.SubjectID, token.TermID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to issue entry ticket"})
	}

	students, err := database.GetStudentsByClass(db, token.ClassID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load class roster"})
	}

	class, err := database.GetClassByID(db, token.ClassID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load class"})
	}
	subject, err := database.GetSubjectByID(db, token.SubjectID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load subject"})
	}

	return c.JSON(fiber.Map{
		"ticket":   ticket,
		"class":    class,
		"subject":  subject,
		"term_id":  token.TermID,
		"students": students,
	})
}

// SubmitScoresAPI persists a batch of scores. The caller presents both
// the entry ticket from redemption and the raw token; the ticket binds
// the submission to the redeemed context, the token stays the source
// of truth. Valid rows are saved even when other rows fail; the token
// flips to used only after the save commits.
func SubmitScoresAPI(c *fiber.Ctx, db *sql.DB) error {
	type SubmitRequest struct {
		Ticket    string       `json:"ticket" validate:"required"`
		Token     string       `json:"token" validate:"required"`
		TermID    string       `json:"term_id" validate:"required,uuid"`
		ClassID   string       `json:"class_id" validate:"required,uuid"`
		SubjectID string       `json:"subject_id" validate:"required,uuid"`
		Scores    []ScoreInput `json:"scores"`
	}

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ticket, token, term_id, class_id and subject_id are required"})
	}
	if len(req.Scores) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "score batch is empty"})
	}
	if len(req.Scores) > MaxBatchSize {
		return c.Status(400).JSON(fiber.Map{
			"error": fmt.Sprintf("score batch exceeds %d entries", MaxBatchSize),
		})
	}

	claims, err := ParseEntryTicket(req.Ticket)
	if err != nil {
		return c.Status(403).JSON(fiber.Map{"error": "entry ticket is invalid or expired"})
	}
	if claims.ClassID != req.ClassID || claims.SubjectID != req.SubjectID || claims.TermID != req.TermID {
		return c.Status(403).JSON(fiber.Map{"error": "entry ticket does not match this submission"})
	}

	token, err := database.GetTokenForEntry(db, req.Token, req.ClassID, req.SubjectID)
	if err == sql.ErrNoRows {
		return c.Status(403).JSON(fiber.Map{"error": string(models.TokenInvalid)})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to look up token"})
	}
	if denial := token.EvaluateAt(time.Now()); denial != models.TokenOK {
		return c.Status(403).JSON(fiber.Map{"error": string(denial)})
	}
	if token.TermID != req.TermID {
		return c.Status(403).JSON(fiber.Map{"error": "token was not issued for this term"})
	}

	roster, err := studentIDsInClass(db, token.ClassID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load class roster"})
	}

	var valid []ScoreInput
	var rowErrs []string
	for i, row := range req.Scores {
		sanitized, errs := ValidateRow(row)
		if len(errs) == 0 && !roster[sanitized.StudentID] {
			errs = append(errs, "student is not in this class")
		}
		if len(errs) > 0 {
			for _, e := range errs {
				rowErrs = append(rowErrs, fmt.Sprintf("row %d: %s", i+1, e))
			}
			continue
		}
		valid = append(valid, sanitized)
	}

	var saved []*models.Score
	if len(valid) > 0 {
		saved, err = BatchSaveScores(db, token.ClassID, token.SubjectID, token.TermID, valid)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{
				"error":   "Failed to save scores",
				"details": err.Error(),
			})
		}

		// The guarded action completed, consume the token. A false
		// return means a concurrent submission beat us to the flip.
		consumed, err := database.ConsumeToken(db, token.ID)
		if err != nil {
			log.Printf("Failed to mark token %s as used: %v", token.ID, err)
		} else if !consumed {
			log.Printf("Token %s was already consumed by a concurrent submission", token.ID)
		}
	}

	return c.JSON(fiber.Map{
		"saved":    len(saved),
		"rejected": len(req.Scores) - len(valid),
		"errors":   SampleErrors(rowErrs),
	})
}
