package results

import (
	"crypto/rand"
	"database/sql"
	"log"
	"math/big"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

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

// CheckResultAPI is the public PIN-gated result lookup. The active
// term is resolved server-side; the caller supplies only the admission
// number and PIN. A successful lookup burns one use of the PIN.
func CheckResultAPI(c *fiber.Ctx, db *sql.DB) error {
	type CheckRequest struct {
		AdmissionNumber string `json:"admission_number" validate:"required,admission"`
		Pin             string `json:"pin" validate:"required,min=4,max=12"`
	}

	var req CheckRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		// A malformed admission number is indistinguishable from a
		// wrong one; reporting it as a format error would leak which
		// half of the pair failed.
		return c.Status(403).JSON(fiber.Map{"error": string(models.PinInvalid)})
	}

	term, err := database.GetCurrentTerm(db)
	if err == database.ErrNoCurrentTerm {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve current term"})
	}

	pin, err := database.GetPinForLookup(db, req.AdmissionNumber, req.Pin, term.ID)
	if err == sql.ErrNoRows {
		return c.Status(403).JSON(fiber.Map{"error": string(models.PinInvalid)})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to look up PIN"})
	}

	if denial := pin.EvaluateAt(time.Now()); denial != models.PinOK {
		return c.Status(403).JSON(fiber.Map{"error": string(denial)})
	}

	// Burn one use. ok=false means a concurrent lookup took the last
	// remaining view between our read and this update.
	count, ok, err := database.IncrementPinUsage(db, pin.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record PIN usage"})
	}
	if !ok {
		return c.Status(403).JSON(fiber.Map{"error": string(models.PinExhausted)})
	}
	pin.UsageCount = count

	scores, err := GetTermScoresForStudent(db, pin.StudentID, term.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load scores"})
	}

	return c.JSON(fiber.Map{
		"student": fiber.Map{
			"admission_number": pin.Student.AdmissionNumber,
			"name":             pin.Student.FullName(),
			"class_id":         pin.Student.ClassID,
		},
		"term": fiber.Map{
			"id":      term.ID,
			"name":    term.Name,
			"session": term.Session.Name,
		},
		"scores": scores,
		"usage":  pin.Envelope(),
	})
}

// GeneratePinsAPI creates result PINs for one student or a whole
// class for a term. Admin only.
func GeneratePinsAPI(c *fiber.Ctx, db *sql.DB) error {
	type GenerateRequest struct {
		StudentID string     `json:"student_id,omitempty" validate:"omitempty,uuid"`
		ClassID   string     `json:"class_id,omitempty" validate:"omitempty,uuid"`
		TermID    string     `json:"term_id,omitempty" validate:"omitempty,uuid"`
		MaxUses   int        `json:"max_uses,omitempty" validate:"omitempty,gt=0"`
		ExpiresAt *time.Time `json:"expires_at,omitempty"`
	}

	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid field values"})
	}
	if (req.StudentID == "") == (req.ClassID == "") {
		return c.Status(400).JSON(fiber.Map{"error": "Provide exactly one of student_id or class_id"})
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

	maxUses := req.MaxUses
	if maxUses == 0 {
		maxUses = config.AppConfig.DefaultPinMaxUses
	}

	var studentIDs []string
	if req.StudentID != "" {
		studentIDs = []string{req.StudentID}
	} else {
		students, err := database.GetStudentsByClass(db, req.ClassID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load class roster"})
		}
		for _, s := range students {
			studentIDs = append(studentIDs, s.ID)
		}
	}

	pins := make([]*models.ResultPin, 0, len(studentIDs))
	for _, studentID := range studentIDs {
		pin := &models.ResultPin{
			ID:        uuid.New().String(),
			Code:      generatePinCode(),
			StudentID: studentID,
			TermID:    termID,
			MaxUses:   maxUses,
			ExpiresAt: req.ExpiresAt,
		}
		if err := database.CreateResultPin(db, pin); err != nil {
			log.Printf("Failed to create PIN for student %s: %v", studentID, err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create PINs"})
		}
		pins = append(pins, pin)
	}

	return c.Status(201).JSON(fiber.Map{
		"pins":  pins,
		"count": len(pins),
	})
}

// ListPinsAPI returns PINs for a term (default: current term).
func ListPinsAPI(c *fiber.Ctx, db *sql.DB) error {
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

	pins, err := database.ListResultPins(db, termID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch PINs"})
	}

	return c.JSON(fiber.Map{
		"pins":  pins,
		"count": len(pins),
	})
}

const pinDigits = "0123456789"

// generatePinCode returns a 6-digit numeric PIN. Uniqueness is scoped
// to (student, term, code) by the database, so collisions across
// students are harmless.
func generatePinCode() string {
	code := make([]byte, 6)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(pinDigits))))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is
			// broken; there is no useful recovery here.
			panic(err)
		}
		code[i] = pinDigits[n.Int64()]
	}
	return string(code)
}
