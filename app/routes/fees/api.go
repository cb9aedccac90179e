package fees

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
)

var validate = validator.New()

func GetFeeTypesAPI(c *fiber.Ctx, db *sql.DB) error {
	types, err := getAllFeeTypes(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee types"})
	}
	return c.JSON(fiber.Map{"fee_types": types, "count": len(types)})
}

func CreateFeeTypeAPI(c *fiber.Ctx, db *sql.DB) error {
	type FeeTypeRequest struct {
		Name             string  `json:"name" validate:"required"`
		Code             string  `json:"code" validate:"required"`
		Description      *string `json:"description,omitempty"`
		Amount           float64 `json:"amount" validate:"gte=0"`
		PaymentFrequency string  `json:"payment_frequency" validate:"required,oneof=once per_term per_session on_demand"`
	}

	var req FeeTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid fee type fields", "details": err.Error()})
	}

	feeType := &models.FeeType{
		ID:               uuid.New().String(),
		Name:             req.Name,
		Code:             req.Code,
		Description:      req.Description,
		Amount:           req.Amount,
		PaymentFrequency: req.PaymentFrequency,
		IsActive:         true,
	}
	if err := createFeeType(db, feeType); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return c.Status(409).JSON(fiber.Map{"error": "Fee type name or code already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create fee type"})
	}
	return c.Status(201).JSON(feeType)
}

func UpdateFeeTypeAPI(c *fiber.Ctx, db *sql.DB) error {
	feeType, err := getFeeTypeByID(db, c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Fee type not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee type"})
	}

	var req struct {
		Name             string   `json:"name"`
		Code             string   `json:"code"`
		Description      *string  `json:"description,omitempty"`
		Amount           *float64 `json:"amount,omitempty"`
		PaymentFrequency string   `json:"payment_frequency"`
		IsActive         *bool    `json:"is_active,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name != "" {
		feeType.Name = req.Name
	}
	if req.Code != "" {
		feeType.Code = req.Code
	}
	if req.Description != nil {
		feeType.Description = req.Description
	}
	if req.Amount != nil {
		feeType.Amount = *req.Amount
	}
	if req.PaymentFrequency != "" {
		feeType.PaymentFrequency = req.PaymentFrequency
	}
	if req.IsActive != nil {
		feeType.IsActive = *req.IsActive
	}

	if err := updateFeeType(db, feeType); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update fee type"})
	}
	return c.JSON(feeType)
}

// AssignFeeAPI charges a student a fee for a term.
func AssignFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	type AssignRequest struct {
		StudentID string            `json:"student_id" validate:"required,uuid"`
		FeeTypeID string            `json:"fee_type_id" validate:"required,uuid"`
		TermID    *string           `json:"term_id,omitempty" validate:"omitempty,uuid"`
		Amount    *float64          `json:"amount,omitempty" validate:"omitempty,gt=0"`
		DueDate   models.CustomDate `json:"due_date" validate:"required"`
	}

	var req AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid fee fields", "details": err.Error()})
	}

	feeType, err := getFeeTypeByID(db, req.FeeTypeID)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Fee type not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee type"})
	}

	amount := feeType.Amount
	if req.Amount != nil {
		amount = *req.Amount
	}

	fee := &models.StudentFee{
		ID:        uuid.New().String(),
		StudentID: req.StudentID,
		FeeTypeID: req.FeeTypeID,
		TermID:    req.TermID,
		Title:     feeType.Name,
		Amount:    amount,
		Balance:   amount,
		DueDate:   req.DueDate,
	}
	if err := createStudentFee(db, fee); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to assign fee"})
	}
	return c.Status(201).JSON(fee)
}

func GetStudentFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	fees, err := getStudentFees(db, c.Params("studentId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student fees"})
	}
	return c.JSON(fiber.Map{"fees": fees, "count": len(fees)})
}

// RecordPaymentAPI records a payment against a student fee.
func RecordPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	type PaymentRequest struct {
		StudentFeeID string  `json:"student_fee_id" validate:"required,uuid"`
		Amount       float64 `json:"amount" validate:"required,gt=0"`
		Method       string  `json:"method" validate:"required,oneof=cash transfer pos"`
		Reference    *string `json:"reference,omitempty"`
	}

	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payment fields", "details": err.Error()})
	}

	userID, _ := c.Locals("user_id").(string)
	payment := &models.FeePayment{
		ID:           uuid.New().String(),
		StudentFeeID: req.StudentFeeID,
		Amount:       req.Amount,
		Method:       models.PaymentMethod(req.Method),
		Reference:    req.Reference,
	}
	if userID != "" {
		payment.ReceivedBy = &userID
	}

	if err := recordPayment(db, payment); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student fee not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(payment)
}
