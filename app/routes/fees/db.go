package fees

import (
	"database/sql"
	"fmt"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
)

func getAllFeeTypes(db *sql.DB) ([]*models.FeeType, error) {
	query := `SELECT id, name, code, description, amount, payment_frequency, is_active, created_at, updated_at
			  FROM fee_types WHERE deleted_at IS NULL ORDER BY name`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*models.FeeType
	for rows.Next() {
		t := &models.FeeType{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Code, &t.Description, &t.Amount,
			&t.PaymentFrequency, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func getFeeTypeByID(db *sql.DB, id string) (*models.FeeType, error) {
	t := &models.FeeType{}
	query := `SELECT id, name, code, description, amount, payment_frequency, is_active, created_at, updated_at
			  FROM fee_types WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, id).Scan(&t.ID, &t.Name, &t.Code, &t.Description, &t.Amount,
		&t.PaymentFrequency, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func createFeeType(db *sql.DB, t *models.FeeType) error {
	query := `INSERT INTO fee_types (id, name, code, description, amount, payment_frequency)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := db.Exec(query, t.ID, t.Name, t.Code, t.Description, t.Amount, t.PaymentFrequency)
	return err
}

func updateFeeType(db *sql.DB, t *models.FeeType) error {
	query := `UPDATE fee_types SET name = $2, code = $3, description = $4, amount = $5,
			  payment_frequency = $6, is_active = $7, updated_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, t.ID, t.Name, t.Code, t.Description, t.Amount, t.PaymentFrequency, t.IsActive)
	return err
}

func createStudentFee(db *sql.DB, f *models.StudentFee) error {
	query := `INSERT INTO student_fees (id, student_id, fee_type_id, term_id, title, amount, balance, due_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $6, $7)`
	_, err := db.Exec(query, f.ID, f.StudentID, f.FeeTypeID, f.TermID, f.Title, f.Amount, f.DueDate)
	return err
}

func getStudentFees(db *sql.DB, studentID string) ([]*models.StudentFee, error) {
	query := `
		SELECT f.id, f.student_id, f.fee_type_id, f.term_id, f.title, f.amount, f.balance,
			   f.paid, f.due_date, f.paid_at, f.created_at, f.updated_at,
			   ft.id, ft.name, ft.code
		FROM student_fees f
		JOIN fee_types ft ON ft.id = f.fee_type_id
		WHERE f.student_id = $1 AND f.deleted_at IS NULL
		ORDER BY f.due_date
	`
	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.StudentFee
	for rows.Next() {
		f := &models.StudentFee{FeeType: &models.FeeType{}}
		if err := rows.Scan(&f.ID, &f.StudentID, &f.FeeTypeID, &f.TermID, &f.Title, &f.Amount,
			&f.Balance, &f.Paid, &f.DueDate, &f.PaidAt, &f.CreatedAt, &f.UpdatedAt,
			&f.FeeType.ID, &f.FeeType.Name, &f.FeeType.Code); err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}

// recordPayment inserts the payment and updates the fee balance in one
// transaction. The balance update is conditional so a payment can
// never drive the balance negative concurrently.
func recordPayment(db *sql.DB, p *models.FeePayment) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var balance float64
	err = tx.QueryRow(
		`SELECT balance FROM student_fees WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`,
		p.StudentFeeID).Scan(&balance)
	if err != nil {
		return err
	}
	if p.Amount > balance {
		return fmt.Errorf("payment of %.2f exceeds outstanding balance of %.2f", p.Amount, balance)
	}

	_, err = tx.Exec(
		`INSERT INTO fee_payments (id, student_fee_id, amount, method, reference, received_by)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.StudentFeeID, p.Amount, p.Method, p.Reference, p.ReceivedBy)
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		`UPDATE student_fees
		 SET balance = balance - $2,
			 paid = (balance - $2 <= 0),
			 paid_at = CASE WHEN balance - $2 <= 0 THEN NOW() ELSE paid_at END,
			 updated_at = NOW()
		 WHERE id = $1`,
		p.StudentFeeID, p.Amount)
	if err != nil {
		return err
	}

	return tx.Commit()
}
