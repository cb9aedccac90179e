package database

import (
	"database/sql"
	"time"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
)

// GetTokenForEntry looks a token up by its (code, class, subject)
// triple. sql.ErrNoRows means the token is invalid for that entry
// context, whether or not the code exists elsewhere.
func GetTokenForEntry(db *sql.DB, code, classID, subjectID string) (*models.TeacherToken, error) {
	t := &models.TeacherToken{}
	query := `SELECT id, code, class_id, subject_id, term_id, is_used, used_at, expires_at, created_at, updated_at
			  FROM teacher_tokens
			  WHERE code = $1 AND class_id = $2 AND subject_id = $3`
	err := db.QueryRow(query, code, classID, subjectID).Scan(
		&t.ID, &t.Code, &t.ClassID, &t.SubjectID, &t.TermID,
		&t.IsUsed, &t.UsedAt, &t.ExpiresAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ConsumeToken flips is_used exactly once. The conditional form makes
// the flip a no-op when another submission already consumed the token;
// the caller learns that through the false return.
func ConsumeToken(db *sql.DB, tokenID string) (bool, error) {
	query := `UPDATE teacher_tokens SET is_used = true, used_at = NOW(), updated_at = NOW()
			  WHERE id = $1 AND is_used = false`
	result, err := db.Exec(query, tokenID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func CreateTeacherToken(db *sql.DB, t *models.TeacherToken) error {
	query := `INSERT INTO teacher_tokens (id, code, class_id, subject_id, term_id, expires_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := db.Exec(query, t.ID, t.Code, t.ClassID, t.SubjectID, t.TermID, t.ExpiresAt)
	return err
}

// ListTeacherTokens returns tokens for a term, newest first, with the
// class and subject names the back-office table shows.
func ListTeacherTokens(db *sql.DB, termID string) ([]*models.TeacherToken, error) {
	query := `
		SELECT t.id, t.code, t.class_id, t.subject_id, t.term_id, t.is_used, t.used_at,
			   t.expires_at, t.created_at, t.updated_at,
			   c.id, c.name, s.id, s.name
		FROM teacher_tokens t
		JOIN classes c ON c.id = t.class_id
		JOIN subjects s ON s.id = t.subject_id
		WHERE t.term_id = $1
		ORDER BY t.created_at DESC
	`
	rows, err := db.Query(query, termID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []*models.TeacherToken
	for rows.Next() {
		t := &models.TeacherToken{Class: &models.Class{}, Subject: &models.Subject{}}
		if err := rows.Scan(&t.ID, &t.Code, &t.ClassID, &t.SubjectID, &t.TermID,
			&t.IsUsed, &t.UsedAt, &t.ExpiresAt, &t.CreatedAt, &t.UpdatedAt,
			&t.Class.ID, &t.Class.Name, &t.Subject.ID, &t.Subject.Name); err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

// RevokeTeacherToken deletes an unused token. Used tokens stay for the
// audit trail.
func RevokeTeacherToken(db *sql.DB, tokenID string) error {
	query := `DELETE FROM teacher_tokens WHERE id = $1 AND is_used = false`
	result, err := db.Exec(query, tokenID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetPinForLookup resolves a PIN by the three-way match on admission
// number, code and term. sql.ErrNoRows covers every mismatch so the
// caller cannot tell which part was wrong.
func GetPinForLookup(db *sql.DB, admissionNumber, code, termID string) (*models.ResultPin, error) {
	p := &models.ResultPin{Student: &models.Student{}}
	query := `
		SELECT p.id, p.code, p.student_id, p.term_id, p.usage_count, p.max_uses,
			   p.expires_at, p.created_at, p.updated_at,
			   st.id, st.admission_number, st.first_name, st.last_name, st.middle_name, st.class_id
		FROM result_pins p
		JOIN students st ON st.id = p.student_id
		WHERE st.admission_number = $1 AND p.code = $2 AND p.term_id = $3
		  AND st.deleted_at IS NULL
	`
	err := db.QueryRow(query, admissionNumber, code, termID).Scan(
		&p.ID, &p.Code, &p.StudentID, &p.TermID, &p.UsageCount, &p.MaxUses,
		&p.ExpiresAt, &p.CreatedAt, &p.UpdatedAt,
		&p.Student.ID, &p.Student.AdmissionNumber, &p.Student.FirstName,
		&p.Student.LastName, &p.Student.MiddleName, &p.Student.ClassID,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// IncrementPinUsage bumps usage_count by one, guarded against going
// past max_uses. Returns the new count, or ok=false when the PIN was
// already exhausted (including a lost race on the last use).
func IncrementPinUsage(db *sql.DB, pinID string) (int, bool, error) {
	var count int
	query := `UPDATE result_pins SET usage_count = usage_count + 1, updated_at = NOW()
			  WHERE id = $1 AND usage_count < max_uses
			  RETURNING usage_count`
	err := db.QueryRow(query, pinID).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return count, true, nil
}

func CreateResultPin(db *sql.DB, p *models.ResultPin) error {
	query := `INSERT INTO result_pins (id, code, student_id, term_id, usage_count, max_uses, expires_at)
			  VALUES ($1, $2, $3, $4, 0, $5, $6)`
	_, err := db.Exec(query, p.ID, p.Code, p.StudentID, p.TermID, p.MaxUses, p.ExpiresAt)
	return err
}

// ListResultPins returns PINs for a term with student identity for the
// back-office table.
func ListResultPins(db *sql.DB, termID string) ([]*models.ResultPin, error) {
	query := `
		SELECT p.id, p.code, p.student_id, p.term_id, p.usage_count, p.max_uses,
			   p.expires_at, p.created_at, p.updated_at,
			   st.id, st.admission_number, st.first_name, st.last_name
		FROM result_pins p
		JOIN students st ON st.id = p.student_id
		WHERE p.term_id = $1
		ORDER BY st.admission_number
	`
	rows, err := db.Query(query, termID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pins []*models.ResultPin
	for rows.Next() {
		p := &models.ResultPin{Student: &models.Student{}}
		if err := rows.Scan(&p.ID, &p.Code, &p.StudentID, &p.TermID, &p.UsageCount, &p.MaxUses,
			&p.ExpiresAt, &p.CreatedAt, &p.UpdatedAt,
			&p.Student.ID, &p.Student.AdmissionNumber, &p.Student.FirstName, &p.Student.LastName); err != nil {
			return nil, err
		}
		pins = append(pins, p)
	}
	return pins, rows.Err()
}

// CountStaleCredentials reports expired unused tokens and inert PINs
// for the nightly housekeeping log.
func CountStaleCredentials(db *sql.DB, now time.Time) (staleTokens, inertPins int, err error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM teacher_tokens WHERE is_used = false
				AND expires_at IS NOT NULL AND expires_at < $1),
			(SELECT COUNT(*) FROM result_pins WHERE usage_count >= max_uses
				OR (expires_at IS NOT NULL AND expires_at < $1))
	`
	err = db.QueryRow(query, now).Scan(&staleTokens, &inertPins)
	return staleTokens, inertPins, err
}
