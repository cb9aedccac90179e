package database

import (
	"database/sql"
	"errors"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
)

// ErrNoCurrentTerm is returned when no term is flagged current. The
// result checker and token generation cannot proceed without one.
var ErrNoCurrentTerm = errors.New("no active term configured")

func GetAllSessions(db *sql.DB) ([]*models.AcademicSession, error) {
	query := `SELECT id, name, start_date, end_date, is_current, is_active, created_at, updated_at
			  FROM academic_sessions WHERE deleted_at IS NULL ORDER BY start_date DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.AcademicSession
	for rows.Next() {
		s := &models.AcademicSession{}
		if err := rows.Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate,
			&s.IsCurrent, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func CreateSession(db *sql.DB, s *models.AcademicSession) error {
	query := `INSERT INTO academic_sessions (id, name, start_date, end_date, is_current)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := db.Exec(query, s.ID, s.Name, s.StartDate, s.EndDate, s.IsCurrent)
	return err
}

func UpdateSession(db *sql.DB, s *models.AcademicSession) error {
	query := `UPDATE academic_sessions SET name = $2, start_date = $3, end_date = $4,
			  is_active = $5, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, s.ID, s.Name, s.StartDate, s.EndDate, s.IsActive)
	return err
}

// SetCurrentSession flags one session current and clears the flag on
// all others in the same statement batch.
func SetCurrentSession(db *sql.DB, sessionID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE academic_sessions SET is_current = false WHERE is_current = true`); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE academic_sessions SET is_current = true, updated_at = NOW() WHERE id = $1`, sessionID); err != nil {
		return err
	}
	return tx.Commit()
}

func GetTermsBySession(db *sql.DB, sessionID string) ([]*models.Term, error) {
	query := `SELECT id, session_id, name, start_date, end_date, is_current, is_active, created_at, updated_at
			  FROM terms WHERE session_id = $1 AND deleted_at IS NULL ORDER BY start_date`
	rows, err := db.Query(query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []*models.Term
	for rows.Next() {
		t := &models.Term{}
		if err := rows.Scan(&t.ID, &t.SessionID, &t.Name, &t.StartDate, &t.EndDate,
			&t.IsCurrent, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

func GetTermByID(db *sql.DB, id string) (*models.Term, error) {
	t := &models.Term{}
	query := `SELECT id, session_id, name, start_date, end_date, is_current, is_active, created_at, updated_at
			  FROM terms WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, id).Scan(&t.ID, &t.SessionID, &t.Name, &t.StartDate, &t.EndDate,
		&t.IsCurrent, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetCurrentTerm returns the term flagged current, joined with its
// session name for result slips. Returns ErrNoCurrentTerm when none.
func GetCurrentTerm(db *sql.DB) (*models.Term, error) {
	t := &models.Term{Session: &models.AcademicSession{}}
	query := `
		SELECT t.id, t.session_id, t.name, t.start_date, t.end_date,
			   t.is_current, t.is_active, t.created_at, t.updated_at,
			   a.id, a.name
		FROM terms t
		JOIN academic_sessions a ON a.id = t.session_id
		WHERE t.is_current = true AND t.deleted_at IS NULL
	`
	err := db.QueryRow(query).Scan(&t.ID, &t.SessionID, &t.Name, &t.StartDate, &t.EndDate,
		&t.IsCurrent, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
		&t.Session.ID, &t.Session.Name)
	if err == sql.ErrNoRows {
		return nil, ErrNoCurrentTerm
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func CreateTerm(db *sql.DB, t *models.Term) error {
	query := `INSERT INTO terms (id, session_id, name, start_date, end_date, is_current)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := db.Exec(query, t.ID, t.SessionID, t.Name, t.StartDate, t.EndDate, t.IsCurrent)
	return err
}

func UpdateTerm(db *sql.DB, t *models.Term) error {
	query := `UPDATE terms SET name = $2, start_date = $3, end_date = $4, is_active = $5,
			  updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, t.ID, t.Name, t.StartDate, t.EndDate, t.IsActive)
	return err
}

// SetCurrentTerm flags one term current and clears all others.
func SetCurrentTerm(db *sql.DB, termID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE terms SET is_current = false WHERE is_current = true`); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE terms SET is_current = true, updated_at = NOW() WHERE id = $1`, termID); err != nil {
		return err
	}
	return tx.Commit()
}
