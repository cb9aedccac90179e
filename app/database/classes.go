package database

import (
	"database/sql"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
)

func GetAllClasses(db *sql.DB) ([]*models.Class, error) {
	query := `
		SELECT c.id, c.name, c.code, c.form_teacher, c.is_active, c.created_at, c.updated_at,
			   COUNT(s.id) FILTER (WHERE s.deleted_at IS NULL AND s.status = 'active')
		FROM classes c
		LEFT JOIN students s ON s.class_id = c.id
		WHERE c.deleted_at IS NULL
		GROUP BY c.id
		ORDER BY c.name
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		c := &models.Class{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.FormTeacher, &c.IsActive,
			&c.CreatedAt, &c.UpdatedAt, &c.StudentCount); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

func GetClassByID(db *sql.DB, id string) (*models.Class, error) {
	c := &models.Class{}
	query := `SELECT id, name, code, form_teacher, is_active, created_at, updated_at
			  FROM classes WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, id).Scan(&c.ID, &c.Name, &c.Code, &c.FormTeacher,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func CreateClass(db *sql.DB, c *models.Class) error {
	query := `INSERT INTO classes (id, name, code, form_teacher) VALUES ($1, $2, $3, $4)`
	_, err := db.Exec(query, c.ID, c.Name, c.Code, c.FormTeacher)
	return err
}

func UpdateClass(db *sql.DB, c *models.Class) error {
	query := `UPDATE classes SET name = $2, code = $3, form_teacher = $4, is_active = $5,
			  updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, c.ID, c.Name, c.Code, c.FormTeacher, c.IsActive)
	return err
}

func DeleteClass(db *sql.DB, id string) error {
	query := `UPDATE classes SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, id)
	return err
}

func GetAllSubjects(db *sql.DB) ([]*models.Subject, error) {
	query := `SELECT id, name, code, is_active, created_at, updated_at
			  FROM subjects WHERE deleted_at IS NULL ORDER BY name`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		s := &models.Subject{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

func GetSubjectByID(db *sql.DB, id string) (*models.Subject, error) {
	s := &models.Subject{}
	query := `SELECT id, name, code, is_active, created_at, updated_at
			  FROM subjects WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, id).Scan(&s.ID, &s.Name, &s.Code, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func CreateSubject(db *sql.DB, s *models.Subject) error {
	query := `INSERT INTO subjects (id, name, code) VALUES ($1, $2, $3)`
	_, err := db.Exec(query, s.ID, s.Name, s.Code)
	return err
}

func UpdateSubject(db *sql.DB, s *models.Subject) error {
	query := `UPDATE subjects SET name = $2, code = $3, is_active = $4, updated_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, s.ID, s.Name, s.Code, s.IsActive)
	return err
}

func DeleteSubject(db *sql.DB, id string) error {
	query := `UPDATE subjects SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, id)
	return err
}

// GetSubjectsForClass returns the subjects assigned to a class.
func GetSubjectsForClass(db *sql.DB, classID string) ([]*models.Subject, error) {
	query := `
		SELECT s.id, s.name, s.code, s.is_active, s.created_at, s.updated_at
		FROM subjects s
		JOIN class_subjects cs ON cs.subject_id = s.id
		WHERE cs.class_id = $1 AND s.deleted_at IS NULL
		ORDER BY s.name
	`
	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		s := &models.Subject{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

// AssignSubjectToClass links a subject to a class, ignoring duplicates.
func AssignSubjectToClass(db *sql.DB, classID, subjectID string) error {
	query := `INSERT INTO class_subjects (class_id, subject_id) VALUES ($1, $2)
			  ON CONFLICT DO NOTHING`
	_, err := db.Exec(query, classID, subjectID)
	return err
}

func RemoveSubjectFromClass(db *sql.DB, classID, subjectID string) error {
	query := `DELETE FROM class_subjects WHERE class_id = $1 AND subject_id = $2`
	_, err := db.Exec(query, classID, subjectID)
	return err
}

// ClassTeachesSubject reports whether the subject is on the class's
// subject list. The token gate uses it when issuing tokens.
func ClassTeachesSubject(db *sql.DB, classID, subjectID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM class_subjects WHERE class_id = $1 AND subject_id = $2)`
	err := db.QueryRow(query, classID, subjectID).Scan(&exists)
	return exists, err
}
