package scores

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
)

// BatchSaveScores persists validated score rows for one class/subject/
// term in a single transaction. Rows upsert on the (student, subject,
// term) uniqueness, so re-submitting corrects earlier entries.
func BatchSaveScores(db *sql.DB, classID, subjectID, termID string, rows []ScoreInput) ([]*models.Score, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO scores (id, student_id, subject_id, term_id, class_id,
							ca1, ca2, exam, total, grade, teacher_comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (student_id, subject_id, term_id) DO UPDATE
		SET ca1 = EXCLUDED.ca1,
			ca2 = EXCLUDED.ca2,
			exam = EXCLUDED.exam,
			total = EXCLUDED.total,
			grade = EXCLUDED.grade,
			teacher_comment = EXCLUDED.teacher_comment,
			class_id = EXCLUDED.class_id,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare upsert statement: %w", err)
	}
	defer stmt.Close()

	saved := make([]*models.Score, 0, len(rows))
	for _, row := range rows {
		total := ComputeTotal(row.CA1, row.CA2, row.Exam)
		score := &models.Score{
			StudentID:      row.StudentID,
			SubjectID:      subjectID,
			TermID:         termID,
			ClassID:        classID,
			CA1:            row.CA1,
			CA2:            row.CA2,
			Exam:           row.Exam,
			Total:          total,
			Grade:          ComputeGrade(total),
			TeacherComment: row.TeacherComment,
		}
		err = stmt.QueryRow(
			uuid.New().String(), score.StudentID, score.SubjectID, score.TermID, score.ClassID,
			score.CA1, score.CA2, score.Exam, score.Total, score.Grade, score.TeacherComment,
		).Scan(&score.ID, &score.CreatedAt, &score.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to save score for student %s: %w", score.StudentID, err)
		}
		saved = append(saved, score)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit scores: %w", err)
	}
	return saved, nil
}

// studentIDsInClass returns the set of active student ids in a class,
// used to reject rows naming students outside the token's class.
func studentIDsInClass(db *sql.DB, classID string) (map[string]bool, error) {
	rows, err := db.Query(
		`SELECT id FROM students WHERE class_id = $1 AND status = 'active' AND deleted_at IS NULL`,
		classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = true
	}
	return ids, rows.Err()
}
