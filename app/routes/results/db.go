package results

import (
	"database/sql"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
)

// GetTermScoresForStudent returns every score a student has for a
// term, with subject names for the result slip, ordered by subject.
func GetTermScoresForStudent(db *sql.DB, studentID, termID string) ([]*models.Score, error) {
	query := `
		SELECT sc.id, sc.student_id, sc.subject_id, sc.term_id, sc.class_id,
			   sc.ca1, sc.ca2, sc.exam, sc.total, sc.grade, sc.teacher_comment,
			   sc.created_at, sc.updated_at,
			   su.id, su.name, su.code
		FROM scores sc
		JOIN subjects su ON su.id = sc.subject_id
		WHERE sc.student_id = $1 AND sc.term_id = $2
		ORDER BY su.name
	`
	rows, err := db.Query(query, studentID, termID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []*models.Score
	for rows.Next() {
		sc := &models.Score{Subject: &models.Subject{}}
		if err := rows.Scan(&sc.ID, &sc.StudentID, &sc.SubjectID, &sc.TermID, &sc.ClassID,
			&sc.CA1, &sc.CA2, &sc.Exam, &sc.Total, &sc.Grade, &sc.TeacherComment,
			&sc.CreatedAt, &sc.UpdatedAt,
			&sc.Subject.ID, &sc.Subject.Name, &sc.Subject.Code); err != nil {
			return nil, err
		}
		scores = append(scores, sc)
	}
	return scores, rows.Err()
}
