package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
)

// StudentFilters represents filtering options for students.
type StudentFilters struct {
	Search    string
	Status    string
	ClassID   string
	Gender    string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

const studentColumns = `s.id, s.admission_number, s.first_name, s.last_name, s.middle_name,
	s.gender, s.date_of_birth, s.class_id, s.guardian_name, s.guardian_phone,
	s.status, s.created_at, s.updated_at`

func scanStudent(scanner interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{}
	var dob sql.NullTime
	err := scanner.Scan(
		&s.ID, &s.AdmissionNumber, &s.FirstName, &s.LastName, &s.MiddleName,
		&s.Gender, &dob, &s.ClassID, &s.GuardianName, &s.GuardianPhone,
		&s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if dob.Valid {
		s.DateOfBirth = &models.CustomDate{Time: dob.Time}
	}
	return s, nil
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students s WHERE s.id = $1 AND s.deleted_at IS NULL`
	return scanStudent(db.QueryRow(query, id))
}

func GetStudentByAdmissionNumber(db *sql.DB, admissionNumber string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students s
			  WHERE s.admission_number = $1 AND s.deleted_at IS NULL`
	return scanStudent(db.QueryRow(query, admissionNumber))
}

// GetStudentsWithFilters returns students matching the filters plus the
// total count before pagination.
func GetStudentsWithFilters(db *sql.DB, filters StudentFilters) ([]*models.Student, int, error) {
	var conditions []string
	var args []interface{}

	conditions = append(conditions, "s.deleted_at IS NULL")

	if filters.Search != "" {
		args = append(args, "%"+strings.ToLower(filters.Search)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(LOWER(s.first_name) LIKE $%d OR LOWER(s.last_name) LIKE $%d OR LOWER(s.admission_number) LIKE $%d)",
			n, n, n))
	}
	if filters.Status != "" {
		args = append(args, filters.Status)
		conditions = append(conditions, fmt.Sprintf("s.status = $%d", len(args)))
	}
	if filters.ClassID != "" {
		args = append(args, filters.ClassID)
		conditions = append(conditions, fmt.Sprintf("s.class_id = $%d", len(args)))
	}
	if filters.Gender != "" {
		args = append(args, filters.Gender)
		conditions = append(conditions, fmt.Sprintf("s.gender = $%d", len(args)))
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM students s " + where
	if err := db.QueryRow(countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	sortBy := "s.admission_number"
	switch filters.SortBy {
	case "first_name", "last_name", "admission_number", "created_at":
		sortBy = "s." + filters.SortBy
	}
	sortOrder := "ASC"
	if strings.EqualFold(filters.SortOrder, "desc") {
		sortOrder = "DESC"
	}

	query := fmt.Sprintf("SELECT %s FROM students s %s ORDER BY %s %s",
		studentColumns, where, sortBy, sortOrder)
	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filters.Limit, filters.Offset)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	return students, totalCount, rows.Err()
}

// GetStudentsByClass returns active students in a class ordered by
// admission number, the order teachers enter scores in.
func GetStudentsByClass(db *sql.DB, classID string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students s
			  WHERE s.class_id = $1 AND s.status = 'active' AND s.deleted_at IS NULL
			  ORDER BY s.admission_number`
	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (id, admission_number, first_name, last_name, middle_name,
			  gender, date_of_birth, class_id, guardian_name, guardian_phone, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	var dob interface{}
	if s.DateOfBirth != nil {
		dob = s.DateOfBirth.Time
	}
	_, err := db.Exec(query, s.ID, s.AdmissionNumber, s.FirstName, s.LastName, s.MiddleName,
		s.Gender, dob, s.ClassID, s.GuardianName, s.GuardianPhone, s.Status)
	return err
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students SET admission_number = $2, first_name = $3, last_name = $4,
			  middle_name = $5, gender = $6, date_of_birth = $7, class_id = $8,
			  guardian_name = $9, guardian_phone = $10, status = $11, updated_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL`
	var dob interface{}
	if s.DateOfBirth != nil {
		dob = s.DateOfBirth.Time
	}
	_, err := db.Exec(query, s.ID, s.AdmissionNumber, s.FirstName, s.LastName, s.MiddleName,
		s.Gender, dob, s.ClassID, s.GuardianName, s.GuardianPhone, s.Status)
	return err
}

func DeleteStudent(db *sql.DB, id string) error {
	query := `UPDATE students SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := db.Exec(query, id)
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
