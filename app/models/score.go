package models

import "time"

// Score stores a student's marks for a subject in a term. CA1/CA2 are
// capped at 20 each, the exam at 60; total and grade are derived at
// write time and never edited directly.
type Score struct {
	ID             string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID      string      `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SubjectID      string      `json:"subject_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TermID         string      `json:"term_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ClassID        string      `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CA1            *float64    `json:"ca1,omitempty" gorm:"type:decimal(5,2)" validate:"omitempty,gte=0,lte=20"`
	CA2            *float64    `json:"ca2,omitempty" gorm:"type:decimal(5,2)" validate:"omitempty,gte=0,lte=20"`
	Exam           *float64    `json:"exam,omitempty" gorm:"type:decimal(5,2)" validate:"omitempty,gte=0,lte=60"`
	Total          float64     `json:"total" gorm:"not null;type:decimal(5,2)"`
	Grade          LetterGrade `json:"grade" gorm:"not null;type:varchar(1)"`
	TeacherComment *string     `json:"teacher_comment,omitempty" gorm:"type:varchar(500)"`
	CreatedAt      time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	Student        *Student    `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Subject        *Subject    `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
	Term           *Term       `json:"term,omitempty" gorm:"foreignKey:TermID;references:ID"`
}
