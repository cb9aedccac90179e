package models

import "time"

type Subject struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name      string     `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Code      string     `json:"code" gorm:"uniqueIndex;not null" validate:"required"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Classes   []*Class   `json:"classes,omitempty" gorm:"many2many:class_subjects;"`
}

// ClassSubject links a subject to a class it is taught in.
type ClassSubject struct {
	ClassID   string `json:"class_id" gorm:"primaryKey;type:uuid"`
	SubjectID string `json:"subject_id" gorm:"primaryKey;type:uuid"`
}
