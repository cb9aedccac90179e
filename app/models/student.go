package models

import "time"

// Student is enrolled in a class and identified publicly by an
// admission number like HMA/2025/010.
type Student struct {
	ID              string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	AdmissionNumber string        `json:"admission_number" gorm:"uniqueIndex;not null" validate:"required"`
	FirstName       string        `json:"first_name" gorm:"not null" validate:"required"`
	LastName        string        `json:"last_name" gorm:"not null" validate:"required"`
	MiddleName      *string       `json:"middle_name,omitempty"`
	Gender          *Gender       `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	DateOfBirth     *CustomDate   `json:"date_of_birth,omitempty" gorm:"type:date"`
	ClassID         *string       `json:"class_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	GuardianName    *string       `json:"guardian_name,omitempty"`
	GuardianPhone   *string       `json:"guardian_phone,omitempty" gorm:"type:varchar(20)"`
	Status          StudentStatus `json:"status" gorm:"default:'active'" validate:"omitempty,oneof=active graduated withdrawn suspended"`
	CreatedAt       time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt       *time.Time    `json:"deleted_at,omitempty" gorm:"index"`
	Class           *Class        `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}

// FullName returns the display name used on result slips.
func (s *Student) FullName() string {
	if s.MiddleName != nil && *s.MiddleName != "" {
		return s.FirstName + " " + *s.MiddleName + " " + s.LastName
	}
	return s.FirstName + " " + s.LastName
}
