package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// CustomDate handles date-only JSON parsing and storage.
type CustomDate struct {
	time.Time
}

// UnmarshalJSON parses dates in YYYY-MM-DD format.
func (cd *CustomDate) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == "" || s == `""` {
		cd.Time = time.Time{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	cd.Time = t
	return nil
}

// MarshalJSON formats dates in YYYY-MM-DD format.
func (cd CustomDate) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, cd.Time.Format("2006-01-02"))), nil
}

// Scan implements the Scanner interface for database reading.
func (cd *CustomDate) Scan(value interface{}) error {
	if value == nil {
		cd.Time = time.Time{}
		return nil
	}
	if t, ok := value.(time.Time); ok {
		cd.Time = t
		return nil
	}
	return fmt.Errorf("cannot scan %T into CustomDate", value)
}

// Value implements the Valuer interface for database writing.
func (cd CustomDate) Value() (driver.Value, error) {
	return cd.Time, nil
}

// AcademicSession represents an academic year spanning three terms.
type AcademicSession struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name      string     `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	StartDate CustomDate `json:"start_date" gorm:"not null;index" validate:"required"`
	EndDate   CustomDate `json:"end_date" gorm:"not null;index" validate:"required"`
	IsCurrent bool       `json:"is_current" gorm:"default:false;index"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Terms     []*Term    `json:"terms,omitempty" gorm:"foreignKey:SessionID;references:ID"`
}

// IsCurrentByDate checks if the session is current based on today's date.
func (s *AcademicSession) IsCurrentByDate() bool {
	now := time.Now()
	return now.After(s.StartDate.Time) && now.Before(s.EndDate.Time)
}
