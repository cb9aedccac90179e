package models

import "time"

// Term represents one of the three academic periods within a session.
type Term struct {
	ID        string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SessionID string           `json:"session_id" gorm:"not null;index;type:uuid"`
	Name      string           `json:"name" gorm:"not null"`
	StartDate CustomDate       `json:"start_date" gorm:"not null;type:date"`
	EndDate   CustomDate       `json:"end_date" gorm:"not null;type:date"`
	IsCurrent bool             `json:"is_current" gorm:"default:false"`
	IsActive  bool             `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time        `json:"created_at" gorm:"default:now()"`
	UpdatedAt time.Time        `json:"updated_at" gorm:"default:now()"`
	DeletedAt *time.Time       `json:"deleted_at,omitempty" gorm:"index"`
	Session   *AcademicSession `json:"session,omitempty" gorm:"foreignKey:SessionID;references:ID"`
}

// IsCurrentByDate checks if the term is current based on today's date.
func (t *Term) IsCurrentByDate() bool {
	now := time.Now()
	return now.After(t.StartDate.Time) && now.Before(t.EndDate.Time)
}
