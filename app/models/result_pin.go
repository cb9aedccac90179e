package models

import "time"

// PinDenial is the reason a result lookup was refused. A missing or
// mismatched record always reads as invalid credentials so callers
// cannot probe which half of the pair was wrong.
type PinDenial string

const (
	PinOK        PinDenial = ""
	PinInvalid   PinDenial = "invalid admission number or PIN"
	PinExpired   PinDenial = "expired"
	PinExhausted PinDenial = "usage exceeded"
)

// UsageEnvelope reports how many views a PIN has left after a
// successful redemption.
type UsageEnvelope struct {
	Count     int `json:"count"`
	Max       int `json:"max"`
	Remaining int `json:"remaining"`
}

// ResultPin is a bounded multi-use credential issued per student/term
// for viewing that term's result.
type ResultPin struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Code       string     `json:"code" gorm:"not null;index" validate:"required,min=4,max=12"`
	StudentID  string     `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TermID     string     `json:"term_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	UsageCount int        `json:"usage_count" gorm:"default:0" validate:"gte=0"`
	MaxUses    int        `json:"max_uses" gorm:"not null" validate:"gt=0"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty" gorm:"index"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	Student    *Student   `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Term       *Term      `json:"term,omitempty" gorm:"foreignKey:TermID;references:ID"`
}

// EvaluateAt returns the denial reason for redeeming the PIN at the
// given instant. Expiry is checked before exhaustion.
func (p *ResultPin) EvaluateAt(now time.Time) PinDenial {
	if p.ExpiresAt != nil && now.After(*p.ExpiresAt) {
		return PinExpired
	}
	if p.UsageCount >= p.MaxUses {
		return PinExhausted
	}
	return PinOK
}

// Envelope reports the usage window as of the current counter value.
func (p *ResultPin) Envelope() UsageEnvelope {
	remaining := p.MaxUses - p.UsageCount
	if remaining < 0 {
		remaining = 0
	}
	return UsageEnvelope{Count: p.UsageCount, Max: p.MaxUses, Remaining: remaining}
}
