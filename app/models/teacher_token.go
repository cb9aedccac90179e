package models

import "time"

// TokenDenial is the reason a token redemption was refused.
type TokenDenial string

const (
	TokenOK          TokenDenial = ""
	TokenInvalid     TokenDenial = "invalid"
	TokenAlreadyUsed TokenDenial = "already used"
	TokenExpired     TokenDenial = "expired"
)

// TeacherToken is a single-use credential issued to a teacher for one
// class/subject/term score-entry session. It flips to used after the
// first successful submission and is permanently inert afterwards.
type TeacherToken struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Code      string     `json:"code" gorm:"uniqueIndex;not null" validate:"required,alphanum,min=8,max=12"`
	ClassID   string     `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SubjectID string     `json:"subject_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TermID    string     `json:"term_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	IsUsed    bool       `json:"is_used" gorm:"default:false"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty" gorm:"index"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	Class     *Class     `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
	Subject   *Subject   `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
	Term      *Term      `json:"term,omitempty" gorm:"foreignKey:TermID;references:ID"`
}

// EvaluateAt returns the denial reason for redeeming the token at the
// given instant. Used is checked before expiry so a retried redemption
// of a consumed token always reads "already used".
func (t *TeacherToken) EvaluateAt(now time.Time) TokenDenial {
	if t.IsUsed {
		return TokenAlreadyUsed
	}
	if t.ExpiresAt != nil && now.After(*t.ExpiresAt) {
		return TokenExpired
	}
	return TokenOK
}
