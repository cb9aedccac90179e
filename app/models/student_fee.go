package models

import "time"

// StudentFee represents an actual charge for a specific student within
// a term.
type StudentFee struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID string     `json:"student_id" gorm:"not null;index;type:uuid"`
	FeeTypeID string     `json:"fee_type_id" gorm:"not null;index;type:uuid"`
	TermID    *string    `json:"term_id,omitempty" gorm:"index;type:uuid"`
	Title     string     `json:"title" gorm:"not null"`
	Amount    float64    `json:"amount" gorm:"not null;type:numeric"`
	Balance   float64    `json:"balance" gorm:"type:numeric;default:0"`
	Paid      bool       `json:"paid" gorm:"default:false"`
	DueDate   CustomDate `json:"due_date" gorm:"not null;type:date"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at" gorm:"default:now()"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"default:now()"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	FeeType *FeeType `json:"fee_type,omitempty" gorm:"foreignKey:FeeTypeID;references:ID"`
	Term    *Term    `json:"term,omitempty" gorm:"foreignKey:TermID;references:ID"`
}

// IsFullyPaid returns true if the fee is marked as paid.
func (f *StudentFee) IsFullyPaid() bool {
	return f.Paid
}

// ApplyPayment reduces the balance and flips the paid flag when the
// balance reaches zero.
func (f *StudentFee) ApplyPayment(amount float64) {
	f.Balance -= amount
	if f.Balance <= 0 {
		f.Balance = 0
		f.Paid = true
		now := time.Now()
		f.PaidAt = &now
	}
}
