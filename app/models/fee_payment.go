package models

import "time"

// FeePayment records a payment made against a student fee.
type FeePayment struct {
	ID           string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentFeeID string        `json:"student_fee_id" gorm:"not null;index;type:uuid"`
	Amount       float64       `json:"amount" gorm:"not null;type:numeric" validate:"gt=0"`
	Method       PaymentMethod `json:"method" gorm:"not null" validate:"required,oneof=cash transfer pos"`
	Reference    *string       `json:"reference,omitempty"`
	ReceivedBy   *string       `json:"received_by,omitempty" gorm:"type:uuid"`
	PaidAt       time.Time     `json:"paid_at" gorm:"not null;default:now()"`
	CreatedAt    time.Time     `json:"created_at" gorm:"autoCreateTime"`

	StudentFee *StudentFee `json:"student_fee,omitempty" gorm:"foreignKey:StudentFeeID;references:ID"`
}
