package models

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// StudentStatus defines the lifecycle states of a student record.
type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentGraduated StudentStatus = "graduated"
	StudentWithdrawn StudentStatus = "withdrawn"
	StudentSuspended StudentStatus = "suspended"
)

// PaymentMethod defines how a fee payment was made.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentPOS      PaymentMethod = "pos"
)

// LetterGrade is the grade band assigned to a score total.
type LetterGrade string

const (
	GradeA LetterGrade = "A"
	GradeB LetterGrade = "B"
	GradeC LetterGrade = "C"
	GradeD LetterGrade = "D"
	GradeE LetterGrade = "E"
	GradeF LetterGrade = "F"
)
