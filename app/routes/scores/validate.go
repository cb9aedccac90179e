package scores

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	// MaxBatchSize is the largest number of score rows one submission
	// may carry.
	MaxBatchSize = 100
	// MaxCommentLength is where teacher comments get cut off. Longer
	// comments are truncated, not rejected.
	MaxCommentLength = 500
	// MaxSampledErrors caps how many row errors a batch response quotes.
	MaxSampledErrors = 10
)

// ScoreInput is one row of a teacher's score submission.
type ScoreInput struct {
	StudentID      string   `json:"student_id" validate:"required,studentid"`
	CA1            *float64 `json:"ca1,omitempty" validate:"omitempty,gte=0,lte=20"`
	CA2            *float64 `json:"ca2,omitempty" validate:"omitempty,gte=0,lte=20"`
	Exam           *float64 `json:"exam,omitempty" validate:"omitempty,gte=0,lte=60"`
	TeacherComment *string  `json:"teacher_comment,omitempty"`
}

var studentIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9/_-]{0,63}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Student identifiers are either UUIDs or admission-number style
	// codes; one charset check covers both.
	_ = v.RegisterValidation("studentid", func(fl validator.FieldLevel) bool {
		return studentIDPattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidateRow checks one score row and returns a sanitized copy plus
// every violation found. Violations are collected, not short-circuited,
// so a row with a bad id and an out-of-range mark reports both.
func ValidateRow(in ScoreInput) (ScoreInput, []string) {
	var errs []string

	if err := validate.Struct(in); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.Field() {
			case "StudentID":
				if in.StudentID == "" {
					errs = append(errs, "student_id is required")
				} else {
					errs = append(errs, "student_id has an invalid format")
				}
			case "CA1":
				errs = append(errs, "ca1 must be between 0 and 20")
			case "CA2":
				errs = append(errs, "ca2 must be between 0 and 20")
			case "Exam":
				errs = append(errs, "exam must be between 0 and 60")
			}
		}
	}

	// Truncation is a normalization, not an error. The limit counts
	// characters, not bytes, so a multi-byte comment is never cut
	// mid-rune into invalid UTF-8.
	if in.TeacherComment != nil && utf8.RuneCountInString(*in.TeacherComment) > MaxCommentLength {
		runes := []rune(*in.TeacherComment)
		truncated := string(runes[:MaxCommentLength])
		in.TeacherComment = &truncated
	}

	return in, errs
}

// ValidateBatch validates every row independently and returns the
// sanitized subset that passed plus per-row error messages for the
// rest. Row numbers in messages are 1-based. Partial success is the
// contract: callers persist the valid rows regardless of the failures.
func ValidateBatch(rows []ScoreInput) (valid []ScoreInput, errs []string) {
	for i, row := range rows {
		sanitized, rowErrs := ValidateRow(row)
		if len(rowErrs) > 0 {
			for _, e := range rowErrs {
				errs = append(errs, fmt.Sprintf("row %d: %s", i+1, e))
			}
			continue
		}
		valid = append(valid, sanitized)
	}
	return valid, errs
}

// SampleErrors returns at most MaxSampledErrors messages for the
// response body; the full list still drives the rejected count.
func SampleErrors(errs []string) []string {
	if len(errs) <= MaxSampledErrors {
		return errs
	}
	return errs[:MaxSampledErrors]
}
