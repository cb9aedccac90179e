package scores

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRowCollectsAllViolations(t *testing.T) {
	_, errs := ValidateRow(ScoreInput{
		StudentID: "",
		CA1:       f(25),
		Exam:      f(70),
	})
	require.Len(t, errs, 3)
	assert.Contains(t, errs, "student_id is required")
	assert.Contains(t, errs, "ca1 must be between 0 and 20")
	assert.Contains(t, errs, "exam must be between 0 and 60")
}

func TestValidateRowAllowsNilMarks(t *testing.T) {
	sanitized, errs := ValidateRow(ScoreInput{StudentID: "stu1"})
	assert.Empty(t, errs)
	assert.Nil(t, sanitized.CA1)
	assert.Nil(t, sanitized.CA2)
	assert.Nil(t, sanitized.Exam)
}

func TestValidateRowStudentIDFormat(t *testing.T) {
	_, errs := ValidateRow(ScoreInput{StudentID: "bad id with spaces"})
	require.Len(t, errs, 1)
	assert.Equal(t, "student_id has an invalid format", errs[0])

	for _, id := range []string{"stu1", "HMA/2025/010", "4f9c0d2e-aa11-4b59-9d1c-1a2b3c4d5e6f"} {
		_, errs := ValidateRow(ScoreInput{StudentID: id})
		assert.Emptyf(t, errs, "id %q should validate", id)
	}
}

func TestValidateRowTruncatesComment(t *testing.T) {
	long := strings.Repeat("x", 620)
	sanitized, errs := ValidateRow(ScoreInput{StudentID: "stu1", TeacherComment: &long})
	assert.Empty(t, errs, "truncation is a normalization, not an error")
	require.NotNil(t, sanitized.TeacherComment)
	assert.Len(t, *sanitized.TeacherComment, MaxCommentLength)
}

// The comment limit counts characters, not bytes, so multi-byte text
// under the limit passes through untouched and over-limit text is cut
// at a rune boundary.
func TestValidateRowCommentMultiByte(t *testing.T) {
	short := strings.Repeat("€", 200)
	sanitized, errs := ValidateRow(ScoreInput{StudentID: "stu1", TeacherComment: &short})
	assert.Empty(t, errs)
	require.NotNil(t, sanitized.TeacherComment)
	assert.Equal(t, short, *sanitized.TeacherComment)

	long := strings.Repeat("€", 600)
	sanitized, errs = ValidateRow(ScoreInput{StudentID: "stu1", TeacherComment: &long})
	assert.Empty(t, errs)
	require.NotNil(t, sanitized.TeacherComment)
	assert.Equal(t, MaxCommentLength, utf8.RuneCountInString(*sanitized.TeacherComment))
	assert.True(t, utf8.ValidString(*sanitized.TeacherComment))
}

func TestValidateBatchPartialSuccess(t *testing.T) {
	rows := make([]ScoreInput, 100)
	for i := range rows {
		rows[i] = ScoreInput{StudentID: fmt.Sprintf("stu%d", i+1), CA1: f(15), CA2: f(14), Exam: f(40)}
	}
	// Row 37 carries an out-of-range exam mark.
	rows[36].Exam = f(65)

	valid, errs := ValidateBatch(rows)
	assert.Len(t, valid, 99)
	require.Len(t, errs, 1)
	assert.Equal(t, "row 37: exam must be between 0 and 60", errs[0])
}

func TestValidateBatchAllValid(t *testing.T) {
	rows := []ScoreInput{
		{StudentID: "stu1", CA1: f(18), CA2: f(16), Exam: f(50)},
		{StudentID: "stu2"},
	}
	valid, errs := ValidateBatch(rows)
	assert.Len(t, valid, 2)
	assert.Empty(t, errs)
}

func TestSampleErrors(t *testing.T) {
	var errs []string
	for i := 0; i < 25; i++ {
		errs = append(errs, fmt.Sprintf("row %d: bad", i+1))
	}
	sampled := SampleErrors(errs)
	assert.Len(t, sampled, MaxSampledErrors)
	assert.Equal(t, "row 1: bad", sampled[0])

	short := []string{"row 1: bad"}
	assert.Equal(t, short, SampleErrors(short))
}

// A full valid submission row computes the total and grade the result
// slip will show.
func TestSubmissionRowDerivation(t *testing.T) {
	row := ScoreInput{StudentID: "stu1", CA1: f(18), CA2: f(16), Exam: f(50)}
	sanitized, errs := ValidateRow(row)
	require.Empty(t, errs)

	total := ComputeTotal(sanitized.CA1, sanitized.CA2, sanitized.Exam)
	assert.Equal(t, 84.0, total)
	assert.Equal(t, "A", string(ComputeGrade(total)))
}
