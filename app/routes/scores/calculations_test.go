package scores

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
)

func f(v float64) *float64 { return &v }

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name string
		ca1  *float64
		ca2  *float64
		exam *float64
		want float64
	}{
		{"all present", f(18), f(16), f(50), 84},
		{"all zero", f(0), f(0), f(0), 0},
		{"nil ca1", nil, f(16), f(50), 66},
		{"nil ca2", f(18), nil, f(50), 68},
		{"nil exam", f(18), f(16), nil, 34},
		{"all nil", nil, nil, nil, 0},
		{"fractional", f(12.5), f(13.5), f(40.25), 66.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTotal(tt.ca1, tt.ca2, tt.exam))
		})
	}
}

func TestComputeGrade(t *testing.T) {
	tests := []struct {
		total float64
		want  models.LetterGrade
	}{
		{100, models.GradeA},
		{84, models.GradeA},
		{70, models.GradeA},
		{69.9, models.GradeB},
		{69, models.GradeB},
		{60, models.GradeB},
		{59.9, models.GradeC},
		{59, models.GradeC},
		{50, models.GradeC},
		{49.9, models.GradeD},
		{49, models.GradeD},
		{45, models.GradeD},
		{44.9, models.GradeE},
		{44, models.GradeE},
		{40, models.GradeE},
		{39.9, models.GradeF},
		{39, models.GradeF},
		{0, models.GradeF},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, ComputeGrade(tt.total), "total %v", tt.total)
	}
}

// Every total in the A band maps to A.
func TestComputeGradeABand(t *testing.T) {
	for total := 70; total <= 100; total++ {
		assert.Equal(t, models.GradeA, ComputeGrade(float64(total)))
	}
}
