package scores

import "github.com/Trust447/hemeson-academy-portal-sub000/app/models"

// ComputeTotal adds the three raw marks. A nil mark counts as zero;
// range checking happens in validation before this runs.
func ComputeTotal(ca1, ca2, exam *float64) float64 {
	var total float64
	if ca1 != nil {
		total += *ca1
	}
	if ca2 != nil {
		total += *ca2
	}
	if exam != nil {
		total += *exam
	}
	return total
}

// ComputeGrade maps a total to its letter grade. Bands are inclusive
// lower bounds, so a fractional 69.9 is still a B.
func ComputeGrade(total float64) models.LetterGrade {
	switch {
	case total >= 70:
		return models.GradeA
	case total >= 60:
		return models.GradeB
	case total >= 50:
		return models.GradeC
	case total >= 45:
		return models.GradeD
	case total >= 40:
		return models.GradeE
	default:
		return models.GradeF
	}
}
