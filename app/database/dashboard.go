package database

import "database/sql"

// DashboardStats holds the counts shown on the admin landing page.
type DashboardStats struct {
	Students       int     `json:"students"`
	Classes        int     `json:"classes"`
	Subjects       int     `json:"subjects"`
	UnusedTokens   int     `json:"unused_tokens"`
	ActivePins     int     `json:"active_pins"`
	ScoresThisTerm int     `json:"scores_this_term"`
	FeesOwed       float64 `json:"fees_owed"`
}

func GetDashboardStats(db *sql.DB) (*DashboardStats, error) {
	stats := &DashboardStats{}

	query := `
		SELECT
			(SELECT COUNT(*) FROM students WHERE deleted_at IS NULL AND status = 'active'),
			(SELECT COUNT(*) FROM classes WHERE deleted_at IS NULL AND is_active = true),
			(SELECT COUNT(*) FROM subjects WHERE deleted_at IS NULL AND is_active = true),
			(SELECT COUNT(*) FROM teacher_tokens WHERE is_used = false
				AND (expires_at IS NULL OR expires_at > NOW())),
			(SELECT COUNT(*) FROM result_pins WHERE usage_count < max_uses
				AND (expires_at IS NULL OR expires_at > NOW())),
			(SELECT COUNT(*) FROM scores sc JOIN terms t ON t.id = sc.term_id WHERE t.is_current = true),
			(SELECT COALESCE(SUM(balance), 0) FROM student_fees WHERE paid = false AND deleted_at IS NULL)
	`
	err := db.QueryRow(query).Scan(
		&stats.Students, &stats.Classes, &stats.Subjects,
		&stats.UnusedTokens, &stats.ActivePins, &stats.ScoresThisTerm, &stats.FeesOwed,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
