package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates. Each step
// is idempotent so it is safe to run on every boot.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := seedRoles(db); err != nil {
		return err
	}
	if err := addTokenTermColumn(db); err != nil {
		return err
	}
	if err := addScoreCommentColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func seedRoles(db *sql.DB) error {
	query := `
		INSERT INTO roles (name)
		VALUES ('admin'), ('bursar'), ('records')
		ON CONFLICT (name) DO NOTHING
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to seed roles: %v", err)
		return err
	}
	return nil
}

func addTokenTermColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'teacher_tokens'
				AND column_name = 'term_id'
			) THEN
				ALTER TABLE teacher_tokens ADD COLUMN term_id UUID REFERENCES terms(id);
				RAISE NOTICE 'Added term_id column to teacher_tokens';
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to run migration for teacher_tokens.term_id: %v", err)
		return err
	}
	return nil
}

func addScoreCommentColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'scores'
				AND column_name = 'teacher_comment'
			) THEN
				ALTER TABLE scores ADD COLUMN teacher_comment VARCHAR(500);
				RAISE NOTICE 'Added teacher_comment column to scores';
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to run migration for scores.teacher_comment: %v", err)
		return err
	}
	return nil
}
