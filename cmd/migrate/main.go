package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/config"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/database"
)

func main() {
	log.Println("Starting database migration...")

	config.Load()
	db := config.GetDB()
	defer db.Close()

	executeSQLFile(db, "schema.sql")

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run incremental migrations:", err)
	}

	log.Println("Migration completed successfully!")
}

func executeSQLFile(db *sql.DB, filePath string) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("Skipping %s: %v", filePath, err)
		return
	}

	log.Printf("Executing %s...", filePath)
	if _, err := db.Exec(string(content)); err != nil {
		log.Fatalf("Error executing %s: %v", filePath, err)
	}
	log.Printf("Successfully executed %s", filePath)
}
