package main

import (
	"flag"
	"log"

	"github.com/google/uuid"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/config"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/database"
	"github.com/Trust447/hemeson-academy-portal-sub000/app/models"
)

func main() {
	email := flag.String("email", "", "user email")
	password := flag.String("password", "", "user password")
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	role := flag.String("role", "admin", "role to assign (admin, bursar, records)")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" || *lastName == "" {
		log.Fatal("email, password, first and last are required")
	}

	config.Load()
	db := config.GetDB()
	defer db.Close()

	hashed, err := database.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Email:     *email,
		Password:  hashed,
		FirstName: *firstName,
		LastName:  *lastName,
	}

	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Failed to create user:", err)
	}
	if err := database.AssignRole(db, user.ID, *role); err != nil {
		log.Fatal("Failed to assign role:", err)
	}

	log.Printf("Created user %s with role %s", user.Email, *role)
}
