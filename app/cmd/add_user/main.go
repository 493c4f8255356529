package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/kokito32rios/horas-cole/app/config"
	"github.com/kokito32rios/horas-cole/app/database"
	"github.com/kokito32rios/horas-cole/app/models"
)

// Seeds an initial admin account so the application can be logged into after
// a fresh install.
func main() {
	name := flag.String("name", "Administrador", "full name")
	document := flag.String("document", "", "document number (required)")
	password := flag.String("password", "", "password (defaults to the document number)")
	flag.Parse()

	if *document == "" {
		log.Fatal("-document is required")
	}

	if err := config.Load(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	role, err := database.GetRoleByName(db, models.RoleAdmin)
	if err != nil {
		log.Fatal("Failed to resolve admin role:", err)
	}

	plain := *password
	if plain == "" {
		plain = *document
	}
	hashed, err := database.HashPassword(plain)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Name:     *name,
		Document: *document,
		Password: hashed,
		RoleID:   role.ID,
	}
	if err := database.CreateUser(db, user); err != nil {
		if database.IsUniqueViolation(err) {
			log.Fatalf("A user with document %s already exists", *document)
		}
		log.Fatal("Failed to create user:", err)
	}

	fmt.Printf("Admin user created: %s (%s)\n", user.Name, user.Document)
}
