// Command seed provisions the administrator account. Credentials come from
// ADMIN_EMAIL and ADMIN_PASSWORD; the server itself never creates admins.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/eventify/eventify-backend/internal/config"
	"github.com/eventify/eventify-backend/internal/models"
	"github.com/eventify/eventify-backend/internal/repository"
	"github.com/eventify/eventify-backend/pkg/bcrypt"
	"github.com/eventify/eventify-backend/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	cfg := config.Load()

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	adminRepo := repository.NewAdminRepository(db)

	exists, err := adminRepo.EmailExists(email)
	if err != nil {
		log.Fatal("Failed to check admin account:", err)
	}
	if exists {
		log.Printf("Admin %s already exists, nothing to do", email)
		return
	}

	hashedPassword, err := bcrypt.HashPassword(password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	if err := adminRepo.Create(&models.Admin{Email: email, Password: hashedPassword}); err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Printf("Admin %s created", email)
}
