// Seed script to create the first admin account
// cmd/seed-admin/main.go
package main

import (
	"flag"
	"log"

	"howdohome-api/config"
	"howdohome-api/controllers"
	"howdohome-api/models"
	"howdohome-api/services"
	"howdohome-api/utils"

	"github.com/joho/godotenv"
)

func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "initial password")
	name := flag.String("name", "관리자", "display name")
	role := flag.String("role", models.RoleAdmin, "role (admin or viewer)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Usage: seed-admin -email <email> -password <password> [-name <name>] [-role admin|viewer]")
	}
	if !utils.ValidateEmail(*email) {
		log.Fatal("Invalid email address:", *email)
	}
	if ok, msg := utils.ValidatePassword(*password); !ok {
		log.Fatal("Weak password: ", msg)
	}
	if *role != models.RoleAdmin && *role != models.RoleViewer {
		log.Fatal("Unknown role:", *role)
	}

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	config.InitDB()

	hashed, err := controllers.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user, err := services.SeedAdminUser(config.DB, *email, hashed, *name, *role)
	if err != nil {
		log.Fatal("Failed to create user: ", err)
	}

	log.Printf("Created %s user %s (id=%d)", user.Role, user.Email, user.UserID)
}
