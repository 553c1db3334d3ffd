package main

import (
	"flag"
	"log"

	"go-gold-catalog/internal/repository"
	"go-gold-catalog/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Ops tool: reset a staff account password directly against the database,
// for when the admin locks themselves out.
func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "new password")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("usage: reset-password -email <email> -password <new password>")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	db := database.ConnectDB()
	userRepo := repository.NewUserRepo(db)

	user, err := userRepo.FindByEmail(*email)
	if err != nil {
		log.Fatalf("user %s not found: %v", *email, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash password: ", err)
	}

	if err := userRepo.UpdatePassword(user.ID, string(hashed)); err != nil {
		log.Fatal("failed to update password: ", err)
	}

	log.Printf("Password updated for %s", *email)
}
