package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/aaguilard28/cv-areli/pkg/auth"
)

// Hashes OWNER_PASSWORD and prints the value to put into
// OWNER_PASSWORD_HASH. There is no user table; the single owner account
// lives entirely in configuration.
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	password := os.Getenv("OWNER_PASSWORD")
	if password == "" {
		log.Fatal("OWNER_PASSWORD is not set")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	fmt.Println("set this in your environment or .env:")
	fmt.Printf("OWNER_PASSWORD_HASH=%s\n", hash)
}
