package main

import (
	"fmt"
	"log"
	"os"
	"syscall"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

const minPasswordLength = 12

func main() {
	fmt.Println("=== Lead export password ===")
	fmt.Println()

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	fmt.Println()

	fmt.Print("Repeat password: ")
	repeat, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	fmt.Println()

	if string(password) != string(repeat) {
		log.Fatal("Passwords do not match")
	}
	if len(password) < minPasswordLength {
		log.Fatalf("Password must be at least %d characters long", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	fmt.Println()
	fmt.Println("Add this to your environment:")
	fmt.Fprintf(os.Stdout, "ADMIN_PASSWORD_HASH='%s'\n", hash)
}
