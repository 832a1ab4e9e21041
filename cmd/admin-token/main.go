package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"guild-bot/internal/auth/processor"
	"guild-bot/internal/observability"

	"github.com/joho/godotenv"
)

func main() {
	subject := flag.String("subject", "", "operator id recorded on adjustments")
	flag.Parse()

	if *subject == "" {
		log.Fatal("-subject is required")
	}

	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: env.local could not be loaded: %v", err)
		}
	}

	secret := os.Getenv("ADMIN_JWT_SECRET")
	if secret == "" {
		log.Fatal("ADMIN_JWT_SECRET not set")
	}

	auth := processor.New(secret, observability.NewLogger())
	token, err := auth.IssueToken(context.Background(), *subject)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}
	fmt.Println(token)
}
