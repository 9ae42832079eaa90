package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/tsawler/ocrlayout/internal/logger"
)

func main() {
	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	if err := logger.Setup(logger.FromEnv()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	Execute()
}
