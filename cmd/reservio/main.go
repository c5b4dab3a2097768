package main

import (
	"log"

	"github.com/devpbeat/reservio/internal/app"
	"github.com/devpbeat/reservio/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	// Local development convenience; absence of .env is not an error.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
