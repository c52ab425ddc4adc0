package main

import (
	"log"

	"gazelle/db/migrations"
	"gazelle/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Println("Running migrations")
	if err := migrations.Run(&cfg.Database); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}
	log.Println("Migrations applied")
}
