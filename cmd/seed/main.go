package main

import (
	"context"
	"log"

	"gazelle/internal/knowledge"
	"gazelle/internal/models"
	"gazelle/internal/repository"
	"gazelle/pkg/config"
	"gazelle/pkg/logger"
	"gazelle/pkg/postgres"

	"go.uber.org/zap"
)

// Seeds distribution-center locations and a handful of sample supplies so the
// seeker flow has something to match against in a fresh environment.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	locationRepo := repository.NewLocationRepository(db, appLogger)
	supplyRepo := repository.NewSupplyRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	locations := []models.Location{
		{Name: "Downtown Distribution Center", Address: "500 Crawford St, Houston, TX 77002", Latitude: 29.7522, Longitude: -95.3578},
		{Name: "Eastside Community Hub", Address: "7600 Harrisburg Blvd, Houston, TX 77012", Latitude: 29.7226, Longitude: -95.2866},
		{Name: "Northside Relief Point", Address: "8800 Airline Dr, Houston, TX 77037", Latitude: 29.9277, Longitude: -95.4069},
	}

	locationIDs := make([]int64, 0, len(locations))
	for i := range locations {
		id, err := locationRepo.Create(ctx, &locations[i])
		if err != nil {
			appLogger.Fatal("Failed to seed location", zap.String("name", locations[i].Name), zap.Error(err))
		}
		locationIDs = append(locationIDs, id)
		appLogger.Info("Seeded location", zap.Int64("id", id), zap.String("name", locations[i].Name))
	}

	samples := []struct {
		name     string
		category string
		quantity float64
		location int
	}{
		{"24 bottles of Bottled Water 16.9oz (sealed)", "Water", 24, 0},
		{"10 cases of Canned Vegetables (unexpired)", "Food - Non-Perishable", 10, 0},
		{"5 items of First Aid Kit (sealed)", "Medical Supplies", 5, 1},
		{"30 items of Fleece Blankets (clean)", "Bedding & Blankets", 30, 1},
		{"12 packs of AA Batteries (new)", "Flashlights & Batteries", 12, 2},
	}

	for _, sample := range samples {
		supply := &models.Supply{
			Name:          sample.name,
			CategoryID:    knowledge.CategoryID(sample.category),
			LocationID:    locationIDs[sample.location],
			Quantity:      sample.quantity,
			AddedByUserID: cfg.Defaults.UserID,
			Status:        models.SupplyStatusAvailable,
		}
		id, err := supplyRepo.Create(ctx, supply)
		if err != nil {
			appLogger.Fatal("Failed to seed supply", zap.String("name", sample.name), zap.Error(err))
		}
		appLogger.Info("Seeded supply", zap.Int64("id", id), zap.String("name", sample.name))
	}

	appLogger.Info("Database seeding completed successfully!")
}
