package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/HardPrice/test-task-secunda/internal/config"
	"github.com/HardPrice/test-task-secunda/internal/database"
	"github.com/HardPrice/test-task-secunda/internal/models"
	"github.com/HardPrice/test-task-secunda/internal/services"
)

// Seeds a small sample data set: two buildings, a three-level activity
// forest and a few organizations, enough to exercise every search
// filter by hand.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	if err := seed(ctx, db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("Seed data created successfully")
}

func seed(ctx context.Context, db database.Database) error {
	var count int64
	if err := db.DB().WithContext(ctx).Model(&models.Building{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("database is not empty, refusing to seed")
	}

	buildingService := services.NewBuildingService(db)
	activityService := services.NewActivityService(db, nil, 0)
	organizationService := services.NewOrganizationService(db, activityService)

	center, err := buildingService.Create(ctx, "Moscow, Lenina avenue 1, office 3", 55.7558, 37.6173)
	if err != nil {
		return err
	}
	suburb, err := buildingService.Create(ctx, "Moscow, Blyukhera street 32/1", 55.8304, 37.6325)
	if err != nil {
		return err
	}

	food, err := activityService.Create(ctx, "Food", nil)
	if err != nil {
		return err
	}
	meat, err := activityService.Create(ctx, "Meat products", &food.ID)
	if err != nil {
		return err
	}
	dairy, err := activityService.Create(ctx, "Dairy products", &food.ID)
	if err != nil {
		return err
	}
	cars, err := activityService.Create(ctx, "Cars", nil)
	if err != nil {
		return err
	}
	trucks, err := activityService.Create(ctx, "Trucks", &cars.ID)
	if err != nil {
		return err
	}
	parts, err := activityService.Create(ctx, "Spare parts", &trucks.ID)
	if err != nil {
		return err
	}

	organizations := []services.CreateOrganizationInput{
		{
			Name:       "Horns and Hooves LLC",
			BuildingID: center.ID,
			Phones:     []string{"2-222-222", "3-333-333", "8-923-666-13-13"},
			Activities: []uint{meat.ID, dairy.ID},
		},
		{
			Name:       "Dairy Kitchen",
			BuildingID: suburb.ID,
			Phones:     []string{"8-800-555-35-35"},
			Activities: []uint{dairy.ID},
		},
		{
			Name:       "TruckMaster Service",
			BuildingID: suburb.ID,
			Phones:     []string{"495-123-456"},
			Activities: []uint{trucks.ID, parts.ID},
		},
	}

	for _, input := range organizations {
		if _, err := organizationService.Create(ctx, input); err != nil {
			return fmt.Errorf("failed to create organization %q: %w", input.Name, err)
		}
	}

	return printSummary(ctx, db.DB())
}

func printSummary(ctx context.Context, db *gorm.DB) error {
	counts := map[string]interface{}{
		"buildings":     &models.Building{},
		"activities":    &models.Activity{},
		"organizations": &models.Organization{},
		"phones":        &models.Phone{},
	}
	for name, model := range counts {
		var n int64
		if err := db.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
			return err
		}
		fmt.Printf("  %s: %d\n", name, n)
	}
	return nil
}
