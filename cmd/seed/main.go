package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/osse101/Stockroom_Go/internal/database"
	"github.com/osse101/Stockroom_Go/internal/database/postgres"
	"github.com/osse101/Stockroom_Go/internal/domain"
)

var categories = []string{"Electronics", "Clothing", "Food", "Books", "Toys", "Tools", "Furniture", "Other"}

var locations = []string{"Warehouse A", "Warehouse B", "Store Front", "Back Room", "Storage Unit 1"}

var nameWords = []string{
	"Portable", "Wireless", "Compact", "Heavy-Duty", "Classic", "Premium",
	"Speaker", "Charger", "Notebook", "Lamp", "Toolkit", "Jacket",
	"Bundle", "Kit", "Set", "Unit", "Pack", "Case",
}

func main() {
	count := flag.Int("count", 50, "number of items to insert")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default/environment variables")
	}

	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "stockroom"),
	)

	ctx := context.Background()

	if err := database.Migrate(ctx, connString); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	dbPool, err := database.NewPool(connString, 4, 0, 0)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	repo := postgres.NewInventoryRepository(dbPool)

	inserted := 0
	for i := 0; i < *count; i++ {
		item := randomItem()
		if _, err := repo.Create(ctx, &item); err != nil {
			// Random SKUs can collide with earlier runs; skip and move on
			log.Printf("Skipping item %q: %v", item.SKU, err)
			continue
		}
		inserted++
	}

	fmt.Printf("Seeded %d inventory items.\n", inserted)
}

func randomItem() domain.Item {
	name := fmt.Sprintf("%s %s %s",
		nameWords[rand.Intn(6)],
		nameWords[6+rand.Intn(6)],
		nameWords[12+rand.Intn(6)])

	price := decimal.NewFromInt(int64(1 + rand.Intn(999))).
		Add(decimal.New(int64(rand.Intn(100)), -2))

	return domain.Item{
		Name:        name,
		Description: fmt.Sprintf("Seeded stock entry for %s.", name),
		SKU:         randomSKU(),
		Quantity:    rand.Intn(1001),
		Price:       price,
		Category:    categories[rand.Intn(len(categories))],
		Location:    locations[rand.Intn(len(locations))],
		IsActive:    true,
	}
}

func randomSKU() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	return fmt.Sprintf("SKU-%04d-%c%c%c",
		rand.Intn(10000),
		letters[rand.Intn(26)],
		letters[rand.Intn(26)],
		letters[rand.Intn(26)])
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
