package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sahlatrack/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.Plan{},
		&db_models.Payment{},
		&db_models.Order{},
	); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	if err := SeedPlans(db); err != nil {
		log.Fatalf("Error seeding plans: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}

// SeedPlans inserts the tier price table on first boot. Prices are in
// USD cents; an order limit of 0 means unlimited.
func SeedPlans(db *gorm.DB) error {
	var count int64
	if err := db.Model(&db_models.Plan{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	plans := []db_models.Plan{
		{Code: "free", Name: "Free Plan", PriceMinor: 0, Currency: "USD", OrderLimit: 20},
		{Code: "premium", Name: "Premium Plan", PriceMinor: 499, Currency: "USD", OrderLimit: 500},
		{Code: "unlimited", Name: "Unlimited Plan", PriceMinor: 999, Currency: "USD", OrderLimit: 0},
	}
	return db.Create(&plans).Error
}
