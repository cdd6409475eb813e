package config

import (
	"fmt"
	"log"
	"os"

	"artmarket-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB() *gorm.DB {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "postgres"),
			getEnv("DB_NAME", "artmarket"),
			getEnv("DB_SSLMODE", "disable"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	return db
}

// Migrate creates or updates the schema for every entity collection plus
// the sequence counter table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Counter{},
		&models.Artist{},
		&models.Art{},
		&models.ArtLike{},
		&models.Blog{},
		&models.Comment{},
		&models.UserProfile{},
		&models.HomeConfig{},
	)
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
