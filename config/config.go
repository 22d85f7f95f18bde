package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"nutritrack/models"
)

// Config carries everything the process needs from the environment.
// It is built once in main and passed down explicitly; nothing else
// in the codebase reads os.Getenv.
type Config struct {
	Port       string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	JWTSecret  string
	SentryDSN  string
}

// Load reads .env (if present) and builds the Config. The JWT secret
// is the only hard requirement.
func Load() (*Config, error) {
	// .env is optional; deployments may set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "nutritrack"),
		DBPort:     getEnv("DB_PORT", "5432"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		SentryDSN:  os.Getenv("SENTRY_DSN"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	return cfg, nil
}

func (c *Config) dsn() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// InitDB opens the Postgres connection and migrates the schema.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.dsn()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.DailyNutrition{},
		&models.CategoryTotals{},
		&models.FoodItem{},
	)
	if err != nil {
		return nil, fmt.Errorf("AutoMigrate failed: %w", err)
	}
	return db, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
