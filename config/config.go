package config

import (
	"os"
	"time"

	"bistro-boss-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config carries every knob the process needs. It is loaded once in main and
// handed to the components that need it; nothing reads the environment later.
type Config struct {
	Port            string
	DBPath          string
	JWTSecret       string
	TokenTTL        time.Duration
	StripeSecretKey string
	RedisAddr       string
	RedisPassword   string
}

// Load reads configuration from the environment with development defaults.
func Load() Config {
	return Config{
		Port:            getEnv("PORT", "5000"),
		DBPath:          getEnv("DB_PATH", "bistro_boss.db"),
		JWTSecret:       getEnv("JWT_SECRET", "bistro_boss_super_secret_2024"),
		TokenTTL:        time.Hour,
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the database and migrates all models.
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Review{},
		&models.CartItem{},
		&models.Payment{},
		&models.PaymentItem{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
