package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/trovehq/trove-backend/internal/utils"
)

// Config holds application configuration.
type Config struct {
	DBPath       string
	Port         string
	IsProduction bool

	// AppSignature is written into the store's metadata table at init and
	// checked before a backup file may be restored.
	AppSignature string

	// BackupDir is the directory where store backups are written.
	BackupDir string

	// MaxBalance is the largest balance any single account may hold.
	MaxBalance decimal.Decimal
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("TROVE_DB_PATH", "trove.db")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("APP_SIGNATURE", "trove-v1-10-2025-101701")
	viper.SetDefault("BACKUP_DIR", "backups")
	viper.SetDefault("MAX_BALANCE", "1000000000000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DBPath = viper.GetString("TROVE_DB_PATH")
	if cfg.DBPath == "" {
		cfg.DBPath = "trove.db"
		log.Printf("Warning: TROVE_DB_PATH not set. Defaulting to %s\n", cfg.DBPath)
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.AppSignature = viper.GetString("APP_SIGNATURE")
	if cfg.AppSignature == "" {
		cfg.AppSignature = "trove-v1-10-2025-101701"
		log.Println("Warning: APP_SIGNATURE not set. Using the built-in default; backups from other installs will be accepted.")
	}

	cfg.BackupDir = viper.GetString("BACKUP_DIR")
	if cfg.BackupDir == "" {
		cfg.BackupDir = "backups"
		log.Printf("Warning: BACKUP_DIR not set. Defaulting to %s\n", cfg.BackupDir)
	}

	// Thousands separators are accepted, e.g. MAX_BALANCE=1,000,000.
	maxBalanceStr := viper.GetString("MAX_BALANCE")
	maxBalance := utils.ParseFormattedAmount(maxBalanceStr)
	if maxBalance.LessThanOrEqual(decimal.Zero) {
		maxBalance = decimal.New(1, 12) // 1,000,000,000,000
		if maxBalanceStr != "" {
			log.Printf("Warning: Invalid value for MAX_BALANCE ('%s'). Defaulting to %s.\n", maxBalanceStr, maxBalance.String())
		}
	}
	cfg.MaxBalance = maxBalance

	return cfg, nil
}
