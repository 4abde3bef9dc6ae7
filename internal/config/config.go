package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Assets   AssetsConfig
}

type AppConfig struct {
	Env string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
}

type AssetsConfig struct {
	Dir         string
	Placeholder string
}

// DSN builds the postgres connection string for the pgx driver.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not read .env file: %v", err)
	}

	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_DATABASE", "footwear_store")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("ASSETS_DIR", "assets")
	viper.SetDefault("ASSETS_PLACEHOLDER", "picture.png")

	return &Config{
		App: AppConfig{
			Env: viper.GetString("APP_ENV"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Database: viper.GetString("DB_DATABASE"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
		},
		Assets: AssetsConfig{
			Dir:         viper.GetString("ASSETS_DIR"),
			Placeholder: viper.GetString("ASSETS_PLACEHOLDER"),
		},
	}
}
