package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port      string
	DBPath    string
	IATAPath  string // IATA airport -> country lookup asset
	JWTSecret string
}

// Load reads configuration from the environment, with a .env file as an
// optional source for local development.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/tripstats.db"
	}

	iataPath := os.Getenv("IATA_PATH")
	if iataPath == "" {
		iataPath = "./data/iata_to_country.json"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	return &Config{
		Port:      port,
		DBPath:    dbPath,
		IATAPath:  iataPath,
		JWTSecret: jwtSecret,
	}
}
