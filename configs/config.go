package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration
	SeedFile  string

	// client side (cmd/food-details)
	APIURL      string
	APIToken    string
	APIEmail    string
	APIPassword string
	APITimeout  time.Duration
}

func LoadConfig() *Config {
	// .env is optional; real env always wins
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️ cannot read .env: %v", err)
	}

	return &Config{
		DBSource:    getEnv("DB_SOURCE", "gofood.db"),
		Port:        getEnv("PORT", "8000"),
		JWTSecret:   getEnv("JWT_SECRET", "changeme"),
		JWTTTL:      getDuration("JWT_TTL", 24*time.Hour),
		SeedFile:    getEnv("SEED_FILE", "configs/catalog.yaml"),
		APIURL:      getEnv("API_URL", "http://localhost:8000"),
		APIToken:    os.Getenv("API_TOKEN"),
		APIEmail:    os.Getenv("API_EMAIL"),
		APIPassword: os.Getenv("API_PASSWORD"),
		APITimeout:  getDuration("API_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("⚠️ invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
