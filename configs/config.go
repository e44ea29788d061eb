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

	AdminHost     string
	AdminEmail    string
	AdminPassword string

	RoutingBaseURL string
	AIBaseURL      string
	AIAPIKey       string
	AIModel        string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:  getEnv("DB_SOURCE", "plateful.db"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    24 * time.Hour,

		AdminHost:     os.Getenv("ADMIN_HOST"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		RoutingBaseURL: os.Getenv("ROUTING_BASE_URL"),
		AIBaseURL:      os.Getenv("AI_BASE_URL"),
		AIAPIKey:       os.Getenv("AI_API_KEY"),
		AIModel:        getEnv("AI_MODEL", "gpt-4o-mini"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
