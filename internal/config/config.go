package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	MongoURI     string
	DBName       string
	Environment  string
	AppId        string
	FSPath       string // Physical directory for document uploads
	FSURL        string // URL path prefix for document access
	ServerOrigin string // Public origin used when rewriting stored paths
	CORSOrigins  string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		Port:         getEnv("PORT", "5000"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:       getEnv("DB_NAME", "go-rental"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		AppId:        getEnv("APP_ID", "go-rental"),
		FSPath:       getEnv("FS_PATH", "./uploads"),
		FSURL:        getEnv("FS_URL", "/uploads"),
		ServerOrigin: getEnv("SERVER_ORIGIN", "http://localhost:5000"),
		CORSOrigins:  getEnv("CORS_ORIGINS", "http://localhost:3000, http://localhost:5173"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
