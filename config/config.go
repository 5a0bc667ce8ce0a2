package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	MongoURI  string
	MongoDB   string
	Port      string
	JWTSecret string

	// AMQPURL is optional; when empty, request lifecycle events are not
	// published and only notification documents are written.
	AMQPURL      string
	AMQPExchange string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using system environment variables")
	}

	cfg := Config{
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "assist"),
		Port:         getEnv("PORT", "3000"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		AMQPURL:      os.Getenv("AMQP_URL"),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "assist.requests"),
	}
	return cfg
}
