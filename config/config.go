package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	ServiceName       string
	MongoURI          string
	CassDB            string
	RedisHost         string
	RedisPort         string
	JaegerAddress     string
	PaymentGatewayURL string
	EmailFrom         string
	SMTPHost          string
	SMTPPass          string
	SMTPUser          string
	SMTPPort          int
}

func GetConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		fmt.Println("No .env file found, reading configuration from environment")
	}

	port := os.Getenv("PORT")
	if len(port) == 0 {
		port = "8080"
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		smtpPort = 587
	}

	return &Config{
		Port:              port,
		ServiceName:       "booking-service",
		MongoURI:          os.Getenv("MONGO_DB_URI"),
		CassDB:            os.Getenv("CASS_DB"),
		RedisHost:         os.Getenv("REDIS_HOST"),
		RedisPort:         os.Getenv("REDIS_PORT"),
		JaegerAddress:     os.Getenv("JAEGER_ADDRESS"),
		PaymentGatewayURL: os.Getenv("PAYMENT_GATEWAY_URL"),
		EmailFrom:         os.Getenv("EMAIL_FROM"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPass:          os.Getenv("SMTP_PASS"),
		SMTPUser:          os.Getenv("SMTP_USER"),
		SMTPPort:          smtpPort,
	}
}
