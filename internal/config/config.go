package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	ServerPort string

	DBUrl      string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret    string
	JWTExpiresIn time.Duration

	FrontendURL string

	RedisAddr string

	S3Endpoint     string
	S3Region       string
	S3Bucket       string
	S3AccessKey    string
	S3SecretKey    string
	S3UsePathStyle bool
}

func Load() *Config {
	// .env is optional; deployments rely on the process environment.
	_ = godotenv.Load()

	expires := 24 * time.Hour
	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			expires = d
		}
	}

	return &Config{
		Env:        getEnv("ENV", "development"),
		ServerPort: getEnv("PORT", "5000"),

		DBUrl:      os.Getenv("DATABASE_URL"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "booking_user"),
		DBPassword: getEnv("DB_PASSWORD", "booking_pass"),
		DBName:     getEnv("DB_NAME", "booking_db"),

		JWTSecret:    getEnv("JWT_SECRET", "changeme"),
		JWTExpiresIn: expires,

		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		S3Region:       getEnv("AWS_REGION", "us-east-1"),
		S3Bucket:       os.Getenv("S3_BUCKET_NAME"),
		S3AccessKey:    os.Getenv("AWS_ACCESS_KEY_ID"),
		S3SecretKey:    os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3UsePathStyle: os.Getenv("S3_USE_PATH_STYLE") == "true",
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// DSN prefers DATABASE_URL and falls back to the discrete DB_* parts.
func (c *Config) DSN() string {
	if c.DBUrl != "" {
		return c.DBUrl
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}
