package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB        *sql.DB
	JWTSecret string
	Port      string
}

var AppConfig *Config

// Load reads .env (if present), resolves settings from the environment and
// opens the database connection pool.
func Load() error {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		host := envOr("PGHOST", "localhost")
		port := envOr("PGPORT", "5432")
		user := envOr("PGUSER", "postgres")
		password := os.Getenv("PGPASSWORD")
		dbname := envOr("PGDATABASE", "horascole")
		sslmode := envOr("PGSSLMODE", "disable")

		dsn = fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s", host, port, user, dbname, sslmode)
		if password != "" {
			dsn += " password=" + password
		}
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	AppConfig = &Config{
		DB:        db,
		JWTSecret: envOr("JWT_SECRET", "horas-cole-dev-secret"),
		Port:      envOr("PORT", "8080"),
	}
	log.Println("Database connected successfully")
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func JWTSecret() []byte {
	return []byte(AppConfig.JWTSecret)
}
