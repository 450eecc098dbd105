package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	"recipes/internal/db"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const dropSchema = `
DROP TABLE IF EXISTS reviews;
DROP TABLE IF EXISTS shopping_list;
DROP TABLE IF EXISTS favorites;
`

func main() {
	reset := flag.Bool("reset", false, "Drop all tables before applying the schema (development only)")
	flag.Parse()

	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment")
	}

	dsn := os.Getenv("DB_ADDR")
	if dsn == "" {
		logger.Fatal("DB_ADDR environment variable is not set")
	}

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Fatalf("failed to open database: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}

	if *reset {
		if os.Getenv("ENV") == "production" {
			logger.Fatal("refusing to reset a production database")
		}
		if _, err := conn.ExecContext(ctx, dropSchema); err != nil {
			logger.Fatalf("failed to drop tables: %v", err)
		}
		logger.Warn("Dropped favorites, shopping_list and reviews")
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		logger.Fatalf("failed to begin transaction: %v", err)
	}
	if _, err := tx.ExecContext(ctx, db.Schema); err != nil {
		tx.Rollback()
		logger.Fatalf("failed to apply schema: %v", err)
	}
	if err := tx.Commit(); err != nil {
		logger.Fatalf("failed to commit schema: %v", err)
	}

	logger.Info("Schema applied successfully")
}
