package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"uploadlink/frontend/login"
	"uploadlink/infrastructure/sqlite"
)

func main() {
	dbPath := getenv("SQLITE_PATH", "uploadlink.db")
	password := getenv("OPERATOR_PASSWORD", "Operator123!Upload")

	if err := seedOperator(context.Background(), dbPath, password); err != nil {
		log.Fatalf("seed operator: %v", err)
	}
	fmt.Println("seeded operator user (username=operator)")
}

func seedOperator(ctx context.Context, dbPath, password string) error {
	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := sqlite.ApplyEmbeddedMigrations(ctx, db); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return login.UpsertUserPasswordHash(ctx, db, "operator", "operator", password)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
