package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"uploadlink/infrastructure/audit"
	"uploadlink/infrastructure/cache"
	httpserver "uploadlink/infrastructure/http"
	"uploadlink/infrastructure/ingest"
	"uploadlink/infrastructure/sqlite"
	"uploadlink/infrastructure/tracking"
)

func main() {
	addr := getenv("APP_ADDR", ":8080")
	dbPath := getenv("SQLITE_PATH", "uploadlink.db")

	trackingStart, err := time.Parse("2006-01-02", getenv("TRACKING_START", "2025-01-01"))
	if err != nil {
		log.Fatalf("parse TRACKING_START: %v", err)
	}

	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := sqlite.ApplyMigrations(context.Background(), db, ""); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	client := ingest.NewClient(ingest.Config{
		StocksUploadURL: getenv("STOCKS_UPLOAD_URL", "http://localhost:9000/upload/stocks"),
		SalesUploadURL:  getenv("SALES_UPLOAD_URL", "http://localhost:9000/upload/sales"),
		StatusURL:       getenv("STATUS_URL", "http://localhost:9000/status"),
	})

	window := tracking.Window{Start: trackingStart, Now: time.Now}

	server := httpserver.NewServer(addr, db,
		cache.NewSessionCache(), cache.NewUserCache(), audit.NewService(),
		client, tracking.NewSynchronizer(client.FetchStatus), tracking.NewNotification(), window)
	if err := server.Start(); err != nil {
		log.Fatalf("start server: %v", err)
	}
	log.Printf("uploadlink listening on %s", addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := server.Stop(); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
