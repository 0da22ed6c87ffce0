package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"nutrilog/internal/adapter/flatfile"
	adapthttp "nutrilog/internal/adapter/http"
	"nutrilog/internal/adapter/postgres"
	"nutrilog/internal/app"
	"nutrilog/internal/domain"
)

// store is the full set of repository ports a storage backend provides.
type store interface {
	domain.UserRepository
	domain.ProductRepository
	domain.MealRepository
	domain.LogRepository
}

func main() {
	_ = godotenv.Load()

	addr := env("ADDR", ":8080")

	var st store
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		db, err := postgres.Open(connStr)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		st = db
	} else {
		dataDir := env("DATA_DIR", "data")
		fs, err := flatfile.Open(dataDir)
		if err != nil {
			log.Fatalf("store open: %v", err)
		}
		st = fs
	}

	accounts := app.NewAccountService(st)
	catalog := app.NewCatalogService(st)
	meals := app.NewMealService(st, st)
	logs := app.NewLogService(st, st, st)

	h := adapthttp.New(accounts, catalog, meals, logs).Handler()
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
