package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"newsharvest/api"
	"newsharvest/config"
	"newsharvest/orchestrator"
	"newsharvest/store"
)

func main() {
	serve := flag.Bool("serve", false, "start the HTTP API instead of running one scrape cycle")
	flag.Parse()

	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	log.SetOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	st, err := newStore()
	if err != nil {
		log.Fatalf("Failed to initialize run store: %v", err)
	}

	if *serve {
		runServer(cfg, st)
		return
	}

	result, err := orchestrator.RunOnce(context.Background(), cfg, st)
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}
	if result.Total == 0 {
		// Explicit empty outcome: no artifact was produced.
		os.Exit(0)
	}
}

// newStore picks the Redis-backed run store when configured, otherwise the
// in-memory one.
func newStore() (store.Store, error) {
	rs, err := store.NewRedisFromEnv(context.Background())
	if err != nil {
		return nil, err
	}
	if rs != nil {
		log.Println("Using Redis run store")
		return rs, nil
	}
	return store.NewMemory(), nil
}

func runServer(cfg *config.RunConfig, st store.Store) {
	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := api.NewRouter(cfg, st)
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  POST /api/scrape/run")
	log.Println("  GET  /api/scrape/latest")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
