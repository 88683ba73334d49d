package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Gourav-Tailor/food-ai/internal/catalog"
	"github.com/Gourav-Tailor/food-ai/internal/command"
	"github.com/Gourav-Tailor/food-ai/internal/db"
	"github.com/Gourav-Tailor/food-ai/internal/nlu"
	"github.com/Gourav-Tailor/food-ai/internal/places"
	"github.com/Gourav-Tailor/food-ai/internal/router"
	"github.com/Gourav-Tailor/food-ai/internal/session"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	taxRate := envFloat("TAX_RATE", 0.05)
	deliveryFee := envFloat("DELIVERY_FEE", 20)

	// ───────────────────────── CATALOG ─────────────────────────
	var store *catalog.Store

	if os.Getenv("CATALOG_SOURCE") == "postgres" {
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()

		repo := catalog.NewPostgresRepository(pgDB)
		ctx := context.Background()

		if err := repo.InitSchema(ctx); err != nil {
			log.Fatal("❌ Catalog schema init failed:", err)
		}
		if err := repo.SeedIfEmpty(ctx); err != nil {
			log.Fatal("❌ Catalog seed failed:", err)
		}

		snapshot, err := repo.LoadSnapshot(ctx)
		if err != nil {
			log.Fatal("❌ Catalog load failed:", err)
		}
		store = snapshot
		log.Println("✅ Catalog loaded from PostgreSQL")
	} else {
		snapshot, err := catalog.NewStore(catalog.Seed())
		if err != nil {
			log.Fatal("❌ Built-in catalog invalid:", err)
		}
		store = snapshot
		log.Println("✅ Catalog loaded from built-in seed")
	}

	// ───────────────────────── NLU ─────────────────────────
	var nluClient nlu.Client

	switch os.Getenv("NLU_PROVIDER") {
	case "gemini":
		mustHaveEnv("GEMINI_API_KEY", "GEMINI_MODEL")
		nluClient = nlu.NewGeminiClient()
		log.Println("✅ NLU provider: gemini")
	case "groq":
		mustHaveEnv("GROQ_API_KEY")
		nluClient = nlu.NewGroqClient()
		log.Println("✅ NLU provider: groq")
	default:
		log.Println("⚠️  No NLU provider configured, using local matching only")
	}

	resolver := command.NewResolver(store, nluClient)

	// ───────────────────────── SESSIONS ─────────────────────────
	manager := session.NewManager(store, resolver, taxRate, deliveryFee)

	// ───────────────────────── HANDLERS ─────────────────────────
	catalogHandler := catalog.NewHandler(store)
	sessionHandler := session.NewHandler(manager)

	var placesHandler *places.Handler
	if os.Getenv("GOOGLE_API_KEY") != "" {
		placesHandler = places.NewHandler(places.NewClient())
	}

	// ───────────────────────── GIN ─────────────────────────
	r := router.NewRouter(catalogHandler, sessionHandler, placesHandler)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Println("🚀 API running at http://localhost:" + port)
	r.Run(":" + port)
}

// --------------------------------------------------
func mustHaveEnv(keys ...string) {
	for _, k := range keys {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("❌ Invalid %s: %s", key, raw)
	}
	return v
}
