package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/dsa-sprint/backend/internal/cache"
	"github.com/dsa-sprint/backend/internal/database"
	"github.com/dsa-sprint/backend/internal/evaluator"
	"github.com/dsa-sprint/backend/internal/planner"
	"github.com/dsa-sprint/backend/internal/provider"
	"github.com/dsa-sprint/backend/internal/roadmap"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

const cacheTTL = 6 * time.Hour

func main() {
	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize LLM client
	llm, err := provider.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize LLM provider: %v", err)
	}
	log.Printf("Using model %s", llm.ModelID())

	// Initialize handlers
	plannerHandler := planner.NewHandler(planner.NewService(llm, cache.New(cacheTTL)))

	evalService := evaluator.NewService(llm, cache.New(cacheTTL), evaluator.NewStore(db))
	evalHandler := evaluator.NewHandler(evalService)

	roadmapService := roadmap.NewService(llm, roadmap.NewStore(db))
	roadmapHandler := roadmap.NewHandler(roadmapService)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/generate", plannerHandler.GeneratePlan).Methods("POST")

	api.HandleFunc("/attempt/evaluate", evalHandler.EvaluateAttempt).Methods("POST")
	api.HandleFunc("/attempt/history", evalHandler.AttemptHistory).Methods("GET")

	api.HandleFunc("/profile", roadmapHandler.CreateProfile).Methods("POST")
	api.HandleFunc("/user", roadmapHandler.GetUser).Methods("GET")
	api.HandleFunc("/plan/current", roadmapHandler.CurrentPlan).Methods("GET")
	api.HandleFunc("/plan/generate", roadmapHandler.GeneratePlan).Methods("POST")
	api.HandleFunc("/daily/{date}", roadmapHandler.DailyTask).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
