package main

import (
	"fmt"
	"log"
	"net/http"

	"linguatutor/config"
	"linguatutor/db"
	"linguatutor/handlers"
	"linguatutor/services"
	"linguatutor/services/llm"
	"linguatutor/services/speech"
	"linguatutor/services/tutor"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	provider, err := llm.New(cfg.ModelConfig())
	if err != nil {
		log.Fatalf("Failed to initialize model provider: %v", err)
	}

	sessionRepo, err := db.NewSQLSessionRepository(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to initialize session database: %v", err)
	}
	defer sessionRepo.Close()

	lessonService := services.NewLessonService()
	lessonHandler := handlers.NewLessonHandler(lessonService)

	sessionService := services.NewSessionService(sessionRepo)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	engine := tutor.NewService(provider)
	tutorHandler := handlers.NewTutorHandler(engine, sessionService, lessonService, cfg.InvokeTimeout)

	var speechHandler *handlers.SpeechHandler
	if cfg.OpenAIAPIKey != "" {
		speechProvider, err := speech.NewWhisperProvider(cfg.OpenAIAPIKey)
		if err != nil {
			log.Fatalf("Failed to initialize speech provider: %v", err)
		}
		speechHandler = handlers.NewSpeechHandler(speechProvider)
	} else {
		log.Printf("[INFO] OPENAI_API_KEY not set, speech endpoints disabled")
	}

	router := mux.NewRouter()

	router.Use(corsMiddleware)
	router.Use(jsonMiddleware)

	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("OPTIONS")

	lessonHandler.RegisterRoutes(router)
	sessionHandler.RegisterRoutes(router)
	tutorHandler.RegisterRoutes(router)
	if speechHandler != nil {
		speechHandler.RegisterRoutes(router)
	}

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")

	addr := ":" + cfg.Port
	fmt.Printf("Server starting on port %s\n", cfg.Port)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}
