package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/Ptr234/christheartMinistrieswebsitegg/config"
	"github.com/Ptr234/christheartMinistrieswebsitegg/data"
	"github.com/Ptr234/christheartMinistrieswebsitegg/handlers"
	"github.com/Ptr234/christheartMinistrieswebsitegg/middleware"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Datasets struct {
		Branches int `json:"branches"`
		Events   int `json:"events"`
		Services int `json:"services"`
		Schedule int `json:"schedule"`
	} `json:"datasets"`
	Error string `json:"error,omitempty"`
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status: "ok",
	}

	// The site cannot function with empty datasets
	if len(data.Branches) == 0 || len(data.Events) == 0 || len(data.WeeklySchedule) == 0 {
		response.Status = "error"
		response.Error = "One or more datasets are empty"
	}

	response.Datasets.Branches = len(data.Branches)
	response.Datasets.Events = len(data.Events)
	response.Datasets.Services = len(data.Services)
	response.Datasets.Schedule = len(data.WeeklySchedule)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func main() {
	startTime := time.Now()
	log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

	// Load environment variables first
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("No PORT environment variable found, using default: %s", port)
	}

	// Load datasets (built-in defaults plus optional YAML overrides)
	log.Println("Loading datasets...")
	if err := config.LoadData(); err != nil {
		log.Fatalf("Failed to load datasets: %v", err)
	}

	// Initialize caches and handler dependencies
	config.InitCache()
	handlers.Init()

	// Background sermon cache refresh
	scheduler := cron.New()
	if spec := config.GetSermonRefreshCron(); spec != "" {
		if _, err := scheduler.AddFunc(spec, handlers.RefreshSermonCache); err != nil {
			log.Printf("Warning: invalid sermon refresh schedule %q: %v", spec, err)
		} else {
			log.Printf("Sermon cache refresh scheduled: %s", spec)
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	r := mux.NewRouter()

	// CORS configuration
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8080",
			"https://christsheartministries.org",
			"https://www.christsheartministries.org",
			"https://ptr234.github.io",
		},
		AllowedMethods: []string{
			"GET", "POST", "OPTIONS",
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Requested-With",
			"Origin",
		},
		ExposedHeaders: []string{
			"Content-Length",
			"Content-Type",
			"Content-Disposition",
		},
		AllowCredentials: false,
		MaxAge:           86400,
	})

	// Apply middlewares in correct order
	r.Use(middleware.CORSDebugMiddleware)
	r.Use(corsHandler.Handler)
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.CompressHandler)

	// API routes
	api := r.PathPrefix("/api/v1").Subrouter()
	registerRoutes(api)
	log.Println("Routes registered successfully")

	// Health check endpoint
	api.HandleFunc("/health/detailed", healthCheck).Methods("GET")

	// Create server with optimized timeouts
	srv := &http.Server{
		Handler:           r,
		Addr:              ":" + port,
		WriteTimeout:      15 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Create error channel for server errors
	serverErrors := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on port %s...", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			serverErrors <- err
		}
	}()

	log.Printf("Server is running at http://localhost:%s", port)
	log.Printf("Health check endpoint: http://localhost:%s/api/v1/health", port)
	log.Printf("Calendar endpoint: http://localhost:%s/api/v1/events/calendar.ics", port)

	// Handle graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Wait for shutdown signal or server error
	select {
	case <-stop:
		log.Println("Shutdown signal received")
	case err := <-serverErrors:
		log.Printf("Server error received: %v", err)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	} else {
		log.Println("Server shutdown completed successfully")
	}
}

func registerRoutes(api *mux.Router) {
	// Branch routes
	api.HandleFunc("/branches", handlers.GetBranches).Methods("GET")
	api.HandleFunc("/branches/nearest", handlers.FindNearestBranches).Methods("POST", "OPTIONS")
	api.HandleFunc("/branches/{id}", handlers.GetBranchDetails).Methods("GET")

	// Event routes
	api.HandleFunc("/events", handlers.GetEvents).Methods("GET")
	api.HandleFunc("/events/upcoming", handlers.GetUpcomingEvents).Methods("GET")
	api.HandleFunc("/events/promo", handlers.GetPromoEvent).Methods("GET")
	api.HandleFunc("/events/calendar.ics", handlers.GetEventsCalendar).Methods("GET")
	api.HandleFunc("/events/{id}", handlers.GetEventDetails).Methods("GET")

	// Service routes
	api.HandleFunc("/services", handlers.GetServices).Methods("GET")
	api.HandleFunc("/services/live", handlers.GetLiveService).Methods("GET")
	api.HandleFunc("/services/next", handlers.GetNextService).Methods("GET")
	api.HandleFunc("/services/{id}", handlers.GetServiceDetails).Methods("GET")

	// Sermon routes
	api.HandleFunc("/sermons", handlers.GetSermons).Methods("GET")

	// Health check
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	// Sitemap routes
	api.HandleFunc("/sitemaps", handlers.GetSitemapIndex).Methods("GET")
	api.HandleFunc("/sitemaps/branches", handlers.GetBranchesSitemap).Methods("GET")
	api.HandleFunc("/sitemaps/events", handlers.GetEventsSitemap).Methods("GET")
	api.HandleFunc("/sitemaps/services", handlers.GetServicesSitemap).Methods("GET")
}
