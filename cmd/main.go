// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"flashdeck/internal/cardgen"
	"flashdeck/internal/config"
	"flashdeck/internal/handlers"
	"flashdeck/internal/middleware"
	"flashdeck/internal/repository"
	"flashdeck/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"gorm.io/gorm"
)

func main() {
	// Temporary logger until the config decides the real one.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// The database is optional: without DATABASE_URL the API still serves
	// the extraction, generation and parse routes, and every deck-backed
	// route answers 503 through the RequireDatabase gate.
	var db *gorm.DB
	if config.Cfg.Database.URL != "" {
		var err error
		db, err = repository.NewDB(config.Cfg.Database.URL, logger)
		if err != nil {
			slog.Error("Error initializing database", slog.Any("error", err))
			os.Exit(1)
		}
		sqlDB, err := db.DB()
		if err != nil {
			slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := sqlDB.Close(); err != nil {
				slog.Error("Error closing database connection", slog.Any("error", err))
			} else {
				slog.Info("Database connection closed.")
			}
		}()
	} else {
		slog.Warn("No database URL configured; deck routes will answer 503")
	}

	// Dependency injection. Handlers for database-backed routes are only
	// built when a database is present; the RequireDatabase gate keeps
	// requests from ever reaching a nil handler otherwise.
	var (
		deckHandler    *handlers.DeckHandler
		cardHandler    *handlers.FlashcardHandler
		sessionHandler *handlers.SessionHandler
		sharedHandler  *handlers.SharedResponseHandler
	)
	if db != nil {
		deckRepo := repository.NewGormDeckRepository()
		cardRepo := repository.NewGormFlashcardRepository()
		sessRepo := repository.NewGormSessionRepository()
		sharedRepo := repository.NewGormSharedResponseRepository()

		deckService := service.NewDeckService(db, deckRepo, cardRepo, sessRepo, sharedRepo)
		cardService := service.NewFlashcardService(db, cardRepo, deckRepo)
		sessionService := service.NewSessionService(db, deckRepo, sessRepo, config.Cfg.App.SessionLimit)
		sharedService := service.NewSharedResponseService(db, deckRepo, sharedRepo)

		deckHandler = handlers.NewDeckHandler(deckService, logger)
		cardHandler = handlers.NewFlashcardHandler(cardService, logger)
		sessionHandler = handlers.NewSessionHandler(sessionService, logger)
		sharedHandler = handlers.NewSharedResponseHandler(sharedService, logger)
	}

	generator := cardgen.New(config.Cfg.OpenAI.APIKey, config.Cfg.OpenAI.Model)
	cardgenHandler := handlers.NewCardgenHandler(generator, config.Cfg.App.MaxGenerateCards, logger)
	parseHandler := handlers.NewParseHandler(logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Database-backed routes.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireDatabase(db != nil))

		r.Route("/decks", func(r chi.Router) {
			r.Get("/", deckHandler.GetDecks)
			r.Post("/", deckHandler.PostDeck)
			r.Delete("/", deckHandler.DeleteDeck)
			r.Get("/{deck_id}", deckHandler.GetDeck)
		})

		r.Route("/flashcards", func(r chi.Router) {
			r.Post("/", cardHandler.PostFlashcard)
			r.Put("/", cardHandler.PutFlashcard)
			r.Patch("/", cardHandler.PatchFlashcard)
			r.Delete("/", cardHandler.DeleteFlashcard)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.PostSession)
			r.Get("/", sessionHandler.GetSessions)
		})

		r.Route("/shared-responses", func(r chi.Router) {
			r.Post("/", sharedHandler.PostSharedResponse)
			r.Get("/", sharedHandler.GetSharedResponses)
		})
	})

	// Completion and parsing routes work without a database.
	r.Post("/extract", cardgenHandler.PostExtract)
	r.Post("/generate", cardgenHandler.PostGenerate)
	r.Post("/parse", parseHandler.PostParse)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			sqlDB, err := db.DB()
			if err != nil {
				slog.ErrorContext(r.Context(), "Health check failed: could not get DB object", slog.Any("error", err))
				http.Error(w, "Health check failed", http.StatusInternalServerError)
				return
			}
			if err := sqlDB.PingContext(r.Context()); err != nil {
				slog.ErrorContext(r.Context(), "Health check failed: could not ping DB", slog.Any("error", err))
				http.Error(w, "Health check failed", http.StatusInternalServerError)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
