package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Viccyace/faith-finance-reset/internal/db"
	"github.com/Viccyace/faith-finance-reset/internal/handlers"
	mw "github.com/Viccyace/faith-finance-reset/internal/middleware"
)

func mustGetenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Amounts are decimals everywhere; emit them as JSON numbers, not
	// quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	port := mustGetenv("PORT", "8080")

	dbConn, err := sqlx.Open("pgx", databaseURL)
	if err != nil {
		logger.Fatal("failed to open db", zap.Error(err))
	}
	dbConn.SetMaxOpenConns(10)
	dbConn.SetConnMaxLifetime(2 * time.Hour)
	if err = dbConn.Ping(); err != nil {
		logger.Fatal("failed to ping db", zap.Error(err))
	}
	if err := db.RunMigrations(dbConn); err != nil {
		logger.Fatal("failed migrations", zap.Error(err))
	}
	if err := db.InitReportCache(); err != nil {
		logger.Fatal("failed to init report cache", zap.Error(err))
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(mw.StructuredLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := handlers.NewAuthHandler(dbConn, []byte(jwtSecret))
	userHandler := handlers.NewUserHandler(dbConn)
	budgetHandler := handlers.NewBudgetHandler(dbConn)
	transactionHandler := handlers.NewTransactionHandler(dbConn)
	givingHandler := handlers.NewGivingHandler(dbConn)
	prayerHandler := handlers.NewPrayerHandler(dbConn)
	resetHandler := handlers.NewResetHandler(dbConn)
	reportHandler := handlers.NewReportHandler(dbConn)
	referenceHandler := handlers.NewReferenceHandler()
	authMW := mw.NewAuthMiddleware([]byte(jwtSecret))

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/signup", authHandler.Signup)
		api.Post("/auth/login", authHandler.Login)
		api.Group(func(pr chi.Router) {
			pr.Use(authMW.RequireAuth)

			pr.Get("/user", userHandler.GetMe)
			pr.Put("/user", userHandler.UpdateMe)
			pr.Patch("/user", userHandler.ChangePassword)

			pr.Get("/budget", budgetHandler.Get)
			pr.Post("/budget", budgetHandler.Upsert)

			pr.Get("/transactions", transactionHandler.List)
			pr.Post("/transactions", transactionHandler.Create)
			pr.Delete("/transactions", transactionHandler.Delete)

			pr.Get("/giving", givingHandler.List)
			pr.Post("/giving", givingHandler.Create)
			pr.Delete("/giving", givingHandler.Delete)

			pr.Get("/prayer", prayerHandler.List)
			pr.Post("/prayer", prayerHandler.Create)
			pr.Put("/prayer", prayerHandler.UpdateGoal)
			pr.Delete("/prayer", prayerHandler.Delete)

			pr.Get("/reset", resetHandler.Get)
			pr.Get("/reset/today", resetHandler.Today)
			pr.Put("/reset", resetHandler.Update)

			pr.Get("/reports", reportHandler.Get)

			pr.Get("/reference/countries", referenceHandler.Countries)
			pr.Get("/reference/currencies", referenceHandler.Currencies)
			pr.Get("/reference/goals", referenceHandler.Goals)
			pr.Get("/reference/categories", referenceHandler.DefaultCategories)
			pr.Get("/reference/scriptures", referenceHandler.Scriptures)
			pr.Get("/reference/tasks", referenceHandler.Tasks)
		})
	})

	srv := &http.Server{Addr: ":" + port, Handler: r}
	go func() {
		logger.Info("server starting", zap.String("addr", ":"+port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown initiated")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info("server stopped")
}
