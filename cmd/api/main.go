package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/daryllundy/resume-builder-sub000/config"
	"github.com/daryllundy/resume-builder-sub000/internal/bootstrap"
	v1 "github.com/daryllundy/resume-builder-sub000/internal/delivery/http/v1"
	"github.com/daryllundy/resume-builder-sub000/internal/repository/local"
	"github.com/daryllundy/resume-builder-sub000/internal/storage/localkv"
	"github.com/daryllundy/resume-builder-sub000/internal/usecase"
	"github.com/daryllundy/resume-builder-sub000/pkg/llm/openrouter"
	"github.com/daryllundy/resume-builder-sub000/pkg/logger"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting resume builder backend", "port", cfg.Port, "data_path", cfg.DataPath)

	// 3. Open the local store
	store, err := localkv.Open(cfg.DataPath)
	if err != nil {
		logger.Log.Error("Failed to open local store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// 4. Setup Repositories
	db := local.NewDB(store)
	userRepo := local.NewUserRepository(db)
	resumeRepo := local.NewResumeRepository(db)
	jobRepo := local.NewJobPostRepository(db)
	historyRepo := local.NewHistoryRepository(db)

	// 5. Seed demo data (no-op when the store already holds anything)
	if cfg.DemoSeed {
		if err := bootstrap.Seed(context.Background(), userRepo, resumeRepo, jobRepo); err != nil {
			logger.Log.Warn("Demo seed failed", "error", err)
		}
	}

	// 6. Setup LLM client + UseCases
	model := openrouter.New(cfg.OpenRouterAPIKey, cfg.OpenRouterBaseURL, cfg.OpenRouterModel)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, userRepo)
	jobUC := usecase.NewJobPostUsecase(jobRepo, userRepo)
	historyUC := usecase.NewHistoryUsecase(historyRepo)
	tailorUC := usecase.NewTailorUsecase(model, historyRepo, userRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ResumeUC:  resumeUC,
		JobUC:     jobUC,
		HistoryUC: historyUC,
		TailorUC:  tailorUC,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
