package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shivsegv/campussetu/internal/api"
	"github.com/shivsegv/campussetu/internal/app/service"
	"github.com/shivsegv/campussetu/internal/common/security"
	"github.com/shivsegv/campussetu/internal/domain/repository"
	"github.com/shivsegv/campussetu/internal/platform/config"
	"github.com/shivsegv/campussetu/internal/platform/store"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	fmt.Println("JWT initialized.")

	// 3. Open the persisted collection store
	backend, closeStore, err := openStore(context.Background())
	if err != nil {
		log.Fatalf("Could not open %s store: %v", config.AppConfig.StoreBackend, err)
	}
	defer closeStore()
	fmt.Printf("Store backend %q ready.\n", config.AppConfig.StoreBackend)

	// A backend outage after startup degrades to in-memory data instead of
	// failing requests.
	st := store.NewFallback(backend)

	// 4. Initialize Repositories
	userRepo := repository.NewStoreUserRepository(st)
	jobRepo := repository.NewStoreJobRepository(st)
	appRepo := repository.NewStoreApplicationRepository(st)
	resumeRepo := repository.NewStoreResumeRepository(st)
	referralRepo := repository.NewStoreReferralRepository(st)
	alumniRepo := repository.NewStoreAlumniRepository(st)
	insightRepo := repository.NewStoreInsightRepository(st)

	// 5. Initialize Services
	authService := service.NewAuthService(userRepo)
	jobService := service.NewJobService(jobRepo)
	applicationService := service.NewApplicationService(appRepo, config.AppConfig.AllowDuplicateApplications)
	resumeService := service.NewResumeService(resumeRepo, userRepo, jobRepo)
	referralService := service.NewReferralService(referralRepo, userRepo)
	directoryService := service.NewDirectoryService(alumniRepo, insightRepo)

	// 6. Initialize Router & HTTP Server
	router := api.NewRouter(authService, jobService, applicationService, resumeService, referralService, directoryService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}

func openStore(ctx context.Context) (store.Store, func(), error) {
	switch config.AppConfig.StoreBackend {
	case "redis":
		rs, err := store.NewRedis(ctx)
		if err != nil {
			return nil, nil, err
		}
		return rs, func() { rs.Close() }, nil
	case "postgres":
		ps, err := store.NewPostgres(ctx)
		if err != nil {
			return nil, nil, err
		}
		return ps, func() { ps.Close() }, nil
	case "memory":
		return store.NewMemory(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", config.AppConfig.StoreBackend)
	}
}
