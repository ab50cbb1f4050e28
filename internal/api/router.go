package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"

	"github.com/shivsegv/campussetu/internal/api/handler"
	"github.com/shivsegv/campussetu/internal/app/service"
	"github.com/shivsegv/campussetu/internal/common/security"
)

func NewRouter(
	authService *service.AuthService,
	jobService *service.JobService,
	applicationService *service.ApplicationService,
	resumeService *service.ResumeService,
	referralService *service.ReferralService,
	directoryService *service.DirectoryService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies a bearer token when present and puts its claims in the context;
	// the Authenticator middleware on protected groups enforces it.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// API v1 Routes
	r.Route("/api/v1", func(v1 chi.Router) {
		authHandler := handler.NewAuthHandler(authService)
		v1.Group(func(authRoutes chi.Router) {
			authHandler.RegisterRoutes(authRoutes)
		})

		jobHandler := handler.NewJobHandler(jobService)
		v1.Route("/jobs", jobHandler.RegisterRoutes)

		applicationHandler := handler.NewApplicationHandler(applicationService)
		v1.Route("/applications", applicationHandler.RegisterRoutes)

		resumeHandler := handler.NewResumeHandler(resumeService)
		v1.Route("/resume", resumeHandler.RegisterRoutes)

		referralHandler := handler.NewReferralHandler(referralService)
		v1.Route("/referrals", referralHandler.RegisterRoutes)

		directoryHandler := handler.NewDirectoryHandler(directoryService)
		v1.Route("/alumni", directoryHandler.RegisterAlumniRoutes)
		v1.Route("/insights", directoryHandler.RegisterInsightRoutes)
	})

	return r
}
