package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"quizmaker-backend/internal/handlers"
	"quizmaker-backend/internal/middleware"
)

func New(
	jwtAuth *middleware.JWTAuth,
	authHandler *handlers.AuthHandler,
	quizHandler *handlers.QuizHandler,
	resultHandler *handlers.ResultHandler,
	dashboardHandler *handlers.DashboardHandler,
	frontendURL string,
	authRateLimit int,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	authLimiter := middleware.NewRateLimiter(authRateLimit, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {

		// ──── Auth Routes (public) ────
		r.Route("/auth", func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Get("/verify-email", authHandler.VerifyEmail)
			r.Post("/resend-verification", authHandler.ResendVerification)

			// Logout requires auth
			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// ──── Quiz Routes ────
		// Path spelling is part of the public API; clients depend on it.
		r.Route("/quizzez", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Post("/create", quizHandler.Create)
			r.Put("/edit", quizHandler.Edit)
			r.Delete("/delete", quizHandler.Delete)
			r.Get("/", quizHandler.List)
			r.Get("/{quizId}", quizHandler.Get)
			r.Post("/{quizId}/take", resultHandler.Take)
			r.Post("/result", resultHandler.Submit)
			r.Get("/take-result/{quizId}/{userId}", resultHandler.LatestResult)
		})

		// ──── Dashboard ────
		r.Route("/dashboard", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", dashboardHandler.Quizzes)
		})
	})

	return r
}
