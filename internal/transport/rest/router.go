package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/frahmantamala/travel-budget/internal/auth"
	"github.com/frahmantamala/travel-budget/internal/budget"
	"github.com/frahmantamala/travel-budget/internal/expense"
	"github.com/frahmantamala/travel-budget/internal/plan"
	"github.com/frahmantamala/travel-budget/internal/transport/middleware"
	"github.com/frahmantamala/travel-budget/internal/transport/swagger"
	"github.com/frahmantamala/travel-budget/internal/user"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	planHandler *plan.Handler,
	budgetHandler *budget.Handler,
	expenseHandler *expense.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/register", userHandler.Register)
			sr.Post("/login", authHandler.Login)
			sr.Post("/refresh", authHandler.RefreshToken)
			sr.Post("/logout", authHandler.Logout)
		})

		// Protected routes that require authentication
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Get("/users/me", userHandler.GetCurrentUser)

			pr.Route("/plans", func(plr chi.Router) {
				plr.Post("/", planHandler.CreatePlan)
				plr.Get("/", planHandler.ListPlans)
				plr.Get("/{id}", planHandler.GetPlan)
				plr.Put("/{id}", planHandler.UpdatePlan)
				plr.Delete("/{id}", planHandler.DeletePlan)
			})

			pr.Route("/budgets", func(br chi.Router) {
				br.Post("/", budgetHandler.CreateBudget)
				br.Get("/", budgetHandler.ListBudgets)
				br.Get("/{id}", budgetHandler.GetBudget)
				br.Put("/{id}", budgetHandler.UpdateBudget)
				br.Get("/{id}/summary", budgetHandler.GetSummary)

				br.Post("/{id}/expenses", expenseHandler.CreateExpense)
				br.Get("/{id}/expenses", expenseHandler.ListBudgetExpenses)
			})

			pr.Route("/expenses", func(er chi.Router) {
				er.Get("/{id}", expenseHandler.GetExpense)
				er.Put("/{id}", expenseHandler.UpdateExpense)
				er.Delete("/{id}", expenseHandler.DeleteExpense)
			})
		})
	})
}
