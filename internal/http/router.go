package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/kcherng/ledgerkit/internal/auth"
	"github.com/kcherng/ledgerkit/internal/http/authtoken"
	"github.com/kcherng/ledgerkit/internal/http/card"
	"github.com/kcherng/ledgerkit/internal/http/category"
	"github.com/kcherng/ledgerkit/internal/http/dashboard"
	"github.com/kcherng/ledgerkit/internal/http/member"
	"github.com/kcherng/ledgerkit/internal/http/transaction"
)

func New(
	authSvc *auth.Service,
	authV1 *authtoken.Handler,
	transactionsV1 *transaction.Handler,
	dashboardV1 *dashboard.Handler,
	categoriesV1 *category.Handler,
	cardsV1 *card.Handler,
	membersV1 *member.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(authSvc.Middleware)

			r.Route("/transactions", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				transactionsV1.Routes(r)
			})

			r.Route("/dashboard", dashboardV1.Routes)

			r.Route("/categories", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				categoriesV1.Routes(r)
			})

			r.Route("/cards", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				cardsV1.Routes(r)
			})

			r.Route("/members", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				membersV1.Routes(r)
			})
		})
	})

	return router
}
