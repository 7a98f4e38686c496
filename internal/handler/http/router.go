package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftpay-app/shiftpay-backend-go/internal/handler/http/middleware"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	payPeriodHandler PayPeriodHandler,
	invoiceHandler InvoiceHandler,
	walletHandler WalletHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftpay-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/pay-periods", func(r chi.Router) {
				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePayrollAdmin)
					r.Get("/", payPeriodHandler.List)
					r.Post("/", payPeriodHandler.Create)

					r.Route("/{periodID}", func(r chi.Router) {
						r.Post("/lock", payPeriodHandler.Lock)
						r.Post("/generate", payPeriodHandler.GenerateInvoices)
						r.Get("/invoices", payPeriodHandler.ListInvoices)
						r.Post("/pay-all", payPeriodHandler.PayAll)
					})
				})
			})

			r.Route("/invoices", func(r chi.Router) {
				r.Get("/my", invoiceHandler.ListMy)

				r.Route("/{invoiceID}", func(r chi.Router) {
					r.Get("/pdf", invoiceHandler.Payslip)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePayrollAdmin)
						r.Post("/approve", invoiceHandler.Approve)
						r.Post("/pay", invoiceHandler.Pay)
					})
				})
			})

			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", walletHandler.GetMy)
				r.Get("/transactions", walletHandler.ListMyTransactions)
			})
		})
	})

	return r
}
