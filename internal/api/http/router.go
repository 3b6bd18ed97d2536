package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"hotelops-backend/internal/security"
	"hotelops-backend/internal/service"
)

// RouterConfig bundles the dependencies of the admin API router.
type RouterConfig struct {
	Auth      service.AuthService
	Analysis  service.AnalysisService
	Snapshots service.SnapshotService
	Checkouts service.CheckoutService
	Folios    service.FolioService
	Tokens    security.TokenManager
}

// NewRouter builds the admin API. Everything under /api/v1 except /auth/login
// and /healthz requires a valid access token.
func NewRouter(cfg RouterConfig) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware, LoggingMiddleware)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	authHandler := NewAuthHandler(cfg.Auth)
	router.HandleFunc("/api/v1/auth/login", authHandler.Login).Methods(http.MethodPost)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(cfg.Tokens))

	analysisHandler := NewAnalysisHandler(cfg.Analysis, cfg.Snapshots)
	api.HandleFunc("/finance/snapshot", analysisHandler.GetSnapshot).Methods(http.MethodGet)
	api.HandleFunc("/finance/analysis", analysisHandler.AnalyzeRules).Methods(http.MethodGet)
	api.HandleFunc("/finance/analysis/ai", analysisHandler.AnalyzeAI).Methods(http.MethodGet)
	api.HandleFunc("/finance/reports/latest", analysisHandler.GetLatestReport).Methods(http.MethodGet)

	checkoutHandler := NewCheckoutHandler(cfg.Checkouts, cfg.Folios)
	api.HandleFunc("/checkouts", checkoutHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/checkouts/{id:[0-9]+}/folio", checkoutHandler.GetFolio).Methods(http.MethodGet)
	api.HandleFunc("/checkouts/{id:[0-9]+}/finalize", checkoutHandler.Finalize).Methods(http.MethodPost)
	api.HandleFunc("/checkouts/{id:[0-9]+}/payments", checkoutHandler.RecordPayment).Methods(http.MethodPost)

	transactionHandler := NewTransactionHandler(cfg.Folios)
	api.HandleFunc("/transactions", transactionHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/transactions", transactionHandler.Append).Methods(http.MethodPost)

	return router
}
