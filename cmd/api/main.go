package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/finwise/advisor/internal/config"
	"github.com/finwise/advisor/internal/handler"
	"github.com/finwise/advisor/internal/middleware"
	"github.com/finwise/advisor/internal/rules"
	"github.com/finwise/advisor/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Load reference data once at startup; regulatory updates ship as
	// override files, not code changes.
	catalog, err := rules.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		logger.Fatalf("Failed to load investment catalog: %v", err)
	}
	slabs, err := rules.LoadSlabTable(cfg.SlabsPath)
	if err != nil {
		logger.Fatalf("Failed to load tax slab table: %v", err)
	}
	logger.Infof("Reference data loaded: catalog %s (%d entries), slabs %s",
		catalog.Version, len(catalog.Entries), slabs.Version)

	// Initialize layers
	svc := service.NewService(logger, catalog, slabs)
	h := handler.NewHandler(svc)

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(logger))
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/snapshot", h.Snapshot).Methods("POST")
	r.HandleFunc("/readiness", h.Readiness).Methods("POST")
	r.HandleFunc("/investments/suggestions", h.Suggestions).Methods("POST")
	r.HandleFunc("/loans/repayment-plan", h.RepaymentPlan).Methods("POST")
	r.HandleFunc("/tax/estimate", h.TaxEstimate).Methods("POST")
	r.HandleFunc("/tax/itr-form", h.ITRForm).Methods("POST")
	r.HandleFunc("/tax/deductions/suggestions", h.DeductionSuggestions).Methods("POST")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
