package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"agridash/internal/advisor"
	"agridash/internal/config"
	"agridash/internal/dataset"
	"agridash/internal/logger"
	"agridash/internal/reports"
	"agridash/internal/storage"
)

// Server wires the dataset provider, analytics pipeline and advisor behind
// the HTTP API. All request handling is stateless; every request reloads and
// refilters the dataset.
type Server struct {
	cfg      *config.Config
	provider *dataset.Provider
	advisor  *advisor.Advisor
	renderer *reports.Renderer
	store    storage.Client
	log      *logger.Logger
}

// NewServer creates the application server on top of the given storage client
func NewServer(cfg *config.Config, store storage.Client) *Server {
	adv := advisor.New(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	return &Server{
		cfg:      cfg,
		provider: dataset.NewProvider(store, cfg.DataFile, cfg.DatasetURL),
		advisor:  adv,
		renderer: reports.NewRenderer(adv),
		store:    store,
		log:      logger.GetGlobalLogger().WithComponent("server"),
	}
}

// Routes builds the chi router with CORS and all API endpoints
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/report", s.handleReport)

	r.Route("/api", func(api chi.Router) {
		api.Get("/dashboard-data", s.handleDashboardData)
		api.Get("/clustering-data", s.handleClusteringData)
		api.Get("/anomaly-chart-data", s.handleAnomalyChartData)
		api.Get("/forecast-data", s.handleForecastData)
		api.Get("/maintenance-data", s.handleMaintenanceData)
		api.Get("/carbon-data", s.handleCarbonData)
		api.Get("/sensor-data", s.handleSensorData)
		api.Get("/anomalies", s.handleAnomalies)
		api.Get("/chart-data", s.handleChartData)

		api.Get("/ndvi-data", s.handleNDVIData)
		api.Get("/radar-data", s.handleRadarData)
		api.Get("/water-usage", s.handleWaterUsage)
		api.Get("/gauge-data", s.handleGaugeData)
		api.Get("/weather-forecast", s.handleWeatherForecast)
		api.Get("/price-prediction", s.handlePricePrediction)
		api.Get("/weather-impact", s.handleWeatherImpact)

		api.Post("/activate-valves", s.handleActivateValves)
		api.Post("/toggle-valve", s.handleToggleValve)
		api.Post("/save-settings", s.handleSaveSettings)
	})

	return r
}

// requestLogger logs each request with its duration
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request handled", map[string]interface{}{
			"method":      r.Method,
			"path":        r.URL.Path,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	})
}

// Close releases the underlying storage client
func (s *Server) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
