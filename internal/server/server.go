// internal/server/server.go
package server

import (
	"net/http"
	"time"

	"house-price-api/internal/common/config"
	"house-price-api/internal/common/logger"
	"house-price-api/internal/common/observability"
	"house-price-api/internal/pipeline/predict"
	"house-price-api/internal/pipeline/validate"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type httpServer struct {
	validator *validate.Validator
	predictor *predict.Predictor
	logger    logger.Logger
	obs       *observability.Observability
}

func newHTTPServer(validator *validate.Validator, predictor *predict.Predictor, log logger.Logger, obs *observability.Observability) *httpServer {
	return &httpServer{
		validator: validator,
		predictor: predictor,
		logger:    log,
		obs:       obs,
	}
}

func (s *httpServer) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/predict", s.Predict).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.Healthz).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	// pprof registers itself on the default mux
	r.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)
	r.Use(s.requestIDMiddleware)
	return r
}

// NewHTTPServer wires the prediction pipeline behind the wire contract:
// POST /predict plus the operational endpoints.
func NewHTTPServer(cfg config.ServerConfig, validator *validate.Validator, predictor *predict.Predictor, log logger.Logger, obs *observability.Observability) *http.Server {
	s := newHTTPServer(validator, predictor, log, obs)
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      s.routes(),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Millisecond,
	}
}

func (s *httpServer) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}
