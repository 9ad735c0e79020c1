// internal/server/handlers.go
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	apperrors "house-price-api/internal/common/errors"
	"house-price-api/internal/common/logger"
	"house-price-api/internal/common/metrics"
	"house-price-api/internal/models"
	"house-price-api/internal/pipeline/engineer"
)

// maxBodyBytes bounds the request body; a feature record is a few hundred
// bytes at most.
const maxBodyBytes = 1 << 16

// Predict runs the pipeline: validate, engineer, predict, shape. Validation
// failures short-circuit before any feature engineering or model invocation.
func (s *httpServer) Predict(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := w.Header().Get("X-Request-ID")
	log := s.logger.WithFields(map[string]interface{}{"requestId": requestID})

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.writeValidationError(w, r, start, log, apperrors.NewValidationError(apperrors.FieldError{
			Field:   "body",
			Code:    apperrors.ErrCodeInvalidPayload,
			Message: "unable to read request body",
		}))
		return
	}

	record, err := s.validator.Validate(body)
	if err != nil {
		if ve, ok := apperrors.AsValidationError(err); ok {
			s.writeValidationError(w, r, start, log, ve)
			return
		}
		s.writeInferenceError(w, r, start, log, err)
		return
	}

	vector := engineer.Engineer(record)
	prediction := s.predictor.Predict(vector)

	log.Info("prediction served", map[string]interface{}{
		"prediction": prediction,
		"durationMs": time.Since(start).Milliseconds(),
	})
	metrics.PredictionsServed.WithLabelValues("success").Inc()
	metrics.PredictionDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())
	if s.obs != nil {
		s.obs.RecordRequest(r.Context(), "success")
		s.obs.RecordDuration(r.Context(), time.Since(start), "success")
	}

	s.writeJSON(w, http.StatusOK, models.PredictionResponse{Prediction: prediction})
}

// Healthz reports artifact readiness for deployment probes.
func (s *httpServer) Healthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:       "ok",
		ModelVersion: s.predictor.ModelVersion(),
	})
}

// Validation failures are caller-fixable: surfaced verbatim, never logged as a
// system fault.
func (s *httpServer) writeValidationError(w http.ResponseWriter, r *http.Request, start time.Time, log logger.Logger, ve *apperrors.ValidationError) {
	log.Info("request rejected", map[string]interface{}{
		"fields": ve.FieldNames(),
	})
	for _, field := range ve.FieldNames() {
		metrics.ValidationFailures.WithLabelValues(field).Inc()
	}
	metrics.PredictionsServed.WithLabelValues("invalid").Inc()
	metrics.PredictionDuration.WithLabelValues("invalid").Observe(time.Since(start).Seconds())
	if s.obs != nil {
		s.obs.RecordRequest(r.Context(), "invalid")
	}

	s.writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: ve.Error()})
}

// Inference failures are system faults: generic message to the caller, full
// cause to operators.
func (s *httpServer) writeInferenceError(w http.ResponseWriter, r *http.Request, start time.Time, log logger.Logger, err error) {
	callerMsg := "prediction service unavailable"
	if ie, ok := apperrors.AsInferenceError(err); ok {
		callerMsg = ie.CallerMessage()
	}
	log.Error("inference failure", map[string]interface{}{
		"error": err.Error(),
	})
	metrics.PredictionsServed.WithLabelValues("error").Inc()
	metrics.PredictionDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
	if s.obs != nil {
		s.obs.RecordRequest(r.Context(), "error")
	}

	s.writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: callerMsg})
}

func (s *httpServer) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", map[string]interface{}{
			"error": err,
		})
	}
}
