// internal/artifacts/artifacts.go
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"

	"house-price-api/internal/common/config"
	apperrors "house-price-api/internal/common/errors"
	"house-price-api/internal/pipeline/predict"
)

// ModelDocument is the on-disk shape of a trained regression model, exported
// by the training pipeline as versioned JSON.
type ModelDocument struct {
	Version      string    `json:"version"`
	TrainedAt    string    `json:"trainedAt"`
	FeatureOrder []string  `json:"featureOrder"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// ScalerDocument is the on-disk shape of the fitted min-max transform.
type ScalerDocument struct {
	Version string  `json:"version"`
	Feature string  `json:"feature"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Load reads both artifacts and builds the predictor, verifying structural
// compatibility. Any failure here is an InferenceError: a malformed deployment
// that per-request retries cannot fix.
func Load(cfg config.ArtifactsConfig) (*predict.Predictor, error) {
	model, err := LoadModel(cfg.ModelPath)
	if err != nil {
		return nil, err
	}

	scaler, err := LoadScaler(cfg.ScalerPath)
	if err != nil {
		return nil, err
	}

	return predict.New(scaler, model)
}

func LoadModel(path string) (*predict.LinearModel, error) {
	var doc ModelDocument
	if err := readDocument(path, &doc); err != nil {
		return nil, err
	}
	if len(doc.FeatureOrder) == 0 || len(doc.Coefficients) == 0 {
		return nil, apperrors.NewInferenceError(
			apperrors.ErrCodeArtifactLoadFailed,
			fmt.Sprintf("model document %s has no features", path), nil,
		)
	}
	return &predict.LinearModel{
		FeatureOrder: doc.FeatureOrder,
		Coefficients: doc.Coefficients,
		Intercept:    doc.Intercept,
		Version:      doc.Version,
	}, nil
}

func LoadScaler(path string) (*predict.MinMaxTransform, error) {
	var doc ScalerDocument
	if err := readDocument(path, &doc); err != nil {
		return nil, err
	}
	if doc.Feature == "" {
		return nil, apperrors.NewInferenceError(
			apperrors.ErrCodeArtifactLoadFailed,
			fmt.Sprintf("scaler document %s names no feature", path), nil,
		)
	}
	return &predict.MinMaxTransform{
		Feature: doc.Feature,
		Min:     doc.Min,
		Max:     doc.Max,
		Version: doc.Version,
	}, nil
}

func readDocument(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.NewInferenceError(
			apperrors.ErrCodeArtifactLoadFailed,
			fmt.Sprintf("read artifact %s", path), err,
		)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.NewInferenceError(
			apperrors.ErrCodeArtifactLoadFailed,
			fmt.Sprintf("parse artifact %s", path), err,
		)
	}
	return nil
}
