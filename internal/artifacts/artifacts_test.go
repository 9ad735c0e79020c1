// internal/artifacts/artifacts_test.go
package artifacts

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"house-price-api/internal/common/config"
	apperrors "house-price-api/internal/common/errors"
	"house-price-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func writeDocument(t *testing.T, dir, name string, doc interface{}) string {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func createModelDocument() ModelDocument {
	coefficients := make([]float64, len(models.FeatureOrder))
	for i := range coefficients {
		coefficients[i] = float64(i + 1)
	}
	return ModelDocument{
		Version:      "1.2.0",
		TrainedAt:    "2025-11-04",
		FeatureOrder: models.FeatureOrder,
		Coefficients: coefficients,
		Intercept:    1920437.85,
	}
}

func createScalerDocument() ScalerDocument {
	return ScalerDocument{Version: "1.2.0", Feature: "area", Min: 1650, Max: 16200}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestLoad_Success(t *testing.T) {
	dir := t.TempDir()
	cfg := config.ArtifactsConfig{
		ModelPath:  writeDocument(t, dir, "model.json", createModelDocument()),
		ScalerPath: writeDocument(t, dir, "scaler.json", createScalerDocument()),
	}

	predictor, err := Load(cfg)
	require.NoError(t, err)
	require.NotNil(t, predictor)
	assert.Equal(t, "1.2.0", predictor.ModelVersion())
}

func TestLoad_Failures(t *testing.T) {
	dir := t.TempDir()

	modelPath := writeDocument(t, dir, "model.json", createModelDocument())
	scalerPath := writeDocument(t, dir, "scaler.json", createScalerDocument())

	misordered := createModelDocument()
	misordered.FeatureOrder = append([]string(nil), models.FeatureOrder...)
	misordered.FeatureOrder[0], misordered.FeatureOrder[1] = misordered.FeatureOrder[1], misordered.FeatureOrder[0]

	truncated := createModelDocument()
	truncated.FeatureOrder = truncated.FeatureOrder[:10]
	truncated.Coefficients = truncated.Coefficients[:10]

	malformedPath := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(malformedPath, []byte("{not json"), 0o644))

	tests := []struct {
		name         string
		cfg          config.ArtifactsConfig
		expectedCode apperrors.ErrorCode
	}{
		{
			name: "missing model file",
			cfg: config.ArtifactsConfig{
				ModelPath:  filepath.Join(dir, "absent.json"),
				ScalerPath: scalerPath,
			},
			expectedCode: apperrors.ErrCodeArtifactLoadFailed,
		},
		{
			name: "missing scaler file",
			cfg: config.ArtifactsConfig{
				ModelPath:  modelPath,
				ScalerPath: filepath.Join(dir, "absent.json"),
			},
			expectedCode: apperrors.ErrCodeArtifactLoadFailed,
		},
		{
			name: "malformed model document",
			cfg: config.ArtifactsConfig{
				ModelPath:  malformedPath,
				ScalerPath: scalerPath,
			},
			expectedCode: apperrors.ErrCodeArtifactLoadFailed,
		},
		{
			name: "feature order mismatch",
			cfg: config.ArtifactsConfig{
				ModelPath:  writeDocument(t, dir, "misordered.json", misordered),
				ScalerPath: scalerPath,
			},
			expectedCode: apperrors.ErrCodeModelIncompatible,
		},
		{
			name: "wrong arity",
			cfg: config.ArtifactsConfig{
				ModelPath:  writeDocument(t, dir, "truncated.json", truncated),
				ScalerPath: scalerPath,
			},
			expectedCode: apperrors.ErrCodeModelIncompatible,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			predictor, err := Load(tc.cfg)
			assert.Nil(t, predictor)
			require.Error(t, err)

			ie, ok := apperrors.AsInferenceError(err)
			require.True(t, ok, "expected an InferenceError, got %T", err)
			assert.Equal(t, tc.expectedCode, ie.Code)
		})
	}
}

func TestLoadScaler_MissingFeature(t *testing.T) {
	dir := t.TempDir()
	path := writeDocument(t, dir, "scaler.json", ScalerDocument{Min: 0, Max: 1})

	scaler, err := LoadScaler(path)
	assert.Nil(t, scaler)

	ie, ok := apperrors.AsInferenceError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeArtifactLoadFailed, ie.Code)
}
