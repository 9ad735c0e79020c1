// internal/pipeline/predict/predict_test.go
package predict

import (
	"math"
	"testing"

	apperrors "house-price-api/internal/common/errors"
	"house-price-api/internal/models"
	"house-price-api/internal/pipeline/engineer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestTransform() *MinMaxTransform {
	return &MinMaxTransform{Feature: "area", Min: 1650, Max: 16200, Version: "test"}
}

// createTestModel weights only the area and area_bedrooms slots so expected
// predictions are easy to compute by hand.
func createTestModel() *LinearModel {
	coefficients := make([]float64, len(models.FeatureOrder))
	coefficients[0] = 1000000 // area (normalized)
	coefficients[12] = 10     // area_bedrooms
	return &LinearModel{
		FeatureOrder: append([]string(nil), models.FeatureOrder...),
		Coefficients: coefficients,
		Intercept:    100000,
		Version:      "test",
	}
}

func createTestRecord() *models.RawFeatureRecord {
	return &models.RawFeatureRecord{
		Area: 7420, Bedrooms: 4, Bathrooms: 2, Stories: 3, Parking: 2,
		FurnishingStatus: 2, MainRoad: 1, AirConditioning: 1, PreferredArea: 1,
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestPredictor_Predict(t *testing.T) {
	p, err := New(createTestTransform(), createTestModel())
	require.NoError(t, err)

	vector := engineer.Engineer(createTestRecord())
	got := p.Predict(vector)

	scaled := (7420.0 - 1650.0) / (16200.0 - 1650.0)
	expected := 100000 + 1000000*scaled + 10*29680.0
	assert.Equal(t, expected, got)
}

func TestPredictor_Deterministic(t *testing.T) {
	p, err := New(createTestTransform(), createTestModel())
	require.NoError(t, err)

	vector := engineer.Engineer(createTestRecord())

	first := p.Predict(vector)
	second := p.Predict(vector)
	assert.Equal(t, first, second)
}

func TestPredictor_ExtrapolatesPastTrainingRange(t *testing.T) {
	transform := createTestTransform()
	p, err := New(transform, createTestModel())
	require.NoError(t, err)

	record := createTestRecord()
	record.Area = 20000 // above the training maximum of 16200
	vector := engineer.Engineer(record)

	assert.Greater(t, transform.Apply(record.Area), 1.0)

	got := p.Predict(vector)
	assert.False(t, math.IsNaN(got))
	assert.False(t, math.IsInf(got, 0))
}

func TestPredictor_DoesNotMutateVector(t *testing.T) {
	p, err := New(createTestTransform(), createTestModel())
	require.NoError(t, err)

	vector := engineer.Engineer(createTestRecord())
	p.Predict(vector)

	// The area slot must still hold the raw value after prediction.
	assert.Equal(t, 7420.0, vector.Raw.Area)
	assert.Equal(t, 7420.0, vector.Ordered()[0])
}

// ==========================
// Artifact Compatibility Tests
// ==========================

func TestNew_RejectsIncompatibleArtifacts(t *testing.T) {
	tests := []struct {
		name      string
		transform *MinMaxTransform
		model     *LinearModel
	}{
		{
			name:      "nil model",
			transform: createTestTransform(),
			model:     nil,
		},
		{
			name:      "degenerate transform bounds",
			transform: &MinMaxTransform{Feature: "area", Min: 5, Max: 5},
			model:     createTestModel(),
		},
		{
			name:      "transform feature unknown to model",
			transform: &MinMaxTransform{Feature: "altitude", Min: 0, Max: 1},
			model:     createTestModel(),
		},
		{
			name:      "arity mismatch",
			transform: createTestTransform(),
			model: &LinearModel{
				FeatureOrder: models.FeatureOrder[:15],
				Coefficients: make([]float64, 15),
			},
		},
		{
			name:      "coefficient count mismatch",
			transform: createTestTransform(),
			model: &LinearModel{
				FeatureOrder: models.FeatureOrder,
				Coefficients: make([]float64, 3),
			},
		},
		{
			name:      "feature order mismatch",
			transform: createTestTransform(),
			model: func() *LinearModel {
				m := createTestModel()
				m.FeatureOrder[0], m.FeatureOrder[1] = m.FeatureOrder[1], m.FeatureOrder[0]
				return m
			}(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := New(tc.transform, tc.model)
			assert.Nil(t, p)
			require.Error(t, err)

			_, ok := apperrors.AsInferenceError(err)
			assert.True(t, ok, "expected an InferenceError, got %T", err)
		})
	}
}
