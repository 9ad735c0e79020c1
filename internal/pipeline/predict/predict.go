// internal/pipeline/predict/predict.go
package predict

import (
	"fmt"

	apperrors "house-price-api/internal/common/errors"
	"house-price-api/internal/models"
)

// MinMaxTransform is a fitted min-max normalization for a single feature. The
// bounds were learned at training time and are never refit while serving.
// Values outside the training range extrapolate past [0, 1] on purpose: the
// transform does not clamp.
type MinMaxTransform struct {
	Feature string
	Min     float64
	Max     float64
	Version string
}

func (t *MinMaxTransform) Apply(value float64) float64 {
	return (value - t.Min) / (t.Max - t.Min)
}

// LinearModel is a fitted regression model: a coefficient per feature slot
// plus an intercept. Evaluation is a dot product over the ordered vector.
type LinearModel struct {
	FeatureOrder []string
	Coefficients []float64
	Intercept    float64
	Version      string
}

func (m *LinearModel) Evaluate(vector []float64) float64 {
	sum := m.Intercept
	for i, c := range m.Coefficients {
		sum += c * vector[i]
	}
	return sum
}

// Predictor applies the fitted transform to the area slot and evaluates the
// model over the ordered vector. Artifact compatibility is verified once at
// construction, so per-request prediction cannot fail as a function of
// request content.
type Predictor struct {
	transform *MinMaxTransform
	model     *LinearModel
	areaSlot  int
}

func New(transform *MinMaxTransform, model *LinearModel) (*Predictor, error) {
	if transform == nil || model == nil {
		return nil, apperrors.NewInferenceError(
			apperrors.ErrCodeArtifactLoadFailed,
			"transform and model artifacts are required", nil,
		)
	}
	if transform.Max == transform.Min {
		return nil, apperrors.NewInferenceError(
			apperrors.ErrCodeModelIncompatible,
			fmt.Sprintf("transform for %q has degenerate bounds [%v, %v]",
				transform.Feature, transform.Min, transform.Max), nil,
		)
	}
	if err := checkFeatureOrder(model); err != nil {
		return nil, err
	}

	areaSlot := -1
	for i, name := range models.FeatureOrder {
		if name == transform.Feature {
			areaSlot = i
			break
		}
	}
	if areaSlot < 0 {
		return nil, apperrors.NewInferenceError(
			apperrors.ErrCodeModelIncompatible,
			fmt.Sprintf("transform feature %q is not part of the model input", transform.Feature), nil,
		)
	}

	return &Predictor{
		transform: transform,
		model:     model,
		areaSlot:  areaSlot,
	}, nil
}

// checkFeatureOrder verifies the model's expected input against the
// serving-side contract, name by name. A mismatch is a deployment fault and
// must surface at load time, not as a silent shape error at prediction time.
func checkFeatureOrder(model *LinearModel) error {
	if len(model.FeatureOrder) != len(models.FeatureOrder) {
		return apperrors.NewInferenceError(
			apperrors.ErrCodeModelIncompatible,
			fmt.Sprintf("model expects %d features, serving contract has %d",
				len(model.FeatureOrder), len(models.FeatureOrder)), nil,
		)
	}
	if len(model.Coefficients) != len(model.FeatureOrder) {
		return apperrors.NewInferenceError(
			apperrors.ErrCodeModelIncompatible,
			fmt.Sprintf("model has %d coefficients for %d features",
				len(model.Coefficients), len(model.FeatureOrder)), nil,
		)
	}
	for i, name := range model.FeatureOrder {
		if name != models.FeatureOrder[i] {
			return apperrors.NewInferenceError(
				apperrors.ErrCodeModelIncompatible,
				fmt.Sprintf("feature order mismatch at slot %d: model %q, serving %q",
					i, name, models.FeatureOrder[i]), nil,
			)
		}
	}
	return nil
}

// Predict normalizes the area slot and returns the model's raw scalar output.
// No post-hoc clamping: the contract is pass-through.
func (p *Predictor) Predict(v *models.EngineeredFeatureVector) float64 {
	vector := v.Ordered()
	vector[p.areaSlot] = p.transform.Apply(vector[p.areaSlot])
	return p.model.Evaluate(vector)
}

// ModelVersion exposes the loaded model's version for health reporting.
func (p *Predictor) ModelVersion() string {
	return p.model.Version
}
