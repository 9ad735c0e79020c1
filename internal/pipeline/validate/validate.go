// internal/pipeline/validate/validate.go
package validate

import (
	"encoding/json"
	"fmt"

	apperrors "house-price-api/internal/common/errors"
	"house-price-api/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// Validator checks a raw request payload against the record schema and
// produces a typed, immutable RawFeatureRecord. It holds only the compiled
// schema and is safe for concurrent use.
type Validator struct {
	schema *gojsonschema.Schema
}

func New() (*Validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(recordSchema))
	if err != nil {
		return nil, fmt.Errorf("compile record schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// Validate parses and validates in one step. On failure it returns a
// ValidationError naming every offending field; no partial record is ever
// returned.
func (v *Validator) Validate(payload []byte) (*models.RawFeatureRecord, error) {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return nil, apperrors.NewValidationError(apperrors.FieldError{
			Field:   "body",
			Code:    apperrors.ErrCodeInvalidPayload,
			Message: "request body is not a JSON object",
		})
	}

	if !result.Valid() {
		fieldErrs := make([]apperrors.FieldError, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			fieldErrs = append(fieldErrs, toFieldError(desc))
		}
		return nil, apperrors.NewValidationError(fieldErrs...)
	}

	return decodeRecord(payload)
}

func toFieldError(desc gojsonschema.ResultError) apperrors.FieldError {
	field := desc.Field()
	code := apperrors.ErrCodeInvalidPayload

	switch desc.Type() {
	case "required":
		code = apperrors.ErrCodeMissingRequired
		if prop, ok := desc.Details()["property"].(string); ok {
			field = prop
		}
	case "invalid_type":
		code = apperrors.ErrCodeInvalidType
	case "enum", "number_gte", "number_gt", "number_lte", "number_lt", "multiple_of":
		code = apperrors.ErrCodeOutOfDomain
	case "additional_property_not_allowed":
		code = apperrors.ErrCodeUnknownField
		if prop, ok := desc.Details()["property"].(string); ok {
			field = prop
		}
	}

	return apperrors.FieldError{
		Field:   field,
		Code:    code,
		Message: desc.Description(),
	}
}

// decodeRecord runs after the schema pass, so every field is present and
// in-domain. Integer fields arrive as JSON numbers that may carry a ".0"
// suffix, so decode through float64 and narrow.
func decodeRecord(payload []byte) (*models.RawFeatureRecord, error) {
	var wire struct {
		Area             float64 `json:"area"`
		Bedrooms         float64 `json:"bedrooms"`
		Bathrooms        float64 `json:"bathrooms"`
		Stories          float64 `json:"stories"`
		Parking          float64 `json:"parking"`
		FurnishingStatus float64 `json:"furnishingstatus"`
		MainRoad         float64 `json:"mainroad_yes"`
		GuestRoom        float64 `json:"guestroom_yes"`
		Basement         float64 `json:"basement_yes"`
		HotWaterHeating  float64 `json:"hotwaterheating_yes"`
		AirConditioning  float64 `json:"airconditioning_yes"`
		PreferredArea    float64 `json:"prefarea_yes"`
	}
	if err := json.Unmarshal(payload, &wire); err != nil {
		return nil, apperrors.NewValidationError(apperrors.FieldError{
			Field:   "body",
			Code:    apperrors.ErrCodeInvalidPayload,
			Message: err.Error(),
		})
	}

	return &models.RawFeatureRecord{
		Area:             wire.Area,
		Bedrooms:         int(wire.Bedrooms),
		Bathrooms:        int(wire.Bathrooms),
		Stories:          int(wire.Stories),
		Parking:          int(wire.Parking),
		FurnishingStatus: int(wire.FurnishingStatus),
		MainRoad:         int(wire.MainRoad),
		GuestRoom:        int(wire.GuestRoom),
		Basement:         int(wire.Basement),
		HotWaterHeating:  int(wire.HotWaterHeating),
		AirConditioning:  int(wire.AirConditioning),
		PreferredArea:    int(wire.PreferredArea),
	}, nil
}
