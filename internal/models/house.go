// internal/models/house.go
package models

// FeatureOrder is the serving-side input contract of the trained regression
// model. The model was fitted against columns in exactly this order, so the
// ordering is part of the artifact contract, not incidental.
var FeatureOrder = []string{
	"area", "bedrooms", "bathrooms", "stories", "parking",
	"furnishingstatus", "mainroad_yes", "guestroom_yes",
	"basement_yes", "hotwaterheating_yes", "airconditioning_yes",
	"prefarea_yes", "area_bedrooms", "stories_bathrooms",
	"luxury_index", "amenities_count",
}

// Furnishing status codes, label-encoded at training time.
const (
	FurnishingFurnished     = 0
	FurnishingSemiFurnished = 1
	FurnishingUnfurnished   = 2
)

// RawFeatureRecord is a fully validated, typed property record as received on
// the wire. Constructed fresh per request and never mutated.
type RawFeatureRecord struct {
	Area             float64 `json:"area"`
	Bedrooms         int     `json:"bedrooms"`
	Bathrooms        int     `json:"bathrooms"`
	Stories          int     `json:"stories"`
	Parking          int     `json:"parking"`
	FurnishingStatus int     `json:"furnishingstatus"`
	MainRoad         int     `json:"mainroad_yes"`
	GuestRoom        int     `json:"guestroom_yes"`
	Basement         int     `json:"basement_yes"`
	HotWaterHeating  int     `json:"hotwaterheating_yes"`
	AirConditioning  int     `json:"airconditioning_yes"`
	PreferredArea    int     `json:"prefarea_yes"`
}

// EngineeredFeatureVector extends the raw record with the derived features the
// model was trained on. Derived fields are pure functions of the raw record.
type EngineeredFeatureVector struct {
	Raw              RawFeatureRecord
	AreaBedrooms     float64 `json:"area_bedrooms"`
	StoriesBathrooms float64 `json:"stories_bathrooms"`
	LuxuryIndex      float64 `json:"luxury_index"`
	AmenitiesCount   float64 `json:"amenities_count"`
}

// Ordered returns the numeric vector in the exact FeatureOrder the model
// expects. The area slot still carries the raw value; the fitted transform is
// applied by the predictor.
func (v *EngineeredFeatureVector) Ordered() []float64 {
	r := v.Raw
	return []float64{
		r.Area,
		float64(r.Bedrooms),
		float64(r.Bathrooms),
		float64(r.Stories),
		float64(r.Parking),
		float64(r.FurnishingStatus),
		float64(r.MainRoad),
		float64(r.GuestRoom),
		float64(r.Basement),
		float64(r.HotWaterHeating),
		float64(r.AirConditioning),
		float64(r.PreferredArea),
		v.AreaBedrooms,
		v.StoriesBathrooms,
		v.LuxuryIndex,
		v.AmenitiesCount,
	}
}

// PredictionResponse is the success wire shape: a single numeric field.
type PredictionResponse struct {
	Prediction float64 `json:"prediction"`
}

// ErrorResponse is the failure wire shape: a single descriptive string field.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports readiness of the loaded artifacts.
type HealthResponse struct {
	Status       string `json:"status"`
	ModelVersion string `json:"modelVersion,omitempty"`
}
