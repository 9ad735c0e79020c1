// internal/pipeline/engineer/engineer.go
package engineer

import "house-price-api/internal/models"

// Engineer computes the derived features from a validated record. It is a
// pure, total function: any validator-approved record produces a vector, and
// identical inputs produce bit-identical outputs. Integer fields are widened
// to float64 before the interaction multiplications.
func Engineer(r *models.RawFeatureRecord) *models.EngineeredFeatureVector {
	amenities := float64(r.MainRoad) +
		float64(r.GuestRoom) +
		float64(r.Basement) +
		float64(r.HotWaterHeating) +
		float64(r.AirConditioning) +
		float64(r.PreferredArea)

	// Climate control, water heating, guest room and basement form the
	// luxury subset.
	luxury := float64(r.AirConditioning) +
		float64(r.HotWaterHeating) +
		float64(r.GuestRoom) +
		float64(r.Basement)

	return &models.EngineeredFeatureVector{
		Raw:              *r,
		AreaBedrooms:     r.Area * float64(r.Bedrooms),
		StoriesBathrooms: float64(r.Stories) * float64(r.Bathrooms),
		LuxuryIndex:      luxury,
		AmenitiesCount:   amenities,
	}
}
