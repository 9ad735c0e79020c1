// internal/pipeline/validate/schema.go
package validate

// recordSchema is the wire contract of POST /predict. Fields are matched by
// name, never by position; integer fields reject fractional values; amenity
// indicators are exactly 0 or 1.
const recordSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": [
    "area", "bedrooms", "bathrooms", "stories", "parking",
    "furnishingstatus", "mainroad_yes", "guestroom_yes", "basement_yes",
    "hotwaterheating_yes", "airconditioning_yes", "prefarea_yes"
  ],
  "properties": {
    "area":                {"type": "number",  "minimum": 0},
    "bedrooms":            {"type": "integer", "minimum": 0},
    "bathrooms":           {"type": "integer", "minimum": 0},
    "stories":             {"type": "integer", "minimum": 0},
    "parking":             {"type": "integer", "minimum": 0},
    "furnishingstatus":    {"type": "integer", "enum": [0, 1, 2]},
    "mainroad_yes":        {"type": "integer", "enum": [0, 1]},
    "guestroom_yes":       {"type": "integer", "enum": [0, 1]},
    "basement_yes":        {"type": "integer", "enum": [0, 1]},
    "hotwaterheating_yes": {"type": "integer", "enum": [0, 1]},
    "airconditioning_yes": {"type": "integer", "enum": [0, 1]},
    "prefarea_yes":        {"type": "integer", "enum": [0, 1]}
  }
}`
