package dto

import (
	"sort"
	"strconv"

	"assist-backend/internal/models"
)

// LatLng is a coordinate pair as sent by the map-selection client.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationChange is the payload emitted by the map-selection client: the
// exact point the user picked plus the coarse form used publicly.
type LocationChange struct {
	PreciseLocation     LatLng  `json:"preciseLocation"`
	GeneralLocation     *LatLng `json:"generalLocation,omitempty"`
	GeneralLocationName string  `json:"generalLocationName,omitempty"`
}

// NewRequest carries the submitted form values. String fields mirror what
// the form posts; the Parsed* helpers convert them to domain types once,
// after validation.
type NewRequest struct {
	FirstName               string          `json:"firstName"`
	LastName                string          `json:"lastName"`
	Phone                   string          `json:"phone"`
	Email                   string          `json:"email,omitempty"`
	Immediacy               string          `json:"immediacy"`
	Needs                   map[string]bool `json:"needs"`
	OtherDetails            string          `json:"otherDetails,omitempty"`
	NeedFinancialAssistance string          `json:"needFinancialAssistance,omitempty"`

	// Location is the previously chosen map location accompanying the
	// submission. Absent means no location was ever picked.
	Location *LocationChange `json:"location,omitempty"`
}

// ParsedImmediacy converts the radio-group string value to its integer
// priority code. Returns 0 when the value is not a known code.
func (r *NewRequest) ParsedImmediacy() int {
	n, err := strconv.Atoi(r.Immediacy)
	if err != nil {
		return 0
	}
	switch n {
	case models.ImmediacyLow, models.ImmediacyMedium, models.ImmediacyHigh:
		return n
	}
	return 0
}

// SelectedNeeds returns the checked category keys, sorted for stable
// persistence.
func (r *NewRequest) SelectedNeeds() []string {
	keys := make([]string, 0, len(r.Needs))
	for k, checked := range r.Needs {
		if checked {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// ParsedFinancialAssistance parses the "true"/"false" radio value. Anything
// unparsable counts as false rather than the old implicit string coercion.
func (r *NewRequest) ParsedFinancialAssistance() bool {
	b, err := strconv.ParseBool(r.NeedFinancialAssistance)
	return err == nil && b
}
