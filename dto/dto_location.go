package dto

// ProfileLocation is the response of the location pre-fill read. Location
// is null when the profile has no saved location; Loaded lets clients
// distinguish "no location" from "still loading".
type ProfileLocation struct {
	Location            *LatLng `json:"location"`
	GeneralLocationName string  `json:"generalLocationName,omitempty"`
	Loaded              bool    `json:"loaded"`
}
