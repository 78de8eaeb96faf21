package models

// Place is a LocationIQ result row, shared by autocomplete, forward
// geocode and reverse geocode responses.
type Place struct {
	PlaceID     string `json:"place_id"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}
