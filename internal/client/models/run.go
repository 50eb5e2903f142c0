package models

// RunEntry is one recorded run.
type RunEntry struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	DistanceKm  float64 `json:"distance_km"`
	DurationSec int     `json:"duration_sec"`
}
