package models

// BodyWeightEntry is a single scale measurement. Date uses the YYYY-MM-DD
// form throughout the layer.
type BodyWeightEntry struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	WeightKg float64 `json:"weight_kg"`
}
