package models

// FoodLogEntry is one logged food item for a given date.
type FoodLogEntry struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Meal     string  `json:"meal,omitempty"`
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// SavedFood is a reusable food the user logs often, optionally tied to a
// barcode or a lookup-service result.
type SavedFood struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand,omitempty"`
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	ServingG float64 `json:"serving_g,omitempty"`
	Barcode  string  `json:"barcode,omitempty"`
}
