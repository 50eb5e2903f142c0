// Package lookup defines the narrow surfaces of the external services the
// tracker consults: the food database, the meal-photo analyzer, and the
// reminder scheduler. The rest of the client depends only on these
// interfaces and their request/response shapes.
package lookup

import (
	"context"
	"time"
)

// FoodItem is the normalized shape a lookup service returns. Nutrition is
// per serving.
type FoodItem struct {
	Name     string  `json:"name"`
	Brand    string  `json:"brand,omitempty"`
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	ServingG float64 `json:"serving_g,omitempty"`
	Barcode  string  `json:"barcode,omitempty"`
}

// FoodDatabase looks foods up by free text or barcode.
type FoodDatabase interface {
	Search(ctx context.Context, query string) ([]FoodItem, error)
	// ByBarcode returns false without error when the code is unknown.
	ByBarcode(ctx context.Context, code string) (FoodItem, bool, error)
}

// PhotoAnalysis is the analyzer's estimate for one meal photo.
type PhotoAnalysis struct {
	Items      []FoodItem `json:"items"`
	Confidence float64    `json:"confidence"`
}

// PhotoAnalyzer estimates the foods on a meal photo. Implementations must
// bound the call so an interactive screen is never blocked indefinitely.
type PhotoAnalyzer interface {
	Analyze(ctx context.Context, photo []byte) (PhotoAnalysis, error)
}

// Reminder is a scheduled local notification.
type Reminder struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Body  string    `json:"body,omitempty"`
	At    time.Time `json:"at"`
}

// NotificationScheduler schedules and cancels reminders.
type NotificationScheduler interface {
	Schedule(ctx context.Context, r Reminder) error
	Cancel(ctx context.Context, id string) error
}
