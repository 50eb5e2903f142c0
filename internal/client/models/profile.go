// Package models defines the local shapes of every syncable entity.
//
// Every entity carries an ID: a client-generated random identifier assigned
// on first save. It never changes, even after the server assigns its own
// numeric key; mapping between the two is internal to the repositories.
package models

// Sex values accepted by the macro target calculation.
const (
	SexMale   = "male"
	SexFemale = "female"
)

// Activity levels (training sessions per week).
const (
	ActivityModerate = "3-4"
	ActivityHigh     = "5-6"
)

// Goals driving the caloric offset.
const (
	GoalFatLoss    = "fat-loss"
	GoalMuscleGain = "muscle-gain"
	GoalMaintain   = "maintain"
)

// Profile holds the onboarding answers the macro targets derive from.
type Profile struct {
	ID       string  `json:"id"`
	Sex      string  `json:"sex"`
	Age      int     `json:"age"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
	Activity string  `json:"activity"`
	Goal     string  `json:"goal"`
}
