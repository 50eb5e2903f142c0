package models

// MacroTargets is the daily calorie and macro budget. All values are rounded
// to the nearest integer when calculated.
type MacroTargets struct {
	ID       string `json:"id"`
	Calories int    `json:"calories"`
	ProteinG int    `json:"protein_g"`
	FatG     int    `json:"fat_g"`
	CarbsG   int    `json:"carbs_g"`
}
