package localstore

// Fixed namespaced keys, one per persisted collection. The blob under each
// collection key is a JSON array of the entity's local shape; profile and
// macro targets hold a single JSON object.
const (
	KeyProfile      = "fittrack/profile"
	KeyMacroTargets = "fittrack/macro-targets"
	KeyExercises    = "fittrack/exercises"
	KeyRoutines     = "fittrack/routines"
	KeyWorkouts     = "fittrack/workouts"
	KeyBodyWeights  = "fittrack/body-weights"
	KeySavedFoods   = "fittrack/saved-foods"
	KeyFoodLog      = "fittrack/food-log"
	KeyRuns         = "fittrack/runs"

	KeyAuthToken = "fittrack/auth-token"
	KeyDeviceID  = "fittrack/device-id"
)

// DataKeys lists every key holding user data. Logout purges all of them in
// one call; this is the only operation allowed to bypass the per-entity
// repositories.
func DataKeys() []string {
	return []string{
		KeyProfile,
		KeyMacroTargets,
		KeyExercises,
		KeyRoutines,
		KeyWorkouts,
		KeyBodyWeights,
		KeySavedFoods,
		KeyFoodLog,
		KeyRuns,
		KeyAuthToken,
	}
}
