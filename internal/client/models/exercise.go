package models

// Exercise is a catalogue entry the routines reference by name. The
// catalogue is device-local only; the REST surface has no exercise endpoint.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group,omitempty"`
}
