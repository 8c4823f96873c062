package progress

import "time"

// Record is one performance note for an exercise on a given day. A
// user has at most one record per (exercise, day) pair, newer writes
// replace older ones. Progress is opaque text, never parsed.
type Record struct {
	ID         int       `json:"id"`
	UserID     int       `json:"-"`
	ExerciseID int       `json:"exerciseId"`
	Exercise   string    `json:"exercise,omitempty"`
	Date       time.Time `json:"date"`
	Progress   string    `json:"progress"`
}
