package exercises

import "time"

// Exercise is a catalog entry shared across all users. Name holds the
// normalized form and is unique within the catalog.
type Exercise struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BatchItem is a single free-text exercise reference as submitted
// within a workout or plan payload.
type BatchItem struct {
	ExerciseName string `json:"exerciseName"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
}

// PreparedExercise is a batch item resolved against the catalog,
// ready to be wrapped into a workout or plan entry by the caller.
type PreparedExercise struct {
	ExerciseID   int    `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
}
