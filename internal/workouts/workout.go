package workouts

import "time"

// Workout is one logged training session. A user can hold at most one
// workout per calendar date; saving into an occupied slot requires the
// overwrite flag.
type Workout struct {
	ID           int               `json:"id"`
	UserID       int               `json:"userId"`
	Date         time.Time         `json:"date"`
	DurationMins int               `json:"durationMins"`
	Exercises    []WorkoutExercise `json:"exercises"`
}

type WorkoutExercise struct {
	ID           int    `json:"id"`
	WorkoutID    int    `json:"workoutId"`
	ExerciseID   int    `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
}
