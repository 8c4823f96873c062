package plans

// Plan is a named workout template. Plan names are unique per user.
type Plan struct {
	ID        int            `json:"id"`
	UserID    int            `json:"userId"`
	Name      string         `json:"name"`
	Goal      string         `json:"goal"`
	Exercises []PlanExercise `json:"exercises"`
}

type PlanExercise struct {
	ID           int    `json:"id"`
	PlanID       int    `json:"planId"`
	ExerciseID   int    `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
}
