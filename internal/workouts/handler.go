package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/trackfit/trackfitcom/internal/auth"
	"github.com/trackfit/trackfitcom/internal/exercises"
	"github.com/trackfit/trackfitcom/internal/telemetry/metrics"
	"github.com/trackfit/trackfitcom/internal/telemetry/tracing"
	"github.com/trackfit/trackfitcom/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Save(ctx context.Context, workout Workout, overwrite bool) (*Workout, error)
	ListByUserAndWindow(ctx context.Context, userID int, from, to *time.Time) ([]Workout, error)
	Delete(ctx context.Context, userID, workoutID int) error
}

type batchPreparer interface {
	PrepareBatch(ctx context.Context, userID int, items []exercises.BatchItem) ([]exercises.PreparedExercise, error)
}

type SaveWorkoutRequest struct {
	Date         time.Time             `json:"date"`
	DurationMins int                   `json:"durationMins"`
	Exercises    []exercises.BatchItem `json:"exercises"`
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type DeleteWorkoutResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo           workoutsRepo
	preparer       batchPreparer
	metricsManager *metrics.Manager
}

func NewHandler(repo workoutsRepo, preparer batchPreparer, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		preparer:       preparer,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.save")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SaveWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("save workout, unmarshal json params: %s", err)
		http.Error(w, "save workout failed", http.StatusBadRequest)
		return
	}

	if req.Date.IsZero() {
		req.Date = time.Now()
	}
	if req.DurationMins < 0 {
		http.Error(w, "error, negative duration", http.StatusBadRequest)
		return
	}

	overwrite := false
	if overwriteStr := r.URL.Query().Get("overwrite"); overwriteStr != "" {
		var err error
		overwrite, err = strconv.ParseBool(overwriteStr)
		if err != nil {
			http.Error(w, "failed to parse overwrite param", http.StatusBadRequest)
			return
		}
	}

	prepared, err := handler.preparer.PrepareBatch(ctx, userID, req.Exercises)
	if err != nil {
		log.Errorf("save workout, prepare exercises for user %d: %s", userID, err)
		http.Error(w, "failed to resolve workout exercises", http.StatusBadRequest)
		return
	}

	workout := Workout{
		UserID:       userID,
		Date:         req.Date,
		DurationMins: req.DurationMins,
		Exercises:    make([]WorkoutExercise, 0, len(prepared)),
	}
	for _, p := range prepared {
		workout.Exercises = append(workout.Exercises, WorkoutExercise{
			ExerciseID:   p.ExerciseID,
			ExerciseName: p.ExerciseName,
			Sets:         p.Sets,
			Reps:         p.Reps,
		})
	}

	savedWorkout, err := handler.repo.Save(ctx, workout, overwrite)
	if err != nil {
		if errors.Is(err, ErrWorkoutExists) {
			http.Error(w, "workout for that date already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to save workout for user %d: %s", userID, err)
		http.Error(w, "error, failed to save workout", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterWorkoutsSaved.Inc()
	}

	savedWorkoutJson, err := json.Marshal(savedWorkout)
	if err != nil {
		log.Errorf("failed to marshal saved workout: %s", err)
		http.Error(w, "error, failed to save workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout saved: user %d, date %s", userID, savedWorkout.Date.Format("2006-01-02"))
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, savedWorkoutJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	from, to, err := parseWindow(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	workouts, err := handler.repo.ListByUserAndWindow(ctx, userID, from, to)
	if err != nil {
		log.Errorf("list workouts for user %d: %s", userID, err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Workouts: workouts,
		Total:    len(workouts),
	})
	if err != nil {
		log.Errorf("marshal workouts error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete workout %d: %s", id, err)
		http.Error(w, "workout not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteWorkoutResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

// parseWindow reads the optional from/to date params, from set to the
// start of its day and to set to the end of its day, both UTC.
func parseWindow(r *http.Request) (from, to *time.Time, err error) {
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return nil, nil, errors.New("invalid from format (expected YYYY-MM-DD)")
		}
		parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
		from = &parsed
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return nil, nil, errors.New("invalid to format (expected YYYY-MM-DD)")
		}
		parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 23, 59, 59, 999999999, time.UTC)
		to = &parsed
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, errors.New("invalid window, to before from")
	}
	return from, to, nil
}
