package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trackfit/trackfitcom/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
	// ErrWorkoutExists is returned when the (user, date) slot is taken
	// and overwrite was not requested.
	ErrWorkoutExists = errors.New("workout for that date already exists")
)

const uniqueViolationCode = "23505"

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Save stores the workout for its (user, date) slot. An occupied slot
// fails with ErrWorkoutExists unless overwrite is set, in which case
// the stored workout and all its entries are replaced, all inside a
// single transaction.
func (r *Repo) Save(ctx context.Context, workout Workout, overwrite bool) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", workout.UserID))
	span.SetAttributes(attribute.Bool("overwrite", overwrite))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				log.Errorf("save workout, rollback: %s", rollbackErr)
			}
		}
	}()

	var existingID int
	err = tx.QueryRow(
		ctx,
		`SELECT id FROM workout WHERE user_id = $1 AND date::date = $2::date;`,
		workout.UserID, workout.Date,
	).Scan(&existingID)
	switch {
	case err == nil:
		if !overwrite {
			return nil, ErrWorkoutExists
		}
		if _, err = tx.Exec(
			ctx,
			`UPDATE workout SET date = $1, duration_mins = $2 WHERE id = $3;`,
			workout.Date, workout.DurationMins, existingID,
		); err != nil {
			return nil, fmt.Errorf("update workout: %w", err)
		}
		if _, err = tx.Exec(
			ctx,
			`DELETE FROM workout_exercise WHERE workout_id = $1;`,
			existingID,
		); err != nil {
			return nil, fmt.Errorf("clear workout entries: %w", err)
		}
		workout.ID = existingID
	case errors.Is(err, pgx.ErrNoRows):
		err = tx.QueryRow(
			ctx,
			`INSERT INTO workout (user_id, date, duration_mins)
				VALUES ($1, $2, $3)
			RETURNING id;`,
			workout.UserID, workout.Date, workout.DurationMins,
		).Scan(&workout.ID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
				return nil, ErrWorkoutExists
			}
			return nil, fmt.Errorf("insert workout: %w", err)
		}
	default:
		return nil, fmt.Errorf("check workout slot: %w", err)
	}

	for i := range workout.Exercises {
		entry := &workout.Exercises[i]
		entry.WorkoutID = workout.ID
		err = tx.QueryRow(
			ctx,
			`INSERT INTO workout_exercise (workout_id, exercise_id, sets, reps)
				VALUES ($1, $2, $3, $4)
			RETURNING id;`,
			workout.ID, entry.ExerciseID, entry.Sets, entry.Reps,
		).Scan(&entry.ID)
		if err != nil {
			return nil, fmt.Errorf("insert workout entry: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", workout.ID))
	return &workout, nil
}

// ListByUserAndWindow returns the user's workouts within the inclusive
// [from, to] window, nested exercise entries loaded. Nil bounds mean
// unbounded.
func (r *Repo) ListByUserAndWindow(ctx context.Context, userID int, from, to *time.Time) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listByWindow")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	if from != nil {
		span.SetAttributes(attribute.String("from", from.String()))
	}
	if to != nil {
		span.SetAttributes(attribute.String("to", to.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				w.id, w.user_id, w.date, w.duration_mins,
				we.id, we.exercise_id, e.name, we.sets, we.reps
			FROM workout w
			LEFT JOIN workout_exercise we ON we.workout_id = w.id
			LEFT JOIN exercise e ON e.id = we.exercise_id
				WHERE w.user_id = $1
				AND ($2::timestamp IS NULL OR w.date >= $2)
				AND ($3::timestamp IS NULL OR w.date <= $3)
			ORDER BY w.date, w.id, we.id;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2workouts(rows)
}

// ListByUserAndDate returns the user's workouts on the given calendar date.
func (r *Repo) ListByUserAndDate(ctx context.Context, userID int, date time.Time) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listByDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("date", date.Format("2006-01-02")))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				w.id, w.user_id, w.date, w.duration_mins,
				we.id, we.exercise_id, e.name, we.sets, we.reps
			FROM workout w
			LEFT JOIN workout_exercise we ON we.workout_id = w.id
			LEFT JOIN exercise e ON e.id = we.exercise_id
				WHERE w.user_id = $1
				AND w.date::date = $2::date
			ORDER BY w.date, w.id, we.id;`,
		userID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2workouts(rows)
}

func (r *Repo) Delete(ctx context.Context, userID, workoutID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	// workout_exercise rows go away via ON DELETE CASCADE
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout WHERE id = $1 AND user_id = $2;`,
		workoutID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]Workout, error) {
	workoutsByID := make(map[int]*Workout)
	var ordered []int
	for rows.Next() {
		var w Workout
		var entryID, exerciseID, sets, reps *int
		var exerciseName *string
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Date, &w.DurationMins,
			&entryID, &exerciseID, &exerciseName, &sets, &reps,
		); err != nil {
			return nil, err
		}

		workout, ok := workoutsByID[w.ID]
		if !ok {
			w.Exercises = make([]WorkoutExercise, 0)
			workoutsByID[w.ID] = &w
			ordered = append(ordered, w.ID)
			workout = &w
		}

		// left join: a workout without entries yields NULL entry columns
		if entryID == nil {
			continue
		}
		entry := WorkoutExercise{
			ID:         *entryID,
			WorkoutID:  workout.ID,
			ExerciseID: *exerciseID,
			Sets:       *sets,
			Reps:       *reps,
		}
		if exerciseName != nil {
			entry.ExerciseName = *exerciseName
		}
		workout.Exercises = append(workout.Exercises, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	workouts := make([]Workout, 0, len(ordered))
	for _, id := range ordered {
		workouts = append(workouts, *workoutsByID[id])
	}
	return workouts, nil
}
