package plans

import (
	"context"
	"errors"
	"fmt"

	"github.com/trackfit/trackfitcom/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrPlanNotFound = errors.New("workout plan not found")
	// ErrPlanExists is returned when the (user, name) pair is taken
	// and overwrite was not requested.
	ErrPlanExists = errors.New("workout plan with that name already exists")
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

// Save stores the plan under its (user, name) pair; an existing plan
// fails with ErrPlanExists unless overwrite is set, in which case the
// plan and all its entries are replaced in a single transaction.
func (r *Repo) Save(ctx context.Context, plan Plan, overwrite bool) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", plan.UserID))
	span.SetAttributes(attribute.String("plan.name", plan.Name))
	span.SetAttributes(attribute.Bool("overwrite", overwrite))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				log.Errorf("save plan, rollback: %s", rollbackErr)
			}
		}
	}()

	var existingID int
	err = tx.QueryRow(
		ctx,
		`SELECT id FROM workout_plan WHERE user_id = $1 AND name = $2;`,
		plan.UserID, plan.Name,
	).Scan(&existingID)
	switch {
	case err == nil:
		if !overwrite {
			return nil, ErrPlanExists
		}
		if _, err = tx.Exec(
			ctx,
			`UPDATE workout_plan SET goal = $1 WHERE id = $2;`,
			plan.Goal, existingID,
		); err != nil {
			return nil, fmt.Errorf("update plan: %w", err)
		}
		if _, err = tx.Exec(
			ctx,
			`DELETE FROM workout_plan_exercise WHERE plan_id = $1;`,
			existingID,
		); err != nil {
			return nil, fmt.Errorf("clear plan entries: %w", err)
		}
		plan.ID = existingID
	case errors.Is(err, pgx.ErrNoRows):
		err = tx.QueryRow(
			ctx,
			`INSERT INTO workout_plan (user_id, name, goal)
				VALUES ($1, $2, $3)
			RETURNING id;`,
			plan.UserID, plan.Name, plan.Goal,
		).Scan(&plan.ID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
				return nil, ErrPlanExists
			}
			return nil, fmt.Errorf("insert plan: %w", err)
		}
	default:
		return nil, fmt.Errorf("check plan name: %w", err)
	}

	for i := range plan.Exercises {
		entry := &plan.Exercises[i]
		entry.PlanID = plan.ID
		err = tx.QueryRow(
			ctx,
			`INSERT INTO workout_plan_exercise (plan_id, exercise_id, sets, reps)
				VALUES ($1, $2, $3, $4)
			RETURNING id;`,
			plan.ID, entry.ExerciseID, entry.Sets, entry.Reps,
		).Scan(&entry.ID)
		if err != nil {
			return nil, fmt.Errorf("insert plan entry: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	span.SetAttributes(attribute.Int("plan.id", plan.ID))
	return &plan, nil
}

// ListByUser returns all of the user's plans, nested entries loaded.
func (r *Repo) ListByUser(ctx context.Context, userID int) (_ []Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.listByUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				p.id, p.user_id, p.name, p.goal,
				pe.id, pe.exercise_id, e.name, pe.sets, pe.reps
			FROM workout_plan p
			LEFT JOIN workout_plan_exercise pe ON pe.plan_id = p.id
			LEFT JOIN exercise e ON e.id = pe.exercise_id
				WHERE p.user_id = $1
			ORDER BY p.name, pe.id;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2plans(rows)
}

func (r *Repo) Delete(ctx context.Context, userID, planID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", planID))

	// workout_plan_exercise rows go away via ON DELETE CASCADE
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_plan WHERE id = $1 AND user_id = $2;`,
		planID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *Repo) rows2plans(rows pgx.Rows) ([]Plan, error) {
	plansByID := make(map[int]*Plan)
	var ordered []int
	for rows.Next() {
		var p Plan
		var entryID, exerciseID, sets, reps *int
		var exerciseName *string
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Goal,
			&entryID, &exerciseID, &exerciseName, &sets, &reps,
		); err != nil {
			return nil, err
		}

		plan, ok := plansByID[p.ID]
		if !ok {
			p.Exercises = make([]PlanExercise, 0)
			plansByID[p.ID] = &p
			ordered = append(ordered, p.ID)
			plan = &p
		}

		if entryID == nil {
			continue
		}
		entry := PlanExercise{
			ID:         *entryID,
			PlanID:     plan.ID,
			ExerciseID: *exerciseID,
			Sets:       *sets,
			Reps:       *reps,
		}
		if exerciseName != nil {
			entry.ExerciseName = *exerciseName
		}
		plan.Exercises = append(plan.Exercises, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	plans := make([]Plan, 0, len(ordered))
	for _, id := range ordered {
		plans = append(plans, *plansByID[id])
	}
	return plans, nil
}
