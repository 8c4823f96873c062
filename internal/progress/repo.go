package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/trackfit/trackfitcom/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert stores the record, replacing the progress text of an existing
// row for the same (user, exercise, day).
func (r *Repo) Upsert(ctx context.Context, record Record) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", record.UserID))
	span.SetAttributes(attribute.Int("exercise.id", record.ExerciseID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO progress_record (user_id, exercise_id, date, progress)
			VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, exercise_id, date)
			DO UPDATE SET progress = EXCLUDED.progress
		RETURNING id;`,
		record.UserID, record.ExerciseID, record.Date, record.Progress,
	).Scan(&record.ID)
	if err != nil {
		return nil, fmt.Errorf("upsert progress record: %w", err)
	}

	return &record, nil
}

// List returns the user's records for one exercise inside the optional
// window, ascending by date.
func (r *Repo) List(ctx context.Context, userID, exerciseID int, from, to *time.Time) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT pr.id, pr.user_id, pr.exercise_id, e.name, pr.date, pr.progress
			FROM progress_record pr
			LEFT JOIN exercise e ON e.id = pr.exercise_id
				WHERE pr.user_id = $1 AND pr.exercise_id = $2
					AND ($3::timestamp IS NULL OR pr.date >= $3)
					AND ($4::timestamp IS NULL OR pr.date <= $4)
			ORDER BY pr.date;`,
		userID, exerciseID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2records(rows)
}

func rows2records(rows pgx.Rows) ([]Record, error) {
	records := make([]Record, 0)
	for rows.Next() {
		var record Record
		var exerciseName *string
		if err := rows.Scan(
			&record.ID, &record.UserID, &record.ExerciseID,
			&exerciseName, &record.Date, &record.Progress,
		); err != nil {
			return nil, err
		}
		if exerciseName != nil {
			record.Exercise = *exerciseName
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
