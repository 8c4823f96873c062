package insights

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/trackfit/trackfitcom/internal/exercises"
	"github.com/trackfit/trackfitcom/internal/plans"
	"github.com/trackfit/trackfitcom/internal/progress"
	"github.com/trackfit/trackfitcom/internal/telemetry/tracing"
	"github.com/trackfit/trackfitcom/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=insights_test

var (
	// ErrNoDataFound marks a window or filter that matched zero rows
	// where at least one is required.
	ErrNoDataFound = errors.New("no data found")
	// ErrInvalidInterval marks an unsupported comparison interval.
	ErrInvalidInterval = errors.New("invalid interval type")
)

const (
	IntervalWeekly  = "weekly"
	IntervalMonthly = "monthly"

	// DefaultTopExercises bounds the frequency listing when the
	// caller gives no limit.
	DefaultTopExercises = 5
)

type workoutsRepo interface {
	ListByUserAndWindow(ctx context.Context, userID int, from, to *time.Time) ([]workouts.Workout, error)
	ListByUserAndDate(ctx context.Context, userID int, date time.Time) ([]workouts.Workout, error)
}

type plansRepo interface {
	ListByUser(ctx context.Context, userID int) ([]plans.Plan, error)
}

type progressRepo interface {
	List(ctx context.Context, userID, exerciseID int, from, to *time.Time) ([]progress.Record, error)
}

type exerciseResolver interface {
	Resolve(ctx context.Context, name string) (*exercises.Exercise, error)
	EnsureUserLink(ctx context.Context, userID, exerciseID int) (bool, error)
}

type DurationStats struct {
	AvgDurationMins float64 `json:"avgDurationMins"`
	TotalWorkouts   int     `json:"totalWorkouts"`
}

type ExerciseFrequency struct {
	Exercise  string `json:"exercise"`
	Frequency int    `json:"frequency"`
}

type Summary struct {
	TotalWorkouts   int        `json:"totalWorkouts"`
	AvgDurationMins float64    `json:"avgDurationMins"`
	TotalSets       int        `json:"totalSets"`
	TotalReps       int        `json:"totalReps"`
	Start           *time.Time `json:"start,omitempty"`
	End             *time.Time `json:"end,omitempty"`
}

// PeriodStats is one comparison bucket. Start and End are the first
// and last workout dates inside the bucket, not calendar boundaries.
type PeriodStats struct {
	Period          string    `json:"period"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	TotalWorkouts   int       `json:"totalWorkouts"`
	AvgDurationMins float64   `json:"avgDurationMins"`
	TotalSets       int       `json:"totalSets"`
	TotalReps       int       `json:"totalReps"`
}

type ProgressPoint struct {
	Date     time.Time `json:"date"`
	Progress string    `json:"progress"`
}

type ExerciseProgress struct {
	Exercise    string `json:"exercise"`
	PlannedSets int    `json:"plannedSets"`
	PlannedReps int    `json:"plannedReps"`
	ActualSets  int    `json:"actualSets"`
	ActualReps  int    `json:"actualReps"`
}

type DailyProgressResult struct {
	Date            time.Time          `json:"date"`
	TotalWorkouts   int                `json:"totalWorkouts"`
	AvgDurationMins float64            `json:"avgDurationMins"`
	TotalSets       int                `json:"totalSets"`
	TotalReps       int                `json:"totalReps"`
	Exercises       []ExerciseProgress `json:"exercises"`
}

// Analyzer computes derived statistics over a user's workout history.
// Every call is a plain read-aggregate-return cycle, no state is kept
// between invocations.
type Analyzer struct {
	workouts workoutsRepo
	plans    plansRepo
	progress progressRepo
	resolver exerciseResolver
}

func NewAnalyzer(
	workoutsRepo workoutsRepo,
	plansRepo plansRepo,
	progressRepo progressRepo,
	resolver exerciseResolver,
) *Analyzer {
	return &Analyzer{
		workouts: workoutsRepo,
		plans:    plansRepo,
		progress: progressRepo,
		resolver: resolver,
	}
}

// AverageDuration returns the plain arithmetic mean of workout
// durations in the window, together with the workout count.
func (a *Analyzer) AverageDuration(ctx context.Context, userID int, from, to *time.Time) (_ *DurationStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.insights.averageDuration")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	workoutList, err := a.workouts.ListByUserAndWindow(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	if len(workoutList) == 0 {
		return nil, ErrNoDataFound
	}

	var totalMins int
	for _, w := range workoutList {
		totalMins += w.DurationMins
	}

	return &DurationStats{
		AvgDurationMins: float64(totalMins) / float64(len(workoutList)),
		TotalWorkouts:   len(workoutList),
	}, nil
}

// MostFrequentExercises counts exercise occurrences across the
// window's workouts, descending by count, ties broken by name
// ascending. Zero or negative topN falls back to DefaultTopExercises.
func (a *Analyzer) MostFrequentExercises(ctx context.Context, userID int, from, to *time.Time, topN int) (_ []ExerciseFrequency, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.insights.mostFrequentExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if topN <= 0 {
		topN = DefaultTopExercises
	}

	workoutList, err := a.workouts.ListByUserAndWindow(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	counts := make(map[string]int)
	for _, w := range workoutList {
		for _, e := range w.Exercises {
			counts[e.ExerciseName]++
		}
	}

	frequencies := make([]ExerciseFrequency, 0, len(counts))
	for name, count := range counts {
		frequencies = append(frequencies, ExerciseFrequency{
			Exercise:  name,
			Frequency: count,
		})
	}
	sort.Slice(frequencies, func(i, j int) bool {
		if frequencies[i].Frequency != frequencies[j].Frequency {
			return frequencies[i].Frequency > frequencies[j].Frequency
		}
		return frequencies[i].Exercise < frequencies[j].Exercise
	})

	if len(frequencies) > topN {
		frequencies = frequencies[:topN]
	}
	return frequencies, nil
}

// WindowSummary aggregates the whole window into a single bucket.
func (a *Analyzer) WindowSummary(ctx context.Context, userID int, from, to *time.Time) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.insights.windowSummary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	workoutList, err := a.workouts.ListByUserAndWindow(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	if len(workoutList) == 0 {
		return nil, ErrNoDataFound
	}

	summary := &Summary{
		TotalWorkouts: len(workoutList),
		Start:         from,
		End:           to,
	}
	var totalMins int
	for _, w := range workoutList {
		totalMins += w.DurationMins
		for _, e := range w.Exercises {
			summary.TotalSets += e.Sets
			summary.TotalReps += e.Reps
		}
	}
	summary.AvgDurationMins = float64(totalMins) / float64(len(workoutList))

	return summary, nil
}

// PeriodComparison partitions the window's workouts into weekly
// (ISO-8601 year+week) or monthly (year+month) buckets and aggregates
// each, ascending by bucket start.
func (a *Analyzer) PeriodComparison(ctx context.Context, userID int, from, to *time.Time, interval string) (_ []PeriodStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.insights.periodComparison")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("interval", interval))

	if interval != IntervalWeekly && interval != IntervalMonthly {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}

	workoutList, err := a.workouts.ListByUserAndWindow(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	if len(workoutList) == 0 {
		return nil, ErrNoDataFound
	}

	type bucket struct {
		stats     PeriodStats
		totalMins int
	}
	buckets := make(map[string]*bucket)
	for _, w := range workoutList {
		key := periodKey(w.Date, interval)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				stats: PeriodStats{
					Period: key,
					Start:  w.Date,
					End:    w.Date,
				},
			}
			buckets[key] = b
		}

		if w.Date.Before(b.stats.Start) {
			b.stats.Start = w.Date
		}
		if w.Date.After(b.stats.End) {
			b.stats.End = w.Date
		}
		b.stats.TotalWorkouts++
		b.totalMins += w.DurationMins
		for _, e := range w.Exercises {
			b.stats.TotalSets += e.Sets
			b.stats.TotalReps += e.Reps
		}
	}

	periods := make([]PeriodStats, 0, len(buckets))
	for _, b := range buckets {
		b.stats.AvgDurationMins = float64(b.totalMins) / float64(b.stats.TotalWorkouts)
		periods = append(periods, b.stats)
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Start.Before(periods[j].Start)
	})

	return periods, nil
}

// ExerciseProgressTrend returns the recorded progress series for one
// exercise, resolved strictly, ascending by date.
func (a *Analyzer) ExerciseProgressTrend(ctx context.Context, userID int, exerciseName string, from, to *time.Time) (_ []ProgressPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.insights.exerciseProgressTrend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	exercise, err := a.resolver.Resolve(ctx, exerciseName)
	if err != nil {
		return nil, err
	}

	if _, err := a.resolver.EnsureUserLink(ctx, userID, exercise.ID); err != nil {
		return nil, err
	}

	records, err := a.progress.List(ctx, userID, exercise.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list progress records: %w", err)
	}

	points := make([]ProgressPoint, 0, len(records))
	for _, record := range records {
		points = append(points, ProgressPoint{
			Date:     record.Date,
			Progress: record.Progress,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points, nil
}

// DailyProgress reports planned versus actually performed sets and
// reps for one day. Plans carry no schedule, every plan counts for
// every day.
func (a *Analyzer) DailyProgress(ctx context.Context, userID int, date time.Time) (_ *DailyProgressResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.insights.dailyProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	dayWorkouts, err := a.workouts.ListByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	planList, err := a.plans.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	if len(dayWorkouts) == 0 && len(planList) == 0 {
		return nil, ErrNoDataFound
	}

	result := &DailyProgressResult{
		Date:          date,
		TotalWorkouts: len(dayWorkouts),
		Exercises:     make([]ExerciseProgress, 0),
	}

	var totalMins int
	for _, w := range dayWorkouts {
		totalMins += w.DurationMins
		for _, e := range w.Exercises {
			result.TotalSets += e.Sets
			result.TotalReps += e.Reps
		}
	}
	if len(dayWorkouts) > 0 {
		result.AvgDurationMins = float64(totalMins) / float64(len(dayWorkouts))
	}

	for _, plan := range planList {
		for _, planned := range plan.Exercises {
			entry := ExerciseProgress{
				Exercise:    planned.ExerciseName,
				PlannedSets: planned.Sets,
				PlannedReps: planned.Reps,
			}
			// first performed match of the day only
			for _, w := range dayWorkouts {
				found := false
				for _, actual := range w.Exercises {
					if actual.ExerciseName == planned.ExerciseName {
						entry.ActualSets = actual.Sets
						entry.ActualReps = actual.Reps
						found = true
						break
					}
				}
				if found {
					break
				}
			}
			result.Exercises = append(result.Exercises, entry)
		}
	}

	return result, nil
}

func periodKey(date time.Time, interval string) string {
	if interval == IntervalWeekly {
		year, week := date.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	}
	return date.Format("2006-01")
}
