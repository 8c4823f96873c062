package insights

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
	"github.com/trackfit/trackfitcom/internal/telemetry/tracing"
	"github.com/trackfit/trackfitcom/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=insights_test

type insightsAnalyzer interface {
	AverageDuration(ctx context.Context, userID int, from, to *time.Time) (*DurationStats, error)
	MostFrequentExercises(ctx context.Context, userID int, from, to *time.Time, topN int) ([]ExerciseFrequency, error)
	WindowSummary(ctx context.Context, userID int, from, to *time.Time) (*Summary, error)
	PeriodComparison(ctx context.Context, userID int, from, to *time.Time, interval string) ([]PeriodStats, error)
	ExerciseProgressTrend(ctx context.Context, userID int, exerciseName string, from, to *time.Time) ([]ProgressPoint, error)
	DailyProgress(ctx context.Context, userID int, date time.Time) (*DailyProgressResult, error)
}

type FrequentExercisesResponse struct {
	Exercises []ExerciseFrequency `json:"exercises"`
}

type ComparisonResponse struct {
	Interval string        `json:"interval"`
	Periods  []PeriodStats `json:"periods"`
}

type TrendResponse struct {
	Exercise string          `json:"exercise"`
	Points   []ProgressPoint `json:"points"`
}

type Handler struct {
	analyzer insightsAnalyzer
}

func NewHandler(analyzer insightsAnalyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (handler *Handler) HandleAverageDuration(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.averageDuration")
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

	stats, err := handler.analyzer.AverageDuration(ctx, userID, from, to)
	if err != nil {
		if errors.Is(err, ErrNoDataFound) {
			http.Error(w, "no workouts found", http.StatusNotFound)
			return
		}
		log.Errorf("average duration for user %d: %s", userID, err)
		http.Error(w, "failed to get average duration", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, stats)
}

func (handler *Handler) HandleFrequentExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.frequentExercises")
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

	topN := 0
	if topStr := r.URL.Query().Get("top"); topStr != "" {
		topN, err = strconv.Atoi(topStr)
		if err != nil {
			http.Error(w, "failed to parse top param", http.StatusBadRequest)
			return
		}
	}

	frequencies, err := handler.analyzer.MostFrequentExercises(ctx, userID, from, to, topN)
	if err != nil {
		log.Errorf("frequent exercises for user %d: %s", userID, err)
		http.Error(w, "failed to get frequent exercises", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, FrequentExercisesResponse{Exercises: frequencies})
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.summary")
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

	summary, err := handler.analyzer.WindowSummary(ctx, userID, from, to)
	if err != nil {
		if errors.Is(err, ErrNoDataFound) {
			http.Error(w, "no workouts found", http.StatusNotFound)
			return
		}
		log.Errorf("summary for user %d: %s", userID, err)
		http.Error(w, "failed to get summary", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, summary)
}

func (handler *Handler) HandleComparison(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.comparison")
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

	interval := r.URL.Query().Get("interval")
	if interval == "" {
		interval = IntervalWeekly
	}

	periods, err := handler.analyzer.PeriodComparison(ctx, userID, from, to, interval)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInterval):
			http.Error(w, "invalid interval, use weekly or monthly", http.StatusBadRequest)
		case errors.Is(err, ErrNoDataFound):
			http.Error(w, "no workouts found", http.StatusNotFound)
		default:
			log.Errorf("period comparison for user %d: %s", userID, err)
			http.Error(w, "failed to get period comparison", http.StatusInternalServerError)
		}
		return
	}

	handler.writeJSON(w, ComparisonResponse{
		Interval: interval,
		Periods:  periods,
	})
}

func (handler *Handler) HandleProgressTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.progressTrend")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	exerciseName := vars["exercise"]
	if exerciseName == "" {
		http.Error(w, "error, exercise empty", http.StatusBadRequest)
		return
	}

	from, to, err := parseWindow(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	points, err := handler.analyzer.ExerciseProgressTrend(ctx, userID, exerciseName, from, to)
	if err != nil {
		var notFoundErr *exercises.NotFoundError
		switch {
		case errors.As(err, &notFoundErr):
			notFoundJson, err := json.Marshal(notFoundErr)
			if err != nil {
				log.Errorf("failed to marshal exercise suggestions: %s", err)
				http.Error(w, "exercise not found", http.StatusNotFound)
				return
			}
			pkg.WriteResponseBytes(w, pkg.ContentType.JSON, notFoundJson, http.StatusNotFound)
		case errors.Is(err, exercises.ErrEmptyExerciseName):
			http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		default:
			log.Errorf("progress trend for user %d: %s", userID, err)
			http.Error(w, "failed to get progress trend", http.StatusInternalServerError)
		}
		return
	}

	handler.writeJSON(w, TrendResponse{
		Exercise: exerciseName,
		Points:   points,
	})
}

func (handler *Handler) HandleDailyProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.dailyProgress")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	date := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		var err error
		date, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			http.Error(w, "invalid date format (expected YYYY-MM-DD)", http.StatusBadRequest)
			return
		}
	}

	dailyProgress, err := handler.analyzer.DailyProgress(ctx, userID, date)
	if err != nil {
		if errors.Is(err, ErrNoDataFound) {
			http.Error(w, "no workouts or plans found", http.StatusNotFound)
			return
		}
		log.Errorf("daily progress for user %d: %s", userID, err)
		http.Error(w, "failed to get daily progress", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, dailyProgress)
}

func (handler *Handler) writeJSON(w http.ResponseWriter, payload any) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal insights response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, payloadJson, http.StatusOK)
}

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
