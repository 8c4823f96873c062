package progress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/trackfit/trackfitcom/internal/auth"
	"github.com/trackfit/trackfitcom/internal/exercises"
	"github.com/trackfit/trackfitcom/internal/telemetry/metrics"
	"github.com/trackfit/trackfitcom/internal/telemetry/tracing"
	"github.com/trackfit/trackfitcom/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type progressRepo interface {
	Upsert(ctx context.Context, record Record) (*Record, error)
	List(ctx context.Context, userID, exerciseID int, from, to *time.Time) ([]Record, error)
}

type exerciseResolver interface {
	Resolve(ctx context.Context, name string) (*exercises.Exercise, error)
	EnsureUserLink(ctx context.Context, userID, exerciseID int) (bool, error)
}

type SaveRecordRequest struct {
	Exercise string    `json:"exercise"`
	Date     time.Time `json:"date"`
	Progress string    `json:"progress"`
}

type ListResponse struct {
	Records []Record `json:"records"`
	Total   int      `json:"total"`
}

type Handler struct {
	repo           progressRepo
	resolver       exerciseResolver
	metricsManager *metrics.Manager
}

func NewHandler(repo progressRepo, resolver exerciseResolver, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		resolver:       resolver,
		metricsManager: metricsManager,
	}
}

// HandleSave records a progress note for an already cataloged
// exercise. Unknown names are rejected with ranked suggestions
// instead of silently growing the catalog.
func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.save")
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

	var req SaveRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("save progress, unmarshal json params: %s", err)
		http.Error(w, "save progress failed", http.StatusBadRequest)
		return
	}

	if req.Progress == "" {
		http.Error(w, "error, progress empty", http.StatusBadRequest)
		return
	}
	if req.Date.IsZero() {
		req.Date = time.Now()
	}

	exercise, err := handler.resolver.Resolve(ctx, req.Exercise)
	if err != nil {
		var notFoundErr *exercises.NotFoundError
		if errors.As(err, &notFoundErr) {
			notFoundJson, err := json.Marshal(notFoundErr)
			if err != nil {
				log.Errorf("failed to marshal exercise suggestions: %s", err)
				http.Error(w, "exercise not found", http.StatusNotFound)
				return
			}
			pkg.WriteResponseBytes(w, pkg.ContentType.JSON, notFoundJson, http.StatusNotFound)
			return
		}
		if errors.Is(err, exercises.ErrEmptyExerciseName) {
			http.Error(w, "error, exercise name empty", http.StatusBadRequest)
			return
		}
		log.Errorf("save progress, resolve exercise for user %d: %s", userID, err)
		http.Error(w, "failed to resolve exercise", http.StatusInternalServerError)
		return
	}

	if _, err := handler.resolver.EnsureUserLink(ctx, userID, exercise.ID); err != nil {
		log.Errorf("save progress, ensure user link for user %d: %s", userID, err)
		http.Error(w, "error, failed to save progress", http.StatusInternalServerError)
		return
	}

	savedRecord, err := handler.repo.Upsert(ctx, Record{
		UserID:     userID,
		ExerciseID: exercise.ID,
		Exercise:   exercise.Name,
		Date:       req.Date,
		Progress:   req.Progress,
	})
	if err != nil {
		log.Errorf("failed to save progress record for user %d: %s", userID, err)
		http.Error(w, "error, failed to save progress", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterProgressRecords.Inc()
	}

	savedRecordJson, err := json.Marshal(savedRecord)
	if err != nil {
		log.Errorf("failed to marshal saved progress record: %s", err)
		http.Error(w, "error, failed to save progress", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, savedRecordJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.list")
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

	exercise, err := handler.resolver.Resolve(ctx, exerciseName)
	if err != nil {
		var notFoundErr *exercises.NotFoundError
		if errors.As(err, &notFoundErr) {
			notFoundJson, err := json.Marshal(notFoundErr)
			if err != nil {
				log.Errorf("failed to marshal exercise suggestions: %s", err)
				http.Error(w, "exercise not found", http.StatusNotFound)
				return
			}
			pkg.WriteResponseBytes(w, pkg.ContentType.JSON, notFoundJson, http.StatusNotFound)
			return
		}
		log.Errorf("list progress, resolve exercise for user %d: %s", userID, err)
		http.Error(w, "failed to resolve exercise", http.StatusInternalServerError)
		return
	}

	records, err := handler.repo.List(ctx, userID, exercise.ID, from, to)
	if err != nil {
		log.Errorf("list progress for user %d: %s", userID, err)
		http.Error(w, "failed to get progress records", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Records: records,
		Total:   len(records),
	})
	if err != nil {
		log.Errorf("marshal progress records error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
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
