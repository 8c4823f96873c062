package plans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/trackfit/trackfitcom/internal/auth"
	"github.com/trackfit/trackfitcom/internal/exercises"
	"github.com/trackfit/trackfitcom/internal/telemetry/tracing"
	"github.com/trackfit/trackfitcom/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plans_test

type plansRepo interface {
	Save(ctx context.Context, plan Plan, overwrite bool) (*Plan, error)
	ListByUser(ctx context.Context, userID int) ([]Plan, error)
	Delete(ctx context.Context, userID, planID int) error
}

type batchPreparer interface {
	PrepareBatch(ctx context.Context, userID int, items []exercises.BatchItem) ([]exercises.PreparedExercise, error)
}

type SavePlanRequest struct {
	Name      string                `json:"name"`
	Goal      string                `json:"goal"`
	Exercises []exercises.BatchItem `json:"exercises"`
}

type ListResponse struct {
	Plans []Plan `json:"plans"`
	Total int    `json:"total"`
}

type DeletePlanResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo     plansRepo
	preparer batchPreparer
}

func NewHandler(repo plansRepo, preparer batchPreparer) *Handler {
	return &Handler{
		repo:     repo,
		preparer: preparer,
	}
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.save")
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

	var req SavePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("save plan, unmarshal json params: %s", err)
		http.Error(w, "save plan failed", http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "error, plan name empty", http.StatusBadRequest)
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
		log.Errorf("save plan, prepare exercises for user %d: %s", userID, err)
		http.Error(w, "failed to resolve plan exercises", http.StatusBadRequest)
		return
	}

	plan := Plan{
		UserID:    userID,
		Name:      req.Name,
		Goal:      req.Goal,
		Exercises: make([]PlanExercise, 0, len(prepared)),
	}
	for _, p := range prepared {
		plan.Exercises = append(plan.Exercises, PlanExercise{
			ExerciseID:   p.ExerciseID,
			ExerciseName: p.ExerciseName,
			Sets:         p.Sets,
			Reps:         p.Reps,
		})
	}

	savedPlan, err := handler.repo.Save(ctx, plan, overwrite)
	if err != nil {
		if errors.Is(err, ErrPlanExists) {
			http.Error(w, "plan with that name already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to save plan for user %d: %s", userID, err)
		http.Error(w, "error, failed to save plan", http.StatusInternalServerError)
		return
	}

	savedPlanJson, err := json.Marshal(savedPlan)
	if err != nil {
		log.Errorf("failed to marshal saved plan: %s", err)
		http.Error(w, "error, failed to save plan", http.StatusInternalServerError)
		return
	}

	log.Debugf("plan saved: user %d, name %s", userID, savedPlan.Name)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, savedPlanJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	plans, err := handler.repo.ListByUser(ctx, userID)
	if err != nil {
		log.Errorf("list plans for user %d: %s", userID, err)
		http.Error(w, "failed to get plans", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Plans: plans,
		Total: len(plans),
	})
	if err != nil {
		log.Errorf("marshal plans error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.delete")
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
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete plan %d: %s", id, err)
		http.Error(w, "plan not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeletePlanResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
