package exercises

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/trackfit/trackfitcom/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=resolver_mocks_test.go -package=exercises_test

type catalogRepo interface {
	GetByNormalizedName(ctx context.Context, name string) (*Exercise, error)
	Create(ctx context.Context, exercise Exercise) (*Exercise, error)
	AllNames(ctx context.Context) ([]string, error)
	UserLinkExists(ctx context.Context, userID, exerciseID int) (bool, error)
	CreateUserLink(ctx context.Context, userID, exerciseID int) error
}

var ErrEmptyExerciseName = errors.New("exercise name is empty")

// NotFoundError is returned by strict resolution when the given name
// matches no catalog entry. It carries the original input and up to
// MaxSuggestions closest catalog names.
type NotFoundError struct {
	Input       string   `json:"input"`
	Suggestions []string `json:"suggestions"`
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("exercise %q not found", e.Input)
	}
	return fmt.Sprintf(
		"exercise %q not found, did you mean: %s",
		e.Input, strings.Join(e.Suggestions, ", "),
	)
}

func (e *NotFoundError) Unwrap() error {
	return ErrExerciseNotFound
}

// Resolver maps free-text exercise references to canonical catalog
// entries and maintains the per-user usage links.
type Resolver struct {
	repo  catalogRepo
	names *NamesCache
}

func NewResolver(repo catalogRepo, namesTTL time.Duration) *Resolver {
	return &Resolver{
		repo:  repo,
		names: NewNamesCache(repo, namesTTL),
	}
}

// ResolveOrCreate looks the normalized name up in the catalog and
// creates the entry when absent. A create losing a race against a
// concurrent identical create falls back to the winner's row.
func (res *Resolver) ResolveOrCreate(ctx context.Context, name, category string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "resolver.exercises.resolveOrCreate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	normalized := NormalizeName(name)
	if normalized == "" {
		return nil, ErrEmptyExerciseName
	}
	span.SetAttributes(attribute.String("exercise.name", normalized))

	exercise, err := res.repo.GetByNormalizedName(ctx, normalized)
	if err == nil {
		return exercise, nil
	}
	if !errors.Is(err, ErrExerciseNotFound) {
		return nil, fmt.Errorf("get exercise by name: %w", err)
	}

	created, err := res.repo.Create(ctx, Exercise{
		Name:     normalized,
		Category: category,
	})
	if err == nil {
		res.names.Invalidate()
		return created, nil
	}
	if !errors.Is(err, ErrExerciseExists) {
		return nil, fmt.Errorf("create exercise: %w", err)
	}

	// lost a create race, the winner's row must be visible now
	exercise, err = res.repo.GetByNormalizedName(ctx, normalized)
	if err != nil {
		return nil, ErrExerciseExists
	}
	return exercise, nil
}

// Resolve is the strict variant: it never creates, and a miss comes
// back as a *NotFoundError with ranked suggestions.
func (res *Resolver) Resolve(ctx context.Context, name string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "resolver.exercises.resolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	normalized := NormalizeName(name)
	if normalized == "" {
		return nil, ErrEmptyExerciseName
	}
	span.SetAttributes(attribute.String("exercise.name", normalized))

	exercise, err := res.repo.GetByNormalizedName(ctx, normalized)
	if err == nil {
		return exercise, nil
	}
	if !errors.Is(err, ErrExerciseNotFound) {
		return nil, fmt.Errorf("get exercise by name: %w", err)
	}

	catalogNames, namesErr := res.names.Get(ctx)
	if namesErr != nil {
		// still a not-found, just without suggestions
		return nil, &NotFoundError{Input: name}
	}

	return nil, &NotFoundError{
		Input:       name,
		Suggestions: RankSuggestions(name, catalogNames, MaxSuggestions),
	}
}

// EnsureUserLink creates the (user, exercise) link if absent. Returns
// true when the link was created by this call.
func (res *Resolver) EnsureUserLink(ctx context.Context, userID, exerciseID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "resolver.exercises.ensureUserLink")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	exists, err := res.repo.UserLinkExists(ctx, userID, exerciseID)
	if err != nil {
		return false, fmt.Errorf("check user exercise link: %w", err)
	}
	if exists {
		return false, nil
	}

	if err := res.repo.CreateUserLink(ctx, userID, exerciseID); err != nil {
		if errors.Is(err, ErrUserLinkExists) {
			// lost a race, link is there either way
			return false, nil
		}
		return false, fmt.Errorf("create user exercise link: %w", err)
	}

	return true, nil
}

type preparedKey struct {
	exerciseID int
	sets       int
	reps       int
}

// PrepareBatch resolves every item, ensures the user links, and drops
// exact (exercise, sets, reps) duplicates within the batch. Items that
// resolve to the same exercise but differ in sets or reps are kept.
func (res *Resolver) PrepareBatch(ctx context.Context, userID int, items []BatchItem) (_ []PreparedExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "resolver.exercises.prepareBatch")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("batch.size", len(items)))

	seen := make(map[preparedKey]bool)
	prepared := make([]PreparedExercise, 0, len(items))
	for _, item := range items {
		exercise, err := res.ResolveOrCreate(ctx, item.ExerciseName, "")
		if err != nil {
			return nil, fmt.Errorf("resolve exercise %q: %w", item.ExerciseName, err)
		}

		if _, err := res.EnsureUserLink(ctx, userID, exercise.ID); err != nil {
			return nil, err
		}

		key := preparedKey{exerciseID: exercise.ID, sets: item.Sets, reps: item.Reps}
		if seen[key] {
			continue
		}
		seen[key] = true

		prepared = append(prepared, PreparedExercise{
			ExerciseID:   exercise.ID,
			ExerciseName: exercise.Name,
			Sets:         item.Sets,
			Reps:         item.Reps,
		})
	}

	return prepared, nil
}
