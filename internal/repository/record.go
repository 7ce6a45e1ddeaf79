package repository

import (
	"context"

	"fittrack/internal/domain"
)

// RecordRepository exposes persistence for the four append-only health record
// kinds. Every list is scoped to one owning user and ordered by id ascending.
// Records are never updated or deleted.
type RecordRepository interface {
	Init(ctx context.Context) error

	CreateWorkout(ctx context.Context, w *domain.Workout) (int64, error)
	CreateHydration(ctx context.Context, h *domain.Hydration) (int64, error)
	CreateSymptom(ctx context.Context, s *domain.Symptom) (int64, error)
	CreatePeriod(ctx context.Context, p *domain.Period) (int64, error)

	ListWorkouts(ctx context.Context, userID int64) ([]domain.Workout, error)
	ListHydrations(ctx context.Context, userID int64) ([]domain.Hydration, error)
	ListSymptoms(ctx context.Context, userID int64) ([]domain.Symptom, error)
	ListPeriods(ctx context.Context, userID int64) ([]domain.Period, error)
}
