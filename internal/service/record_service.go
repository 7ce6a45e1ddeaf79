package service

import (
	"context"
	"strings"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"
)

// RecordService coordinates the four append-only health record collections.
// Every operation takes the owning user id from the authenticated session;
// records cannot be attributed to anyone else.
type RecordService interface {
	AddWorkout(ctx context.Context, userID int64, workoutType string, duration int) (*domain.Workout, error)
	AddHydration(ctx context.Context, userID int64, waterIntake float64) (*domain.Hydration, error)
	AddSymptom(ctx context.Context, userID int64, description string) (*domain.Symptom, error)
	AddPeriod(ctx context.Context, userID int64, startDate, endDate time.Time) (*domain.Period, error)
	ListForUser(ctx context.Context, userID int64) (*domain.Dashboard, error)
}

type recordService struct {
	records repository.RecordRepository
	now     func() time.Time
}

func NewRecordService(records repository.RecordRepository) RecordService {
	return &recordService{
		records: records,
		now:     time.Now,
	}
}

// today truncates the clock to a UTC calendar date, matching the DATE columns.
func (s *recordService) today() time.Time {
	return s.now().UTC().Truncate(24 * time.Hour)
}

func (s *recordService) AddWorkout(ctx context.Context, userID int64, workoutType string, duration int) (*domain.Workout, error) {
	workoutType = strings.TrimSpace(workoutType)
	if workoutType == "" {
		return nil, domain.Invalid("workout type is required")
	}
	if duration <= 0 {
		return nil, domain.Invalid("duration must be a positive number of minutes")
	}

	workout := &domain.Workout{
		UserID:      userID,
		Date:        s.today(),
		WorkoutType: workoutType,
		Duration:    duration,
	}
	if _, err := s.records.CreateWorkout(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *recordService) AddHydration(ctx context.Context, userID int64, waterIntake float64) (*domain.Hydration, error) {
	if waterIntake <= 0 {
		return nil, domain.Invalid("water intake must be a positive amount")
	}

	hydration := &domain.Hydration{
		UserID:      userID,
		Date:        s.today(),
		WaterIntake: waterIntake,
	}
	if _, err := s.records.CreateHydration(ctx, hydration); err != nil {
		return nil, err
	}
	return hydration, nil
}

func (s *recordService) AddSymptom(ctx context.Context, userID int64, description string) (*domain.Symptom, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, domain.Invalid("description is required")
	}

	symptom := &domain.Symptom{
		UserID:      userID,
		Date:        s.today(),
		Description: description,
	}
	if _, err := s.records.CreateSymptom(ctx, symptom); err != nil {
		return nil, err
	}
	return symptom, nil
}

func (s *recordService) AddPeriod(ctx context.Context, userID int64, startDate, endDate time.Time) (*domain.Period, error) {
	if startDate.IsZero() || endDate.IsZero() {
		return nil, domain.Invalid("start and end dates are required")
	}
	if endDate.Before(startDate) {
		return nil, domain.Invalid("end date must not be before start date")
	}

	period := &domain.Period{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	}
	if _, err := s.records.CreatePeriod(ctx, period); err != nil {
		return nil, err
	}
	return period, nil
}

func (s *recordService) ListForUser(ctx context.Context, userID int64) (*domain.Dashboard, error) {
	workouts, err := s.records.ListWorkouts(ctx, userID)
	if err != nil {
		return nil, err
	}
	hydrations, err := s.records.ListHydrations(ctx, userID)
	if err != nil {
		return nil, err
	}
	symptoms, err := s.records.ListSymptoms(ctx, userID)
	if err != nil {
		return nil, err
	}
	periods, err := s.records.ListPeriods(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.Dashboard{
		Workouts:   workouts,
		Hydrations: hydrations,
		Symptoms:   symptoms,
		Periods:    periods,
	}, nil
}
