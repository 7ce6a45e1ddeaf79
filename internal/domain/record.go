package domain

import "time"

// Workout is a single exercise session. Duration is in minutes.
type Workout struct {
	ID          int64
	UserID      int64
	Date        time.Time
	WorkoutType string
	Duration    int
}

// Hydration logs water intake for a day. WaterIntake is in liters.
type Hydration struct {
	ID          int64
	UserID      int64
	Date        time.Time
	WaterIntake float64
}

// Symptom is a free-text health observation.
type Symptom struct {
	ID          int64
	UserID      int64
	Date        time.Time
	Description string
}

// Period covers a menstrual cycle interval. Both dates are caller supplied
// and StartDate never exceeds EndDate.
type Period struct {
	ID        int64
	UserID    int64
	StartDate time.Time
	EndDate   time.Time
}

// Dashboard aggregates every record kind owned by one user, each slice in
// insertion order.
type Dashboard struct {
	Workouts   []Workout
	Hydrations []Hydration
	Symptoms   []Symptom
	Periods    []Period
}
