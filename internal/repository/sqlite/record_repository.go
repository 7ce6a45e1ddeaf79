package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"fittrack/internal/domain"
	"fittrack/internal/repository"
)

const createRecordTables = `
CREATE TABLE IF NOT EXISTS workouts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id),
	date DATE NOT NULL,
	workout_type TEXT NOT NULL,
	duration INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_workouts_user ON workouts(user_id);

CREATE TABLE IF NOT EXISTS hydrations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id),
	date DATE NOT NULL,
	water_intake REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_hydrations_user ON hydrations(user_id);

CREATE TABLE IF NOT EXISTS symptoms (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id),
	date DATE NOT NULL,
	description TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_symptoms_user ON symptoms(user_id);

CREATE TABLE IF NOT EXISTS periods (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id),
	start_date DATE NOT NULL,
	end_date DATE NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_periods_user ON periods(user_id);
`

type RecordRepository struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) repository.RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createRecordTables); err != nil {
		return fmt.Errorf("create record tables: %w", err)
	}
	return nil
}

func (r *RecordRepository) CreateWorkout(ctx context.Context, w *domain.Workout) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO workouts (user_id, date, workout_type, duration)
VALUES (?, ?, ?, ?)`,
		w.UserID, w.Date, w.WorkoutType, w.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("insert workout: %w", err)
	}
	return lastInsertID(res, &w.ID, "workout")
}

func (r *RecordRepository) CreateHydration(ctx context.Context, h *domain.Hydration) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO hydrations (user_id, date, water_intake)
VALUES (?, ?, ?)`,
		h.UserID, h.Date, h.WaterIntake,
	)
	if err != nil {
		return 0, fmt.Errorf("insert hydration: %w", err)
	}
	return lastInsertID(res, &h.ID, "hydration")
}

func (r *RecordRepository) CreateSymptom(ctx context.Context, s *domain.Symptom) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO symptoms (user_id, date, description)
VALUES (?, ?, ?)`,
		s.UserID, s.Date, s.Description,
	)
	if err != nil {
		return 0, fmt.Errorf("insert symptom: %w", err)
	}
	return lastInsertID(res, &s.ID, "symptom")
}

func (r *RecordRepository) CreatePeriod(ctx context.Context, p *domain.Period) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO periods (user_id, start_date, end_date)
VALUES (?, ?, ?)`,
		p.UserID, p.StartDate, p.EndDate,
	)
	if err != nil {
		return 0, fmt.Errorf("insert period: %w", err)
	}
	return lastInsertID(res, &p.ID, "period")
}

func lastInsertID(res sql.Result, dest *int64, kind string) (int64, error) {
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s last insert id: %w", kind, err)
	}
	*dest = id
	return id, nil
}

func (r *RecordRepository) ListWorkouts(ctx context.Context, userID int64) ([]domain.Workout, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, date, workout_type, duration
FROM workouts
WHERE user_id = ?
ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	var workouts []domain.Workout
	for rows.Next() {
		var w domain.Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Date, &w.WorkoutType, &w.Duration); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

func (r *RecordRepository) ListHydrations(ctx context.Context, userID int64) ([]domain.Hydration, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, date, water_intake
FROM hydrations
WHERE user_id = ?
ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list hydrations: %w", err)
	}
	defer rows.Close()

	var hydrations []domain.Hydration
	for rows.Next() {
		var h domain.Hydration
		if err := rows.Scan(&h.ID, &h.UserID, &h.Date, &h.WaterIntake); err != nil {
			return nil, fmt.Errorf("scan hydration: %w", err)
		}
		hydrations = append(hydrations, h)
	}
	return hydrations, rows.Err()
}

func (r *RecordRepository) ListSymptoms(ctx context.Context, userID int64) ([]domain.Symptom, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, date, description
FROM symptoms
WHERE user_id = ?
ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list symptoms: %w", err)
	}
	defer rows.Close()

	var symptoms []domain.Symptom
	for rows.Next() {
		var s domain.Symptom
		if err := rows.Scan(&s.ID, &s.UserID, &s.Date, &s.Description); err != nil {
			return nil, fmt.Errorf("scan symptom: %w", err)
		}
		symptoms = append(symptoms, s)
	}
	return symptoms, rows.Err()
}

func (r *RecordRepository) ListPeriods(ctx context.Context, userID int64) ([]domain.Period, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, start_date, end_date
FROM periods
WHERE user_id = ?
ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}
	defer rows.Close()

	var periods []domain.Period
	for rows.Next() {
		var p domain.Period
		if err := rows.Scan(&p.ID, &p.UserID, &p.StartDate, &p.EndDate); err != nil {
			return nil, fmt.Errorf("scan period: %w", err)
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}
