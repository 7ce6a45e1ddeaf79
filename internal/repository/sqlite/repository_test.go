package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"
)

func openTestDB(t *testing.T) (*sql.DB, repository.UserRepository, repository.RecordRepository) {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	users := NewUserRepository(db)
	records := NewRecordRepository(db)
	ctx := context.Background()
	if err := users.Init(ctx); err != nil {
		t.Fatalf("init users: %v", err)
	}
	if err := records.Init(ctx); err != nil {
		t.Fatalf("init records: %v", err)
	}
	return db, users, records
}

func makeUser(t *testing.T, users repository.UserRepository, name string) *domain.User {
	t.Helper()
	user := &domain.User{
		Name:         name,
		Gender:       "female",
		DOB:          time.Date(1992, 4, 15, 0, 0, 0, 0, time.UTC),
		Height:       168.5,
		Weight:       60.2,
		Service:      "army",
		PasswordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
	}
	if _, err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return user
}

func TestUserCreateAndLookup(t *testing.T) {
	_, users, _ := openTestDB(t)
	ctx := context.Background()

	created := makeUser(t, users, "alice")
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	byName, err := users.GetByName(ctx, "alice")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if byName.ID != created.ID || byName.Gender != "female" || byName.Service != "army" {
		t.Errorf("unexpected user: %+v", byName)
	}

	byID, err := users.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.Name != "alice" {
		t.Errorf("got name %q, want alice", byID.Name)
	}
}

func TestUserNameUnique(t *testing.T) {
	_, users, _ := openTestDB(t)

	makeUser(t, users, "alice")
	dup := &domain.User{
		Name: "alice", Gender: "female",
		DOB:    time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Height: 160, Weight: 55, Service: "navy", PasswordHash: "x",
	}
	if _, err := users.Create(context.Background(), dup); !errors.Is(err, domain.ErrNameTaken) {
		t.Errorf("got %v, want ErrNameTaken", err)
	}
}

func TestUserNotFound(t *testing.T) {
	_, users, _ := openTestDB(t)

	if _, err := users.GetByName(context.Background(), "nobody"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("get by name: got %v, want ErrNotFound", err)
	}
	if _, err := users.GetByID(context.Background(), 999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("get by id: got %v, want ErrNotFound", err)
	}
}

func TestRecordsScopedAndOrdered(t *testing.T) {
	_, users, records := openTestDB(t)
	ctx := context.Background()

	alice := makeUser(t, users, "alice")
	bob := makeUser(t, users, "bob")
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	for _, w := range []*domain.Workout{
		{UserID: alice.ID, Date: day, WorkoutType: "Run", Duration: 30},
		{UserID: bob.ID, Date: day, WorkoutType: "Swim", Duration: 45},
		{UserID: alice.ID, Date: day, WorkoutType: "Yoga", Duration: 60},
	} {
		if _, err := records.CreateWorkout(ctx, w); err != nil {
			t.Fatalf("create workout: %v", err)
		}
	}
	if _, err := records.CreateHydration(ctx, &domain.Hydration{UserID: alice.ID, Date: day, WaterIntake: 2.5}); err != nil {
		t.Fatalf("create hydration: %v", err)
	}
	if _, err := records.CreateSymptom(ctx, &domain.Symptom{UserID: bob.ID, Date: day, Description: "headache"}); err != nil {
		t.Fatalf("create symptom: %v", err)
	}
	if _, err := records.CreatePeriod(ctx, &domain.Period{UserID: alice.ID, StartDate: day, EndDate: day.AddDate(0, 0, 4)}); err != nil {
		t.Fatalf("create period: %v", err)
	}

	workouts, err := records.ListWorkouts(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list workouts: %v", err)
	}
	if len(workouts) != 2 {
		t.Fatalf("got %d workouts for alice, want 2", len(workouts))
	}
	if workouts[0].WorkoutType != "Run" || workouts[1].WorkoutType != "Yoga" {
		t.Errorf("workouts out of insertion order: %+v", workouts)
	}

	hydrations, err := records.ListHydrations(ctx, bob.ID)
	if err != nil {
		t.Fatalf("list hydrations: %v", err)
	}
	if len(hydrations) != 0 {
		t.Errorf("bob sees alice's hydration: %+v", hydrations)
	}

	symptoms, err := records.ListSymptoms(ctx, bob.ID)
	if err != nil {
		t.Fatalf("list symptoms: %v", err)
	}
	if len(symptoms) != 1 || symptoms[0].Description != "headache" {
		t.Errorf("unexpected symptoms for bob: %+v", symptoms)
	}

	periods, err := records.ListPeriods(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list periods: %v", err)
	}
	if len(periods) != 1 {
		t.Fatalf("got %d periods, want 1", len(periods))
	}
	if !periods[0].StartDate.Equal(day) || !periods[0].EndDate.Equal(day.AddDate(0, 0, 4)) {
		t.Errorf("period dates round-tripped wrong: %+v", periods[0])
	}
}

func TestRecordRequiresExistingUser(t *testing.T) {
	_, _, records := openTestDB(t)

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := records.CreateWorkout(context.Background(), &domain.Workout{
		UserID: 12345, Date: day, WorkoutType: "Run", Duration: 30,
	})
	if err == nil {
		t.Error("insert with dangling user id should violate the foreign key")
	}
}
