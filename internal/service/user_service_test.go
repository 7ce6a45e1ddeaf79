package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fittrack/internal/domain"
)

type fakeUserRepo struct {
	users  []*domain.User
	nextID int64
}

func (f *fakeUserRepo) Init(ctx context.Context) error { return nil }

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (int64, error) {
	for _, u := range f.users {
		if u.Name == user.Name {
			return 0, domain.ErrNameTaken
		}
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users = append(f.users, &stored)
	return user.ID, nil
}

func (f *fakeUserRepo) GetByName(ctx context.Context, name string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Name == name {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func validInput() RegisterInput {
	return RegisterInput{
		Name:     "alice",
		Gender:   "female",
		DOB:      time.Date(1992, 4, 15, 0, 0, 0, 0, time.UTC),
		Height:   168.5,
		Weight:   60.2,
		Service:  "army",
		Password: "pw123",
	}
}

func TestRegisterThenAuthenticate(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected assigned user id")
	}
	if user.PasswordHash != "" {
		t.Error("returned user must not expose the password hash")
	}

	got, err := svc.Authenticate(ctx, "alice", "pw123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("authenticated id %d, want %d", got.ID, user.ID)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, validInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Authenticate(ctx, "alice", "wrongpw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticateUnknownNameSameError(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	_, err := svc.Authenticate(context.Background(), "nobody", "pw123")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestStoredHashIsNotPlaintext(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	if _, err := svc.Register(context.Background(), validInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	stored := repo.users[0]
	if stored.PasswordHash == "" {
		t.Fatal("expected stored hash")
	}
	if stored.PasswordHash == "pw123" {
		t.Error("plaintext password was persisted")
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})
	ctx := context.Background()

	cases := map[string]func(*RegisterInput){
		"empty name":      func(in *RegisterInput) { in.Name = "  " },
		"empty gender":    func(in *RegisterInput) { in.Gender = "" },
		"empty service":   func(in *RegisterInput) { in.Service = "" },
		"zero dob":        func(in *RegisterInput) { in.DOB = time.Time{} },
		"zero height":     func(in *RegisterInput) { in.Height = 0 },
		"negative weight": func(in *RegisterInput) { in.Weight = -1 },
		"empty password":  func(in *RegisterInput) { in.Password = "" },
	}

	for name, mutate := range cases {
		in := validInput()
		mutate(&in)
		if _, err := svc.Register(ctx, in); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("%s: got %v, want ErrValidation", name, err)
		}
	}
}

func TestRegisterDuplicateName(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})
	ctx := context.Background()

	if _, err := svc.Register(ctx, validInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, validInput()); !errors.Is(err, domain.ErrNameTaken) {
		t.Errorf("got %v, want ErrNameTaken", err)
	}
}
