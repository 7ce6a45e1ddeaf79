package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fittrack/internal/domain"
	"fittrack/internal/repository"
)

// RegisterInput carries every field collected by the registration form.
// DOB arrives already parsed; the transport layer owns form-string decoding.
type RegisterInput struct {
	Name     string
	Gender   string
	DOB      time.Time
	Height   float64
	Weight   float64
	Service  string
	Password string
}

// UserService is the user directory plus credential store: registration,
// login verification, and lookup by session identity.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, name, password string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Gender = strings.TrimSpace(in.Gender)
	in.Service = strings.TrimSpace(in.Service)

	switch {
	case in.Name == "":
		return nil, domain.Invalid("name is required")
	case in.Gender == "":
		return nil, domain.Invalid("gender is required")
	case in.Service == "":
		return nil, domain.Invalid("service is required")
	case in.DOB.IsZero():
		return nil, domain.Invalid("date of birth is required")
	case in.Height <= 0:
		return nil, domain.Invalid("height must be positive")
	case in.Weight <= 0:
		return nil, domain.Invalid("weight must be positive")
	case in.Password == "":
		return nil, domain.Invalid("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         in.Name,
		Gender:       in.Gender,
		DOB:          in.DOB,
		Height:       in.Height,
		Weight:       in.Weight,
		Service:      in.Service,
		PasswordHash: string(hash),
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return sanitizeUser(user), nil
}

func (s *userService) Authenticate(ctx context.Context, name, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByName(ctx, name)
	if err != nil {
		// unknown name and wrong password are indistinguishable to the caller
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return sanitizeUser(user), nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	clean := *user
	clean.PasswordHash = ""
	return &clean
}
