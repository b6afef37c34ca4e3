package directory

import (
	"context"
	"errors"
	"strings"

	"roombook/internal/domain"
	"roombook/internal/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

// FindByEmail returns ErrNotFound when no user has the email.
func (s *Service) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// Create registers a new user and returns it with the assigned id. An email
// or phone already taken comes back as ErrDuplicateUser instead of the raw
// constraint error.
func (s *Service) Create(ctx context.Context, name, email, phone string) (*domain.User, error) {
	u := &domain.User{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
	}
	if err := validator.Struct(u); err != nil {
		return nil, ErrValidation
	}

	if err := s.users.Create(ctx, u); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// The sqlite driver reports constraint failures only through the message.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
