package users

import (
	"context"
	"errors"

	"github.com/saaslanding/saaslanding/backend/api/internal/models"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service encapsulates signup/signin business logic
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// SignUp inserts a new user unless the email is already registered.
// The existence check and the insert are two round-trips with no
// transaction; concurrent signups can race in duplicate emails.
func (s *Service) SignUp(ctx context.Context, u *models.User) (string, error) {
	existing, err := s.repo.FindByEmail(ctx, u.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrEmailTaken
	}
	return s.repo.Insert(ctx, u)
}

// SignIn is a stateless credential check: exact match of the stored
// password_hash against the supplied value. No session or token is issued.
func (s *Service) SignIn(ctx context.Context, email, passwordHash string) (*models.User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	if u.PasswordHash != passwordHash {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
