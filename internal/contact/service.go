package contact

import (
	"context"

	"github.com/saaslanding/saaslanding/backend/api/internal/models"
)

// Service encapsulates contact form intake
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Submit inserts the message unconditionally and returns its identifier.
func (s *Service) Submit(ctx context.Context, m *models.ContactMessage) (string, error) {
	return s.repo.Insert(ctx, m)
}
