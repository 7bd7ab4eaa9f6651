package adoptions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/platform/apperr"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name    string
	PetID   int64
	Address string
	Email   string
	PhoneNo string
	Reason  string
}

func (in CreateInput) Validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return apperr.Invalid("name is required")
	case in.PetID <= 0:
		return apperr.Invalid("petId is required")
	}
	return nil
}

// Create registra la solicitud. No verifica que la mascota exista ni que ya esté adoptada.
func (s *Service) Create(ctx context.Context, in CreateInput) (Adoption, error) {
	if err := in.Validate(); err != nil {
		return Adoption{}, err
	}

	a := Adoption{
		Name:      strings.TrimSpace(in.Name),
		PetID:     in.PetID,
		Address:   strings.TrimSpace(in.Address),
		Email:     strings.TrimSpace(in.Email),
		PhoneNo:   strings.TrimSpace(in.PhoneNo),
		Reason:    strings.TrimSpace(in.Reason),
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return Adoption{}, fmt.Errorf("create adoption: %w", err)
	}
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]Adoption, error) {
	return s.repo.List(ctx)
}
