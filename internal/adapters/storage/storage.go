package storage

import (
	"context"

	"pet-adoption/internal/adapters/storage/memory"
	"pet-adoption/internal/adapters/storage/sqlstore"
	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/reviews"

	"github.com/jmoiron/sqlx"
)

// Repos es el set de repositorios que consumen los servicios, más un Reset para el seed.
type Repos struct {
	Pets      pets.Repository
	Reviews   reviews.Repository
	Adoptions adoptions.Repository

	Reset func(ctx context.Context) error
}

// New usa SQL si db != nil; si no, repos in-memory (dev/tests).
func New(db *sqlx.DB) Repos {
	if db != nil {
		s := sqlstore.New(db)
		return Repos{
			Pets:      s.Pets,
			Reviews:   s.Reviews,
			Adoptions: s.Adoptions,
			Reset:     s.Reset,
		}
	}

	adopt := memory.NewAdoptionRepo()
	petRepo := memory.NewPetRepo(adopt)
	reviewRepo := memory.NewReviewRepo()
	return Repos{
		Pets:      petRepo,
		Reviews:   reviewRepo,
		Adoptions: adopt,
		Reset: func(context.Context) error {
			adopt.Reset()
			reviewRepo.Reset()
			petRepo.Reset()
			return nil
		},
	}
}
