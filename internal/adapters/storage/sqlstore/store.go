package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Store agrupa los repos SQL sobre un mismo pool. Las queries usan placeholders $N,
// que aceptan tanto pgx como modernc sqlite.
type Store struct {
	db *sqlx.DB

	Pets      *PetsRepo
	Reviews   *ReviewsRepo
	Adoptions *AdoptionsRepo
}

func New(db *sqlx.DB) *Store {
	return &Store{
		db:        db,
		Pets:      NewPetsRepo(db),
		Reviews:   NewReviewsRepo(db),
		Adoptions: NewAdoptionsRepo(db),
	}
}

// Reset borra todas las filas de las tres tablas en una transacción (usado por el seed).
func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("reset: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"adoptions", "reviews", "pets"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("reset: delete %s: %w", table, err)
		}
	}
	return tx.Commit()
}
