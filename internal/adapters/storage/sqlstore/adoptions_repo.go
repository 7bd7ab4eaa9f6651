package sqlstore

import (
	"context"
	"fmt"
	"time"

	"pet-adoption/internal/domain/adoptions"

	"github.com/jmoiron/sqlx"
)

type adoptionRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	PetID     int64     `db:"pet_id"`
	Address   string    `db:"address"`
	Email     string    `db:"email"`
	PhoneNo   string    `db:"phone_no"`
	Reason    string    `db:"reason"`
	CreatedAt time.Time `db:"created_at"`
}

type AdoptionsRepo struct {
	db *sqlx.DB
}

func NewAdoptionsRepo(db *sqlx.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

func (r *AdoptionsRepo) Create(ctx context.Context, a adoptions.Adoption) (adoptions.Adoption, error) {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO adoptions (name, pet_id, address, email, phone_no, reason, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`, a.Name, a.PetID, a.Address, a.Email, a.PhoneNo, a.Reason, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		return adoptions.Adoption{}, fmt.Errorf("insert adoption: %w", err)
	}
	return a, nil
}

func (r *AdoptionsRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	var rows []adoptionRow
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT id, name, pet_id, address, email, phone_no, reason, created_at
		FROM adoptions
		ORDER BY created_at DESC, id DESC
	`); err != nil {
		return nil, fmt.Errorf("list adoptions: %w", err)
	}

	out := make([]adoptions.Adoption, 0, len(rows))
	for _, row := range rows {
		out = append(out, adoptions.Adoption{
			ID:        row.ID,
			Name:      row.Name,
			PetID:     row.PetID,
			Address:   row.Address,
			Email:     row.Email,
			PhoneNo:   row.PhoneNo,
			Reason:    row.Reason,
			CreatedAt: row.CreatedAt.UTC(),
		})
	}
	return out, nil
}

var _ adoptions.Repository = (*AdoptionsRepo)(nil)
