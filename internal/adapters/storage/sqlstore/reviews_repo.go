package sqlstore

import (
	"context"
	"fmt"
	"time"

	"pet-adoption/internal/domain/reviews"

	"github.com/jmoiron/sqlx"
)

type reviewRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	PetName   string    `db:"pet_name"`
	Img       string    `db:"img"`
	Rating    int       `db:"rating"`
	Review    string    `db:"review"`
	CreatedAt time.Time `db:"created_at"`
}

type ReviewsRepo struct {
	db *sqlx.DB
}

func NewReviewsRepo(db *sqlx.DB) *ReviewsRepo {
	return &ReviewsRepo{db: db}
}

func (r *ReviewsRepo) Create(ctx context.Context, rv reviews.Review) (reviews.Review, error) {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO reviews (name, pet_name, img, rating, review, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`, rv.Name, rv.PetName, rv.Img, rv.Rating, rv.Review, rv.CreatedAt).Scan(&rv.ID)
	if err != nil {
		return reviews.Review{}, fmt.Errorf("insert review: %w", err)
	}
	return rv, nil
}

func (r *ReviewsRepo) List(ctx context.Context) ([]reviews.Review, error) {
	var rows []reviewRow
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT id, name, pet_name, img, rating, review, created_at
		FROM reviews
		ORDER BY created_at DESC, id DESC
	`); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	out := make([]reviews.Review, 0, len(rows))
	for _, row := range rows {
		out = append(out, reviews.Review{
			ID:        row.ID,
			Name:      row.Name,
			PetName:   row.PetName,
			Img:       row.Img,
			Rating:    row.Rating,
			Review:    row.Review,
			CreatedAt: row.CreatedAt.UTC(),
		})
	}
	return out, nil
}

var _ reviews.Repository = (*ReviewsRepo)(nil)
