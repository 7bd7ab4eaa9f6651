package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/domain/pets"

	"github.com/jmoiron/sqlx"
)

const petColumns = `id, name, type, breed, sex, age, location, description, image,
	traits, primary_col, accent_col, is_liked, created_at`

type petRow struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Type        string    `db:"type"`
	Breed       string    `db:"breed"`
	Sex         string    `db:"sex"`
	Age         int       `db:"age"`
	Location    string    `db:"location"`
	Description string    `db:"description"`
	Image       string    `db:"image"`
	Traits      string    `db:"traits"`
	PrimaryCol  string    `db:"primary_col"`
	AccentCol   string    `db:"accent_col"`
	IsLiked     bool      `db:"is_liked"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r petRow) toDomain() pets.Pet {
	return pets.Pet{
		ID:          r.ID,
		Name:        r.Name,
		Type:        r.Type,
		Breed:       r.Breed,
		Sex:         r.Sex,
		Age:         r.Age,
		Location:    r.Location,
		Description: r.Description,
		Image:       r.Image,
		Traits:      r.Traits,
		PrimaryCol:  r.PrimaryCol,
		AccentCol:   r.AccentCol,
		IsLiked:     r.IsLiked,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

type PetsRepo struct {
	db *sqlx.DB
}

func NewPetsRepo(db *sqlx.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO pets (
			name, type, breed, sex, age,
			location, description, image, traits,
			primary_col, accent_col, is_liked, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING id
	`,
		p.Name,
		p.Type,
		p.Breed,
		p.Sex,
		p.Age,
		p.Location,
		p.Description,
		p.Image,
		p.Traits,
		p.PrimaryCol,
		p.AccentCol,
		p.IsLiked,
		p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		return pets.Pet{}, fmt.Errorf("insert pet: %w", err)
	}
	return p, nil
}

// Update arma el SET solo con las columnas presentes en el patch.
func (r *PetsRepo) Update(ctx context.Context, id int64, patch pets.Patch) (pets.Pet, error) {
	sets, args := patchAssignments(patch)
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE pets SET %s WHERE id = $%d RETURNING `+petColumns,
		strings.Join(sets, ", "), len(args))

	var row petRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("update pet %d: %w", id, err)
	}
	return row.toDomain(), nil
}

func patchAssignments(p pets.Patch) ([]string, []any) {
	var (
		sets []string
		args []any
	)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	str := func(col string, v *string) {
		if v != nil {
			add(col, *v)
		}
	}
	str("name", p.Name)
	str("type", p.Type)
	str("breed", p.Breed)
	str("sex", p.Sex)
	if p.Age != nil {
		add("age", *p.Age)
	}
	str("location", p.Location)
	str("description", p.Description)
	str("image", p.Image)
	str("traits", p.Traits)
	str("primary_col", p.PrimaryCol)
	str("accent_col", p.AccentCol)
	if p.IsLiked != nil {
		add("is_liked", *p.IsLiked)
	}
	return sets, args
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pet %d: %w", id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	var row petRow
	err := r.db.GetContext(ctx, &row, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("get pet %d: %w", id, err)
	}
	return row.toDomain(), nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.selectPets(ctx, `
		SELECT `+petColumns+`
		FROM pets
		ORDER BY created_at DESC, id DESC
	`)
}

// ListAvailable: anti-join contra adoptions en una sola query (sin carrera entre dos fetches).
func (r *PetsRepo) ListAvailable(ctx context.Context) ([]pets.Pet, error) {
	return r.selectPets(ctx, `
		SELECT `+petColumns+`
		FROM pets p
		WHERE NOT EXISTS (
			SELECT 1 FROM adoptions a WHERE a.pet_id = p.id
		)
		ORDER BY p.created_at DESC, p.id DESC
	`)
}

func (r *PetsRepo) selectPets(ctx context.Context, query string) ([]pets.Pet, error) {
	var rows []petRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	out := make([]pets.Pet, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

var _ pets.Repository = (*PetsRepo)(nil)
