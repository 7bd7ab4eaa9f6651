package memory

import (
	"context"
	"sort"
	"sync"

	"pet-adoption/internal/domain/pets"
)

type PetRepo struct {
	mu        sync.RWMutex
	seq       int64
	byID      map[int64]pets.Pet
	adoptions *AdoptionRepo
}

// NewPetRepo necesita el repo de adopciones para resolver ListAvailable.
func NewPetRepo(adoptions *AdoptionRepo) *PetRepo {
	return &PetRepo{
		byID:      make(map[int64]pets.Pet),
		adoptions: adoptions,
	}
}

func (r *PetRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	p.ID = r.seq
	r.byID[p.ID] = p
	return p, nil
}

// Reset vacía el repo (no reinicia la secuencia de ids).
func (r *PetRepo) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[int64]pets.Pet)
}

// Update aplica el patch bajo el lock, sobre el estado vigente.
func (r *PetRepo) Update(ctx context.Context, id int64, patch pets.Patch) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.byID[id]
	if !exists {
		return pets.Pet{}, pets.ErrNotFound
	}
	updated := patch.Apply(current)
	r.byID[id] = updated
	return updated, nil
}

func (r *PetRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return pets.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *PetRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *PetRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(nil), nil
}

func (r *PetRepo) ListAvailable(ctx context.Context) ([]pets.Pet, error) {
	adopted := map[int64]struct{}{}
	if r.adoptions != nil {
		adopted = r.adoptions.petIDs()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(adopted), nil
}

// sorted: created_at desc, empate por id desc (igual que el store SQL).
func (r *PetRepo) sorted(exclude map[int64]struct{}) []pets.Pet {
	out := make([]pets.Pet, 0, len(r.byID))
	for id, p := range r.byID {
		if _, skip := exclude[id]; skip {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

var _ pets.Repository = (*PetRepo)(nil)
