package memory

import (
	"context"
	"sort"
	"sync"

	"pet-adoption/internal/domain/adoptions"
)

// AdoptionRepo se expone concreto: el repo de pets lo consulta para ListAvailable.
type AdoptionRepo struct {
	mu    sync.RWMutex
	seq   int64
	items []adoptions.Adoption
}

func NewAdoptionRepo() *AdoptionRepo {
	return &AdoptionRepo{}
}

func (r *AdoptionRepo) Create(ctx context.Context, a adoptions.Adoption) (adoptions.Adoption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	a.ID = r.seq
	r.items = append(r.items, a)
	return a, nil
}

func (r *AdoptionRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.Adoption, len(r.items))
	copy(out, r.items)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *AdoptionRepo) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = nil
}

func (r *AdoptionRepo) petIDs() map[int64]struct{} {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return adoptions.AdoptedPetIDs(r.items)
}

var _ adoptions.Repository = (*AdoptionRepo)(nil)
