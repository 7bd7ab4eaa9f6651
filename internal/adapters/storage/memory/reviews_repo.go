package memory

import (
	"context"
	"sort"
	"sync"

	"pet-adoption/internal/domain/reviews"
)

type ReviewRepo struct {
	mu    sync.RWMutex
	seq   int64
	items []reviews.Review
}

func NewReviewRepo() *ReviewRepo {
	return &ReviewRepo{}
}

func (r *ReviewRepo) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = nil
}

func (r *ReviewRepo) Create(ctx context.Context, rv reviews.Review) (reviews.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	rv.ID = r.seq
	r.items = append(r.items, rv)
	return rv, nil
}

func (r *ReviewRepo) List(ctx context.Context) ([]reviews.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reviews.Review, len(r.items))
	copy(out, r.items)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

var _ reviews.Repository = (*ReviewRepo)(nil)
