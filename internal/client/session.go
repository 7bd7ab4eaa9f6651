package client

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"pet-adoption/internal/catalog"
	"pet-adoption/internal/platform/httpclient"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Session mantiene la copia local (pets, adopciones, reviews) y la lista
// reconciliada de disponibles. Toda mutación termina en Refresh.
type Session struct {
	api *Client
	log *zap.Logger

	mu        sync.RWMutex
	pets      []catalog.Pet
	adoptions []catalog.Adoption
	reviews   []catalog.Review
	available []catalog.Pet
}

func NewSession(api *Client, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{api: api, log: log}
}

// Refresh trae pets, adopciones y reviews en paralelo y recalcula disponibles.
// Las lecturas son independientes: puede haber una ventana inconsistente entre ellas.
func (s *Session) Refresh(ctx context.Context) error {
	var (
		petList   []catalog.Pet
		adoptList []catalog.Adoption
		reviews   []catalog.Review
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		petList, err = s.api.ListPets(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		adoptList, err = s.api.ListAdoptions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = s.api.ListReviews(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("refresh failed", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.pets = petList
	s.adoptions = adoptList
	s.reviews = reviews
	s.available = catalog.Reconcile(petList, adoptList)
	n := len(s.available)
	s.mu.Unlock()

	s.log.Debug("refreshed",
		zap.Int("pets", len(petList)),
		zap.Int("adoptions", len(adoptList)),
		zap.Int("available", n),
	)
	return nil
}

// Available devuelve una copia de las mascotas sin adopción.
func (s *Session) Available() []catalog.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.available)
}

func (s *Session) Reviews() []catalog.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.reviews)
}

// Pet busca en la lista completa (incluye adoptadas).
func (s *Session) Pet(id int64) (catalog.Pet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := slices.IndexFunc(s.pets, func(p catalog.Pet) bool { return p.ID == id })
	if i < 0 {
		return catalog.Pet{}, false
	}
	return s.pets[i], true
}

type Home struct {
	Pets    []catalog.Pet
	Reviews []catalog.Review
}

func (s *Session) Home() Home {
	return Home{
		Pets:    catalog.Take(s.Available(), catalog.HomePets),
		Reviews: catalog.Take(s.Reviews(), catalog.HomeReviews),
	}
}

// Search filtra disponibles y devuelve la página pedida (acotada).
func (s *Session) Search(query string, page int, fields ...catalog.Field) catalog.Page[catalog.Pet] {
	return catalog.Paginate(catalog.Filter(s.Available(), query, fields...), page, catalog.PageSize)
}

// ToggleLike invierte isLiked localmente y lo persiste. Si falla, revierte.
func (s *Session) ToggleLike(ctx context.Context, id int64) (bool, error) {
	liked, ok := s.setLocalLike(id, nil)
	if !ok {
		return false, fmt.Errorf("toggle like: pet %d not loaded", id)
	}

	if _, err := s.api.SetLiked(ctx, id, liked); err != nil {
		prev := !liked
		s.setLocalLike(id, &prev)
		s.log.Error("toggle like failed, reverted",
			zap.Int64("pet_id", id),
			zap.Bool("liked", liked),
			zap.Error(err),
		)
		return !liked, err
	}

	if err := s.Refresh(ctx); err != nil {
		return liked, err
	}
	return liked, nil
}

// setLocalLike fija isLiked (o lo invierte si v es nil) en ambas listas.
func (s *Session) setLocalLike(id int64, v *bool) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.pets, func(p catalog.Pet) bool { return p.ID == id })
	if i < 0 {
		return false, false
	}
	liked := !s.pets[i].IsLiked
	if v != nil {
		liked = *v
	}
	s.pets[i].IsLiked = liked
	for j := range s.available {
		if s.available[j].ID == id {
			s.available[j].IsLiked = liked
		}
	}
	return liked, true
}

func (s *Session) CreatePet(ctx context.Context, in PetInput, file *httpclient.File) (catalog.Pet, error) {
	p, err := s.api.CreatePet(ctx, in, file)
	if err != nil {
		return catalog.Pet{}, err
	}
	return p, s.Refresh(ctx)
}

func (s *Session) UpdatePet(ctx context.Context, patch PetPatch, file *httpclient.File) (catalog.Pet, error) {
	p, err := s.api.UpdatePet(ctx, patch, file)
	if err != nil {
		return catalog.Pet{}, err
	}
	return p, s.Refresh(ctx)
}

func (s *Session) DeletePet(ctx context.Context, id int64) error {
	if err := s.api.DeletePet(ctx, id); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *Session) Adopt(ctx context.Context, in AdoptionInput) (catalog.Adoption, error) {
	a, err := s.api.SubmitAdoption(ctx, in)
	if err != nil {
		return catalog.Adoption{}, err
	}
	return a, s.Refresh(ctx)
}

func (s *Session) SubmitReview(ctx context.Context, in ReviewInput, file *httpclient.File) (catalog.Review, error) {
	r, err := s.api.SubmitReview(ctx, in, file)
	if err != nil {
		return catalog.Review{}, err
	}
	return r, s.Refresh(ctx)
}
