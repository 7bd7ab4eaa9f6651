package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/ports/media"
)

type Service struct {
	repo   Repository
	images media.ImageSaver
	now    func() time.Time
}

func NewService(repo Repository, images media.ImageSaver) *Service {
	return &Service{
		repo:   repo,
		images: images,
		now:    time.Now,
	}
}

type CreateInput struct {
	Name    string
	PetName string
	Img     string
	Rating  int
	Review  string
}

func (in CreateInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return apperr.Invalid("name is required")
	}
	return nil
}

// Create guarda la reseña. Con upload, la imagen subida reemplaza a Img.
func (s *Service) Create(ctx context.Context, in CreateInput, up *media.Upload) (Review, error) {
	if err := in.Validate(); err != nil {
		return Review{}, err
	}

	img := in.Img
	if up != nil {
		if s.images == nil {
			return Review{}, errors.New("image uploads are not configured")
		}
		url, err := s.images.SaveImage(ctx, *up)
		if err != nil {
			return Review{}, fmt.Errorf("save review image: %w", err)
		}
		img = url
	}

	rv := Review{
		Name:      strings.TrimSpace(in.Name),
		PetName:   strings.TrimSpace(in.PetName),
		Img:       img,
		Rating:    in.Rating,
		Review:    strings.TrimSpace(in.Review),
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}

	created, err := s.repo.Create(ctx, rv)
	if err != nil {
		return Review{}, fmt.Errorf("create review: %w", err)
	}
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]Review, error) {
	return s.repo.List(ctx)
}
