package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/ports/media"
)

var (
	ErrNotFound = errors.New("pet not found")

	ErrIDRequired = apperr.Invalid("Pet ID is required")
)

type Service struct {
	repo   Repository
	images media.ImageSaver
	now    func() time.Time
}

// images puede ser nil: en ese caso los uploads se rechazan.
func NewService(repo Repository, images media.ImageSaver) *Service {
	return &Service{
		repo:   repo,
		images: images,
		now:    time.Now,
	}
}

type CreateInput struct {
	Name        string
	Type        string
	Breed       string
	Sex         string
	Age         int
	Location    string
	Description string
	Image       string
	Traits      string
	PrimaryCol  string
	AccentCol   string
}

func (in CreateInput) Validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return apperr.Invalid("name is required")
	case strings.TrimSpace(in.Breed) == "":
		return apperr.Invalid("breed is required")
	case strings.TrimSpace(in.Sex) == "":
		return apperr.Invalid("sex is required")
	case in.Age < 0:
		return apperr.Invalid("age must be a non-negative integer")
	}
	return nil
}

// Patch: punteros para PATCH real, nil = no tocar.
type Patch struct {
	Name        *string
	Type        *string
	Breed       *string
	Sex         *string
	Age         *int
	Location    *string
	Description *string
	Image       *string
	Traits      *string
	PrimaryCol  *string
	AccentCol   *string
	IsLiked     *bool
}

func (p Patch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return apperr.Invalid("name cannot be empty")
	}
	if p.Age != nil && *p.Age < 0 {
		return apperr.Invalid("age must be a non-negative integer")
	}
	return nil
}

// Apply devuelve una copia de pet con los campos presentes del patch aplicados, tal cual vienen.
func (p Patch) Apply(pet Pet) Pet {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&pet.Name, p.Name)
	set(&pet.Type, p.Type)
	set(&pet.Breed, p.Breed)
	set(&pet.Sex, p.Sex)
	set(&pet.Location, p.Location)
	set(&pet.Description, p.Description)
	set(&pet.Image, p.Image)
	set(&pet.Traits, p.Traits)
	set(&pet.PrimaryCol, p.PrimaryCol)
	set(&pet.AccentCol, p.AccentCol)
	if p.Age != nil {
		pet.Age = *p.Age
	}
	if p.IsLiked != nil {
		pet.IsLiked = *p.IsLiked
	}
	return pet
}

// normalized recorta los campos de texto. Image se guarda literal.
func (p Patch) normalized() Patch {
	trim := func(v *string) *string {
		if v == nil {
			return nil
		}
		t := strings.TrimSpace(*v)
		return &t
	}
	p.Name = trim(p.Name)
	p.Type = trim(p.Type)
	p.Breed = trim(p.Breed)
	p.Sex = trim(p.Sex)
	p.Location = trim(p.Location)
	p.Description = trim(p.Description)
	p.Traits = trim(p.Traits)
	p.PrimaryCol = trim(p.PrimaryCol)
	p.AccentCol = trim(p.AccentCol)
	return p
}

func (s *Service) Create(ctx context.Context, in CreateInput, up *media.Upload) (Pet, error) {
	if err := in.Validate(); err != nil {
		return Pet{}, err
	}

	image := in.Image
	if up != nil {
		url, err := s.saveImage(ctx, *up)
		if err != nil {
			return Pet{}, err
		}
		image = url
	}

	p := Pet{
		Name:        strings.TrimSpace(in.Name),
		Type:        strings.TrimSpace(in.Type),
		Breed:       strings.TrimSpace(in.Breed),
		Sex:         strings.TrimSpace(in.Sex),
		Age:         in.Age,
		Location:    strings.TrimSpace(in.Location),
		Description: strings.TrimSpace(in.Description),
		Image:       image,
		Traits:      strings.TrimSpace(in.Traits),
		PrimaryCol:  strings.TrimSpace(in.PrimaryCol),
		AccentCol:   strings.TrimSpace(in.AccentCol),
		IsLiked:     false,
		CreatedAt:   s.now().UTC().Truncate(time.Microsecond),
	}

	// el archivo ya quedó escrito; si el insert falla queda huérfano (aceptado)
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return Pet{}, fmt.Errorf("create pet: %w", err)
	}
	return created, nil
}

// Update aplica un patch parcial. Un upload reemplaza la imagen aunque venga Image en el patch.
func (s *Service) Update(ctx context.Context, id int64, patch Patch, up *media.Upload) (Pet, error) {
	if id <= 0 {
		return Pet{}, ErrIDRequired
	}
	if err := patch.Validate(); err != nil {
		return Pet{}, err
	}

	if up != nil {
		// no dejar un archivo escrito para un id inexistente
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			return Pet{}, fmt.Errorf("update pet %d: %w", id, err)
		}
		url, err := s.saveImage(ctx, *up)
		if err != nil {
			return Pet{}, err
		}
		patch.Image = &url
	}

	// el store escribe solo los campos presentes; no hay lectura previa que pisar
	updated, err := s.repo.Update(ctx, id, patch.normalized())
	if err != nil {
		return Pet{}, fmt.Errorf("update pet %d: %w", id, err)
	}
	return updated, nil
}

// SetLiked es el atajo del toggle de "me gusta".
func (s *Service) SetLiked(ctx context.Context, id int64, liked bool) (Pet, error) {
	return s.Update(ctx, id, Patch{IsLiked: &liked}, nil)
}

// Delete borra sin condiciones (no revisa adopciones). Un id inexistente es error del store.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete pet %d: %w", id, err)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListAvailable(ctx context.Context) ([]Pet, error) {
	return s.repo.ListAvailable(ctx)
}

func (s *Service) saveImage(ctx context.Context, up media.Upload) (string, error) {
	if s.images == nil {
		return "", errors.New("image uploads are not configured")
	}
	url, err := s.images.SaveImage(ctx, up)
	if err != nil {
		return "", fmt.Errorf("save pet image: %w", err)
	}
	return url, nil
}
