// Package seed carga los datos de ejemplo (pets, reviews, adopciones).
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"pet-adoption/internal/adapters/storage"
	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/reviews"
	"pet-adoption/internal/platform/logger"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type Fixtures struct {
	Pets      []PetFixture      `yaml:"pets"`
	Reviews   []ReviewFixture   `yaml:"reviews"`
	Adoptions []AdoptionFixture `yaml:"adoptions"`
}

type PetFixture struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Breed       string `yaml:"breed"`
	Sex         string `yaml:"sex"`
	Age         int    `yaml:"age"`
	Location    string `yaml:"location"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Traits      string `yaml:"traits"`
	PrimaryCol  string `yaml:"primaryCol"`
	AccentCol   string `yaml:"accentCol"`
}

type ReviewFixture struct {
	Name    string `yaml:"name"`
	PetName string `yaml:"petName"`
	Img     string `yaml:"img"`
	Rating  int    `yaml:"rating"`
	Review  string `yaml:"review"`
}

// AdoptionFixture referencia la mascota por nombre; el id se resuelve al insertar.
type AdoptionFixture struct {
	Name    string `yaml:"name"`
	Pet     string `yaml:"pet"`
	Address string `yaml:"address"`
	Email   string `yaml:"email"`
	PhoneNo string `yaml:"phoneNo"`
	Reason  string `yaml:"reason"`
}

// Default devuelve los fixtures embebidos.
func Default() (Fixtures, error) {
	return Parse(fixturesYAML)
}

func Parse(data []byte) (Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixtures{}, fmt.Errorf("parse fixtures: %w", err)
	}
	return f, nil
}

type Result struct {
	Pets      int
	Reviews   int
	Adoptions int
}

// Run borra todo y carga f. Pasa por los services, así aplica la misma validación que la API.
func Run(ctx context.Context, repos storage.Repos, f Fixtures, log logger.Logger) (Result, error) {
	if log == nil {
		log = logger.Nop()
	}
	if repos.Reset == nil {
		return Result{}, fmt.Errorf("seed: repos without reset")
	}
	if err := repos.Reset(ctx); err != nil {
		return Result{}, fmt.Errorf("seed reset: %w", err)
	}

	petsSvc := pets.NewService(repos.Pets, nil)
	reviewsSvc := reviews.NewService(repos.Reviews, nil)
	adoptionsSvc := adoptions.NewService(repos.Adoptions)

	var res Result
	ids := make(map[string]int64, len(f.Pets))

	for _, p := range f.Pets {
		created, err := petsSvc.Create(ctx, pets.CreateInput{
			Name:        p.Name,
			Type:        p.Type,
			Breed:       p.Breed,
			Sex:         p.Sex,
			Age:         p.Age,
			Location:    p.Location,
			Description: p.Description,
			Image:       p.Image,
			Traits:      p.Traits,
			PrimaryCol:  p.PrimaryCol,
			AccentCol:   p.AccentCol,
		}, nil)
		if err != nil {
			return res, fmt.Errorf("seed pet %s: %w", p.Name, err)
		}
		ids[p.Name] = created.ID
		res.Pets++
	}

	for _, r := range f.Reviews {
		if _, err := reviewsSvc.Create(ctx, reviews.CreateInput{
			Name:    r.Name,
			PetName: r.PetName,
			Img:     r.Img,
			Rating:  r.Rating,
			Review:  r.Review,
		}, nil); err != nil {
			return res, fmt.Errorf("seed review by %s: %w", r.Name, err)
		}
		res.Reviews++
	}

	for _, a := range f.Adoptions {
		petID, ok := ids[a.Pet]
		if !ok {
			return res, fmt.Errorf("seed adoption by %s: unknown pet %q", a.Name, a.Pet)
		}
		if _, err := adoptionsSvc.Create(ctx, adoptions.CreateInput{
			Name:    a.Name,
			PetID:   petID,
			Address: a.Address,
			Email:   a.Email,
			PhoneNo: a.PhoneNo,
			Reason:  a.Reason,
		}); err != nil {
			return res, fmt.Errorf("seed adoption by %s: %w", a.Name, err)
		}
		res.Adoptions++
	}

	log.Info("seed done", map[string]any{
		"pets":      res.Pets,
		"reviews":   res.Reviews,
		"adoptions": res.Adoptions,
	})
	return res, nil
}
