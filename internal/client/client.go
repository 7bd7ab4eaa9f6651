// Package client habla con la API de adopción (pets, reviews, adopt) desde Go.
// Lo usan la TUI y el CLI.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-adoption/internal/catalog"
	"pet-adoption/internal/platform/httpclient"
)

type Client struct {
	http *httpclient.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	if hc.BaseURL == "" {
		return nil, fmt.Errorf("client: base url is required")
	}
	return &Client{http: hc}, nil
}

// PetInput son los campos de alta. Traits se envía como array.
type PetInput struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Breed       string   `json:"breed"`
	Sex         string   `json:"sex"`
	Age         int      `json:"age"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Traits      []string `json:"traits"`
	PrimaryCol  string   `json:"primaryCol"`
	AccentCol   string   `json:"accentCol"`
}

func (in PetInput) fields() map[string]string {
	return map[string]string{
		"name":        in.Name,
		"type":        in.Type,
		"breed":       in.Breed,
		"sex":         in.Sex,
		"age":         strconv.Itoa(in.Age),
		"location":    in.Location,
		"description": in.Description,
		"image":       in.Image,
		"traits":      catalog.JoinTraits(in.Traits),
		"primaryCol":  in.PrimaryCol,
		"accentCol":   in.AccentCol,
	}
}

// PetPatch: nil = no se toca.
type PetPatch struct {
	ID          int64   `json:"id"`
	Name        *string `json:"name,omitempty"`
	Type        *string `json:"type,omitempty"`
	Breed       *string `json:"breed,omitempty"`
	Sex         *string `json:"sex,omitempty"`
	Age         *int    `json:"age,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	Traits      *string `json:"traits,omitempty"`
	PrimaryCol  *string `json:"primaryCol,omitempty"`
	AccentCol   *string `json:"accentCol,omitempty"`
	IsLiked     *bool   `json:"isLiked,omitempty"`
}

func (p PetPatch) fields() map[string]string {
	out := map[string]string{"id": strconv.FormatInt(p.ID, 10)}
	put := func(k string, v *string) {
		if v != nil {
			out[k] = *v
		}
	}
	put("name", p.Name)
	put("type", p.Type)
	put("breed", p.Breed)
	put("sex", p.Sex)
	put("location", p.Location)
	put("description", p.Description)
	put("image", p.Image)
	put("traits", p.Traits)
	put("primaryCol", p.PrimaryCol)
	put("accentCol", p.AccentCol)
	if p.Age != nil {
		out["age"] = strconv.Itoa(*p.Age)
	}
	if p.IsLiked != nil {
		out["isLiked"] = strconv.FormatBool(*p.IsLiked)
	}
	return out
}

type ReviewInput struct {
	Name    string `json:"name"`
	PetName string `json:"petName"`
	Img     string `json:"img"`
	Rating  int    `json:"rating"`
	Review  string `json:"review"`
}

type AdoptionInput struct {
	Name    string `json:"name"`
	PetID   int64  `json:"petId"`
	Address string `json:"address"`
	Email   string `json:"email"`
	PhoneNo string `json:"phoneNo"`
	Reason  string `json:"reason"`
}

func (c *Client) ListPets(ctx context.Context) ([]catalog.Pet, error) {
	var out []catalog.Pet
	if err := c.http.DoJSON(ctx, http.MethodGet, "/pets", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	return out, nil
}

func (c *Client) GetPet(ctx context.Context, id int64) (catalog.Pet, error) {
	var out catalog.Pet
	if err := c.http.DoJSON(ctx, http.MethodGet, "/pets/"+strconv.FormatInt(id, 10), nil, nil, &out); err != nil {
		return catalog.Pet{}, fmt.Errorf("get pet %d: %w", id, err)
	}
	return out, nil
}

// CreatePet manda JSON, o multipart si viene file.
func (c *Client) CreatePet(ctx context.Context, in PetInput, file *httpclient.File) (catalog.Pet, error) {
	var (
		out catalog.Pet
		err error
	)
	if file != nil {
		err = c.http.DoMultipart(ctx, http.MethodPost, "/pets", in.fields(), file, &out)
	} else {
		err = c.http.DoJSON(ctx, http.MethodPost, "/pets", nil, in, &out)
	}
	if err != nil {
		return catalog.Pet{}, fmt.Errorf("create pet: %w", err)
	}
	return out, nil
}

func (c *Client) UpdatePet(ctx context.Context, patch PetPatch, file *httpclient.File) (catalog.Pet, error) {
	var (
		out catalog.Pet
		err error
	)
	if file != nil {
		err = c.http.DoMultipart(ctx, http.MethodPatch, "/pets", patch.fields(), file, &out)
	} else {
		err = c.http.DoJSON(ctx, http.MethodPatch, "/pets", nil, patch, &out)
	}
	if err != nil {
		return catalog.Pet{}, fmt.Errorf("update pet %d: %w", patch.ID, err)
	}
	return out, nil
}

func (c *Client) SetLiked(ctx context.Context, id int64, liked bool) (catalog.Pet, error) {
	return c.UpdatePet(ctx, PetPatch{ID: id, IsLiked: &liked}, nil)
}

func (c *Client) DeletePet(ctx context.Context, id int64) error {
	in := map[string]int64{"id": id}
	if err := c.http.DoJSON(ctx, http.MethodDelete, "/pets", nil, in, nil); err != nil {
		return fmt.Errorf("delete pet %d: %w", id, err)
	}
	return nil
}

func (c *Client) ListReviews(ctx context.Context) ([]catalog.Review, error) {
	var out []catalog.Review
	if err := c.http.DoJSON(ctx, http.MethodGet, "/reviews", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return out, nil
}

func (c *Client) SubmitReview(ctx context.Context, in ReviewInput, file *httpclient.File) (catalog.Review, error) {
	var (
		out catalog.Review
		err error
	)
	if file != nil {
		fields := map[string]string{
			"name":    in.Name,
			"petName": in.PetName,
			"img":     in.Img,
			"rating":  strconv.Itoa(in.Rating),
			"review":  in.Review,
		}
		err = c.http.DoMultipart(ctx, http.MethodPost, "/reviews", fields, file, &out)
	} else {
		err = c.http.DoJSON(ctx, http.MethodPost, "/reviews", nil, in, &out)
	}
	if err != nil {
		return catalog.Review{}, fmt.Errorf("submit review: %w", err)
	}
	return out, nil
}

func (c *Client) ListAdoptions(ctx context.Context) ([]catalog.Adoption, error) {
	var out []catalog.Adoption
	if err := c.http.DoJSON(ctx, http.MethodGet, "/adopt", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("list adoptions: %w", err)
	}
	return out, nil
}

func (c *Client) SubmitAdoption(ctx context.Context, in AdoptionInput) (catalog.Adoption, error) {
	var out catalog.Adoption
	if err := c.http.DoJSON(ctx, http.MethodPost, "/adopt", nil, in, &out); err != nil {
		return catalog.Adoption{}, fmt.Errorf("submit adoption: %w", err)
	}
	return out, nil
}

// ErrorMessage devuelve el mensaje que mostró la API ({"error": ...}) o err.Error().
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		if msg := strings.TrimSpace(he.Message()); msg != "" {
			return msg
		}
	}
	return err.Error()
}
