package reviews

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/ports/media"
)

type testRepo struct {
	items []Review
}

func (r *testRepo) Create(ctx context.Context, rv Review) (Review, error) {
	rv.ID = int64(len(r.items) + 1)
	r.items = append(r.items, rv)
	return rv, nil
}

func (r *testRepo) List(ctx context.Context) ([]Review, error) {
	return r.items, nil
}

type stubImages struct{ calls int }

func (s *stubImages) SaveImage(ctx context.Context, up media.Upload) (string, error) {
	s.calls++
	_, _ = io.ReadAll(up.Body)
	return "/images/7-" + up.Filename, nil
}

func TestService_Create(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, nil)
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	rv, err := svc.Create(context.Background(), CreateInput{
		Name:    " Laura Jane ",
		PetName: "Luna",
		Img:     " /images/review-1.png",
		Rating:  9, // fuera de rango: se guarda igual
		Review:  "Great!",
	}, nil)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rv.ID != 1 || rv.Name != "Laura Jane" || rv.Rating != 9 || rv.Img != " /images/review-1.png" {
		t.Fatalf("unexpected review %#v", rv)
	}
	if !rv.CreatedAt.Equal(now) {
		t.Fatalf("expected CreatedAt=now")
	}
}

func TestService_Create_RequiresName(t *testing.T) {
	images := &stubImages{}
	svc := NewService(&testRepo{}, images)

	_, err := svc.Create(context.Background(), CreateInput{PetName: "Luna"}, &media.Upload{Filename: "x.png", Body: strings.NewReader("x")})
	if msg, ok := apperr.AsValidation(err); !ok || msg != "name is required" {
		t.Fatalf("expected validation error, got %v", err)
	}
	if images.calls != 0 {
		t.Fatalf("no upload should happen on invalid input")
	}
}

func TestService_Create_UploadReplacesImg(t *testing.T) {
	images := &stubImages{}
	svc := NewService(&testRepo{}, images)

	rv, err := svc.Create(context.Background(), CreateInput{Name: "Ryan", Img: "https://x/y.png"},
		&media.Upload{Filename: "nala.png", Body: strings.NewReader("x")})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rv.Img != "/images/7-nala.png" {
		t.Fatalf("expected uploaded img, got %q", rv.Img)
	}
}
