package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"pet-adoption/internal/adapters/images"
	"pet-adoption/internal/client"
	"pet-adoption/internal/platform/blob"
	"pet-adoption/internal/platform/httpclient"
	"pet-adoption/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	URL       string
	failPatch atomic.Bool
}

// newAPI levanta el router real (repos in-memory) detrás de httptest.
func newAPI(t *testing.T) *testAPI {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "images")
	store, err := blob.NewLocalStore(dir, "/images")
	require.NoError(t, err)

	h := router.NewRouter(router.Options{
		Images:          images.NewUploader(store),
		ImagesDir:       dir,
		ImagesURLPrefix: "/images",
		MaxUploadBytes:  1 << 20,
	})

	api := &testAPI{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch && api.failPatch.Load() {
			http.Error(w, `{"error":"Failed to update pet"}`, http.StatusInternalServerError)
			return
		}
		h.ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)
	api.URL = ts.URL
	return api
}

func newClient(t *testing.T, api *testAPI) *client.Client {
	t.Helper()
	c, err := client.New(api.URL, 5*time.Second)
	require.NoError(t, err)
	return c
}

func petInput(name, breed string) client.PetInput {
	return client.PetInput{
		Name:     name,
		Type:     "dog",
		Breed:    breed,
		Sex:      "Male",
		Age:      3,
		Location: "Denver",
		Traits:   []string{"Friendly", "Loyal"},
	}
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := client.New("", time.Second)
	assert.Error(t, err)
}

func TestClient_CreateUpdateDelete(t *testing.T) {
	ctx := context.Background()
	c := newClient(t, newAPI(t))

	pet, err := c.CreatePet(ctx, petInput("Max", "Golden Retriever"), nil)
	require.NoError(t, err)
	assert.NotZero(t, pet.ID)
	assert.Equal(t, "Friendly,Loyal", pet.Traits)
	assert.Equal(t, "", pet.Image)

	name := "Maximus"
	updated, err := c.UpdatePet(ctx, client.PetPatch{ID: pet.ID, Name: &name}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Maximus", updated.Name)
	assert.Equal(t, pet.Breed, updated.Breed)
	assert.Equal(t, pet.Traits, updated.Traits)

	got, err := c.GetPet(ctx, pet.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maximus", got.Name)

	require.NoError(t, c.DeletePet(ctx, pet.ID))
	list, err := c.ListPets(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestClient_Errors(t *testing.T) {
	ctx := context.Background()
	c := newClient(t, newAPI(t))

	err := c.DeletePet(ctx, 0)
	require.Error(t, err)
	assert.True(t, httpclient.IsClientError(err))
	assert.Equal(t, "Pet ID is required", client.ErrorMessage(err))

	err = c.DeletePet(ctx, 999)
	require.Error(t, err)
	assert.False(t, httpclient.IsClientError(err))

	_, err = c.SubmitAdoption(ctx, client.AdoptionInput{PetID: 1})
	assert.Equal(t, "name is required", client.ErrorMessage(err))
}

func TestClient_MultipartUploads(t *testing.T) {
	ctx := context.Background()
	api := newAPI(t)
	c := newClient(t, api)

	pet, err := c.CreatePet(ctx, petInput("Luna", "Persian Cat"), &httpclient.File{
		Name:     "my cat.png",
		Content:  strings.NewReader("fake png"),
		MimeType: "image/png",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(pet.Image, "/images/"), pet.Image)
	assert.Contains(t, pet.Image, "my-cat.png")
	assert.Equal(t, "Friendly,Loyal", pet.Traits)

	resp, err := http.Get(api.URL + pet.Image)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	loc := "Austin"
	updated, err := c.UpdatePet(ctx, client.PetPatch{ID: pet.ID, Location: &loc}, &httpclient.File{
		Name:    "new.png",
		Content: strings.NewReader("other"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Austin", updated.Location)
	assert.Contains(t, updated.Image, "new.png")

	rev, err := c.SubmitReview(ctx, client.ReviewInput{Name: "Laura Jane", PetName: "Luna", Rating: 4, Review: "Great"}, &httpclient.File{
		Name:    "laura.jpg",
		Content: strings.NewReader("jpg"),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, rev.Rating)
	assert.Contains(t, rev.Img, "laura.jpg")
}
