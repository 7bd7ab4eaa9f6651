package httpclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_RoundTrip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "abc", r.Header.Get("X-Trace"))
		var in map[string]any
		_ = json.NewDecoder(r.Body).Decode(&in)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"echo": in["name"]})
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL+"/", 0)
	require.NoError(t, err)

	var out struct{ Echo string }
	require.NoError(t, c.DoJSON(context.Background(), http.MethodPost, "pets", map[string]string{"X-Trace": "abc"}, map[string]any{"name": "Luna"}, &out))
	assert.Equal(t, "Luna", out.Echo)
}

func TestDoJSON_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Pet ID is required"}`))
	}))
	defer ts.Close()

	c, _ := NewWithBaseURL(ts.URL, 0)
	err := c.DoJSON(context.Background(), http.MethodPatch, "/pets", nil, map[string]any{}, nil)

	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.StatusCode)
	assert.Equal(t, "Pet ID is required", he.Message())
	assert.True(t, IsClientError(err))
}

func TestDoMultipart(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, fh, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		b, _ := io.ReadAll(f)

		_ = json.NewEncoder(w).Encode(map[string]string{
			"name":     r.FormValue("name"),
			"filename": fh.Filename,
			"ctype":    fh.Header.Get("Content-Type"),
			"content":  string(b),
		})
	}))
	defer ts.Close()

	c, _ := NewWithBaseURL(ts.URL, 0)
	var out map[string]string
	err := c.DoMultipart(context.Background(), http.MethodPost, "/pets",
		map[string]string{"name": "Max"},
		&File{Name: "max.png", Content: strings.NewReader("png"), MimeType: "image/png"},
		&out)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "Max", "filename": "max.png", "ctype": "image/png", "content": "png"}, out)
}

func TestResolveURL(t *testing.T) {
	c := New(0)
	_, err := c.resolveURL("/pets")
	assert.Error(t, err)

	u, err := c.resolveURL("https://x.example/pets")
	require.NoError(t, err)
	assert.Equal(t, "https://x.example/pets", u)

	_, err = NewWithBaseURL("::bad", 0)
	assert.Error(t, err)
}
