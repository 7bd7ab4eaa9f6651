package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64_Unmarshal(t *testing.T) {
	var v struct {
		ID Int64 `json:"id"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"id":7}`), &v))
	assert.EqualValues(t, 7, v.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"12"}`), &v))
	assert.EqualValues(t, 12, v.ID)

	v.ID = 0
	require.NoError(t, json.Unmarshal([]byte(`{"id":null}`), &v))
	assert.EqualValues(t, 0, v.ID)

	assert.Error(t, json.Unmarshal([]byte(`{"id":"abc"}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"id":true}`), &v))
}

func multipartRequest(t *testing.T, fields map[string]string, fileName string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestParseForm_ValuesAndFile(t *testing.T) {
	req := multipartRequest(t, map[string]string{
		"name":    "Luna",
		"age":     "4",
		"isLiked": "TRUE",
		"empty":   "",
	}, "cat pic.png", []byte("png"))
	require.True(t, IsMultipart(req))

	f, err := ParseForm(httptest.NewRecorder(), req, 1<<20)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "Luna", f.Value("name"))
	assert.Nil(t, f.String("missing"))
	require.NotNil(t, f.String("empty"))
	assert.Equal(t, "", *f.String("empty"))

	age, err := f.Int("age")
	require.NoError(t, err)
	assert.Equal(t, 4, *age)

	// solo "true" exacto cuenta como verdadero
	require.NotNil(t, f.Bool("isLiked"))
	assert.False(t, *f.Bool("isLiked"))

	up, closeFn, err := f.File("file")
	require.NoError(t, err)
	defer closeFn()
	require.NotNil(t, up)
	assert.Equal(t, "cat pic.png", up.Filename)
	b, _ := io.ReadAll(up.Body)
	assert.Equal(t, "png", string(b))
}

func TestParseForm_BadInt(t *testing.T) {
	req := multipartRequest(t, map[string]string{"age": "old"}, "", nil)
	f, err := ParseForm(httptest.NewRecorder(), req, 0)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Int("age")
	assert.EqualError(t, err, "age must be a number")

	up, closeFn, err := f.File("file")
	closeFn()
	assert.NoError(t, err)
	assert.Nil(t, up)
}

func TestParseForm_TooLarge(t *testing.T) {
	req := multipartRequest(t, nil, "big.png", bytes.Repeat([]byte("x"), 4096))
	_, err := ParseForm(httptest.NewRecorder(), req, 512)
	require.Error(t, err)
}

func TestIsMultipart(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Content-Type", "application/json")
	assert.False(t, IsMultipart(req))
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusBadRequest, "Pet ID is required")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Pet ID is required"}`, rec.Body.String())
}
