package adminclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarportal/internal/adminform"
	"scholarportal/internal/domain"
	"scholarportal/internal/domain/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewWithHTTPClient(srv.URL+"/", "tok", srv.Client())
}

func TestUpdateCollectionSendsPatchWithBearer(t *testing.T) {
	var gotBody map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/admin/collections/c1", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","name":"Renamed","collection_content_type":"book"}`))
	})

	got, err := client.UpdateCollection(context.Background(), "c1", adminform.Patch{"name": "Renamed", "description": nil})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, models.ContentTypeBook, got.ContentType)

	assert.Equal(t, map[string]interface{}{"name": "Renamed", "description": nil}, gotBody)
}

func TestProblemResponsesDecode(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
		fields   map[string]string
	}{
		{
			name:     "validation issues",
			status:   http.StatusBadRequest,
			body:     `{"type":"x","title":"Bad Request","status":400,"detail":"invalid request payload","issues":{"name":"is required"}}`,
			sentinel: domain.ErrValidation,
			fields:   map[string]string{"name": "is required"},
		},
		{
			name:     "conflict field",
			status:   http.StatusConflict,
			body:     `{"title":"Conflict","status":409,"detail":"url already used","field":"url","existing_id":"r9"}`,
			sentinel: domain.ErrConflict,
			fields:   map[string]string{"url": "url already used"},
		},
		{
			name:     "plain text body",
			status:   http.StatusNotFound,
			body:     "nope",
			sentinel: domain.ErrNotFound,
		},
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{"title":"Unauthorized","status":401,"detail":"unauthorized"}`,
			sentinel: domain.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetResource(context.Background(), "r1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.fields, apiErr.FieldErrors())
		})
	}
}

func TestDeleteAcceptsNoContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})
	assert.NoError(t, client.DeleteResource(context.Background(), "r1"))
}

func TestListQuestionsFilter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		_, _ = w.Write([]byte(`[{"id":"q1","status":"pending"}]`))
	})
	qs, err := client.ListQuestions(context.Background(), "pending")
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, models.QuestionStatusPending, qs[0].Status)
}

func TestUploadMultipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "covers", r.FormValue("folder"))
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "cover.png", hdr.Filename)
		assert.Equal(t, "image/png", hdr.Header.Get("Content-Type"))
		assert.Equal(t, "png-bytes", string(data))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"url":"https://cdn.example.com/covers/cover.png"}`))
	})

	url, err := client.Upload(context.Background(), "covers", "cover.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/covers/cover.png", url)
}

func TestClientSatisfiesFormInterfaces(t *testing.T) {
	var c *Client
	var _ adminform.Uploader = c
	var _ adminform.CollectionStore = c
	var _ adminform.ResourceStore = c
}
