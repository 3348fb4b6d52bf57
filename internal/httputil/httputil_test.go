package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarportal/internal/domain"
)

func TestOptionalStringTriState(t *testing.T) {
	var body struct {
		Description OptionalString      `json:"description"`
		Cover       OptionalString      `json:"cover_image_url"`
		Collection  OptionalString      `json:"collection_id"`
		Tags        OptionalStringSlice `json:"tags"`
	}
	err := json.Unmarshal([]byte(`{"description": null, "cover_image_url": "https://x.org/a.png", "tags": ["a", "b"]}`), &body)
	require.NoError(t, err)

	assert.True(t, body.Description.Present)
	assert.Nil(t, body.Description.Value)
	assert.True(t, body.Description.ToDomain().Cleared())

	assert.True(t, body.Cover.Present)
	assert.Equal(t, "https://x.org/a.png", *body.Cover.Value)

	assert.False(t, body.Collection.Present)

	assert.True(t, body.Tags.Present)
	assert.Equal(t, []string{"a", "b"}, body.Tags.ToDomain().Value)
}

func TestParseJSONErrorsAreValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"malformed", `{"title":`, "body"},
		{"wrong type", `{"title": 42}`, "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			var dest struct {
				Title string `json:"title"`
			}

			err := ParseJSON(w, r, &dest)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestProblemResponses(t *testing.T) {
	tests := []struct {
		name    string
		respond func(w http.ResponseWriter)
		want    Problem
	}{
		{
			name: "validation lists issues",
			respond: func(w http.ResponseWriter) {
				RespondValidation(w, "invalid request payload", map[string]string{"url": "must be a valid http(s) URL"})
			},
			want: Problem{
				Type:   problemType(http.StatusBadRequest),
				Title:  "Bad Request",
				Status: http.StatusBadRequest,
				Detail: "invalid request payload",
				Issues: map[string]string{"url": "must be a valid http(s) URL"},
			},
		},
		{
			name: "conflict names the existing row",
			respond: func(w http.ResponseWriter) {
				RespondConflict(w, "A resource with this URL already exists.", "url", "resource", "r-1")
			},
			want: Problem{
				Type:         problemType(http.StatusConflict),
				Title:        "Conflict",
				Status:       http.StatusConflict,
				Detail:       "A resource with this URL already exists.",
				Field:        "url",
				ResourceType: "resource",
				ExistingID:   "r-1",
			},
		},
		{
			name:    "unmapped status is about:blank",
			respond: func(w http.ResponseWriter) { RespondError(w, http.StatusTeapot, "no") },
			want:    Problem{Type: "about:blank", Title: "I'm a teapot", Status: http.StatusTeapot, Detail: "no"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.respond(w)

			assert.Equal(t, tt.want.Status, w.Code)
			assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

			var got Problem
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProblemOmitsEmptyExtras(t *testing.T) {
	w := httptest.NewRecorder()
	RespondError(w, http.StatusNotFound, "collection x not found")

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "issues")
	assert.NotContains(t, raw, "existing_id")
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?page=3&per_page=abc&neg=-2", nil)

	assert.Equal(t, 3, QueryInt(r, "page", 1))
	assert.Equal(t, 20, QueryInt(r, "per_page", 20))
	assert.Equal(t, 1, QueryInt(r, "neg", 1))
	assert.Equal(t, 7, QueryInt(r, "missing", 7))
}
