package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"multi\n  line   text", 20, "multi line text"},
		{"ما حكم الصلاة في السفر", 5, "ما حك…"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, preview(tt.in, tt.n))
	}
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "application/pdf", contentTypeFor("ijaza.pdf"))
	assert.Equal(t, "application/octet-stream", contentTypeFor("noext"))
}

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"collections", "edit"},
		{"resources", "list"},
		{"questions", "reject"},
		{"settings", "get"},
		{"upload"},
	} {
		cmd, _, err := rootCmd.Find(path)
		if assert.NoError(t, err, path) {
			assert.Equal(t, path[len(path)-1], cmd.Name())
		}
	}
}
