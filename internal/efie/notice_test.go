package efie

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/efie/internal/core/post"
)

func TestNotice(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "not found", err: fmt.Errorf("%w: a/b", post.ErrNotFound), want: "Could not fetch the blog post. Please check your host and slug."},
		{name: "transport", err: fmt.Errorf("%w: %w", post.ErrTransport, errors.New("eof")), want: "Failed to fetch the blog post. Please try again."},
		{name: "conflict", err: &ConflictError{Dir: "blog-posts", Name: "x.md"}, want: "A file named x.md already exists in blog-posts."},
		{name: "bare exists", err: post.ErrAlreadyExists, want: "A file with that name already exists."},
		{name: "io", err: fmt.Errorf("%w: disk full", post.ErrIO), want: "Failed to save the blog. Please try again."},
		{name: "no editor", err: post.ErrNoActiveEditor, want: "No active document to render into."},
		{
			name: "field errors",
			err:  fmt.Errorf("%w: %w", post.ErrInvalidInput, criterio.NewFieldErrors("slug", errors.New("must not contain /"))),
			want: "Invalid slug: must not contain /",
		},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Notice(tt.err))
		})
	}
}

func TestSavedNotice(t *testing.T) {
	assert.Equal(t, "Blog saved as blog-posts/x.md", SavedNotice(post.Location{Kind: post.SinkFile, Path: "blog-posts/x.md"}))
	assert.Equal(t, "Blog rendered into d.md", SavedNotice(post.Location{Kind: post.SinkDocument, Path: "d.md"}))
	assert.Empty(t, SavedNotice(post.Location{Kind: post.SinkTerminal}))
}
