package efie

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/efie/internal/core/post"
)

func TestLibrary_List(t *testing.T) {
	ctx := context.Background()
	v := newVault(t)

	require.NoError(t, v.Create("blog-posts/b.md", []byte("---\ntitle: Front Matter Title\n---\none two three"), true))
	require.NoError(t, v.Create("blog-posts/a.md", []byte("# Heading Title\n\nfour five"), true))
	require.NoError(t, v.Create("blog-posts/plain.md", []byte("just words"), true))
	require.NoError(t, v.Create("blog-posts/notes.txt", []byte("text"), true))
	require.NoError(t, v.Create("blog-posts/nested/deep.md", []byte("# Deep"), true))
	require.NoError(t, v.Create("blog-file", []byte("x"), false))

	t.Run("all files", func(t *testing.T) {
		items, err := NewLibrary(v, "", zerolog.Nop()).List(ctx, "blog-posts")
		require.NoError(t, err)

		names := make([]string, len(items))
		for i, item := range items {
			names[i] = item.Name
		}
		assert.Equal(t, []string{"a.md", "b.md", "notes.txt", "plain.md"}, names)

		assert.Equal(t, "Heading Title", items[0].Title)
		assert.Equal(t, "blog-posts/a.md", items[0].Path)
		assert.Equal(t, "Front Matter Title", items[1].Title)
		assert.Equal(t, 3, items[1].Words)
		assert.Equal(t, "plain", items[3].Title, "falls back to the file stem")
	})

	t.Run("pattern", func(t *testing.T) {
		items, err := NewLibrary(v, "*.md", zerolog.Nop()).List(ctx, "blog-posts")
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("missing directory", func(t *testing.T) {
		items, err := NewLibrary(v, "*", zerolog.Nop()).List(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		_, err := NewLibrary(v, "*", zerolog.Nop()).List(ctx, "blog-file")
		require.ErrorIs(t, err, post.ErrNotDirectory)
	})

	t.Run("empty save location", func(t *testing.T) {
		_, err := NewLibrary(v, "*", zerolog.Nop()).List(ctx, "")
		require.ErrorIs(t, err, post.ErrNoSaveLocation)
	})

	t.Run("escaping save location", func(t *testing.T) {
		_, err := NewLibrary(v, "*", zerolog.Nop()).List(ctx, "../")
		require.ErrorIs(t, err, post.ErrInvalidInput)
	})
}

func TestLibrary_Resolve(t *testing.T) {
	v := newVault(t)
	require.NoError(t, v.Create("blog-posts/hello-world.md", []byte("# Hi"), true))
	require.NoError(t, v.Create("root.md", []byte("# Root"), false))
	lib := NewLibrary(v, "*", zerolog.Nop())

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "slug", in: "hello-world", want: "blog-posts/hello-world.md"},
		{name: "file name", in: "hello-world.md", want: "blog-posts/hello-world.md"},
		{name: "vault path", in: "blog-posts/hello-world.md", want: "blog-posts/hello-world.md"},
		{name: "vault root file", in: "root", want: "root.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lib.Resolve("blog-posts", tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := lib.Resolve("blog-posts", "missing")
	require.Error(t, err)

	_, err = lib.Resolve("blog-posts", "../../etc/passwd")
	require.Error(t, err)

	_, err = lib.Resolve("blog-posts", "")
	require.ErrorIs(t, err, post.ErrInvalidInput)
}
