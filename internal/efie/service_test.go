package efie

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/efie/internal/core/config"
	"github.com/hay-kot/efie/internal/core/post"
	"github.com/hay-kot/efie/internal/core/settings"
)

func markdownBody(md string) map[string]any {
	return map[string]any{
		"data": map[string]any{
			"publication": map[string]any{
				"post": map[string]any{
					"content": map[string]any{"markdown": md},
				},
			},
		},
	}
}

func TestDeliver_SavesFileAndRecordsRecent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, graphqlServer(t, markdownBody("# Hi")), nil)

	loc, err := env.svc.Deliver(ctx, DeliverOptions{Host: " alice.hashnode.dev ", Slug: "hello-world "})
	require.NoError(t, err)
	assert.Equal(t, post.Location{Kind: post.SinkFile, Path: "blog-posts/hello-world.md"}, loc)

	content, err := env.vault.Read("blog-posts/hello-world.md")
	require.NoError(t, err)
	assert.Equal(t, "# Hi", string(content))

	st, err := env.store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice.hashnode.dev", st.Host)
	assert.Equal(t, "hello-world", st.Slug)
	assert.Equal(t, []string{"blog-posts/hello-world.md"}, st.RecentBlogs)
}

func TestDeliver_NotFoundCreatesNothing(t *testing.T) {
	ctx := context.Background()
	body := map[string]any{"data": map[string]any{"publication": nil}}
	env := newTestEnv(t, graphqlServer(t, body), nil)

	_, err := env.svc.Deliver(ctx, DeliverOptions{Host: "alice.hashnode.dev", Slug: "hello-world"})
	require.ErrorIs(t, err, post.ErrNotFound)
	assert.Equal(t, "Could not fetch the blog post. Please check your host and slug.", Notice(err))

	assert.False(t, env.vault.Exists("blog-posts/hello-world.md"))

	st, err := env.store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice.hashnode.dev", st.Host, "dialog values persist even when the fetch fails")
	assert.Empty(t, st.RecentBlogs)
}

func TestDeliver_ExistingFileIsNotOverwritten(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, &stubFetcher{markdown: "# New"}, nil)

	_, err := env.svc.SaveContent(ctx, "hello-world", "blog-posts", "# Old")
	require.NoError(t, err)

	_, err = env.svc.Deliver(ctx, DeliverOptions{Host: "alice.hashnode.dev", Slug: "hello-world"})
	require.ErrorIs(t, err, post.ErrAlreadyExists)
	assert.Equal(t, "A file named hello-world.md already exists in blog-posts.", Notice(err))

	content, err := env.vault.Read("blog-posts/hello-world.md")
	require.NoError(t, err)
	assert.Equal(t, "# Old", string(content))

	st, err := env.store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, st.RecentBlogs)
}

func TestDeliver_TransportError(t *testing.T) {
	env := newTestEnv(t, &stubFetcher{err: errors.Join(post.ErrTransport, errors.New("dial tcp"))}, nil)

	_, err := env.svc.Deliver(context.Background(), DeliverOptions{Host: "alice.hashnode.dev", Slug: "hello-world"})
	require.ErrorIs(t, err, post.ErrTransport)
	assert.Equal(t, "Failed to fetch the blog post. Please try again.", Notice(err))
}

func TestDeliver_InvalidInputSkipsFetch(t *testing.T) {
	tests := []struct {
		name string
		host string
		slug string
	}{
		{name: "empty host", host: "", slug: "hello-world"},
		{name: "empty slug", host: "alice.hashnode.dev", slug: ""},
		{name: "traversal slug", host: "alice.hashnode.dev", slug: "../escape"},
		{name: "host with scheme", host: "https://alice.hashnode.dev", slug: "hello-world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &stubFetcher{markdown: "# Hi"}
			env := newTestEnv(t, fetcher, nil)

			_, err := env.svc.Deliver(context.Background(), DeliverOptions{Host: tt.host, Slug: tt.slug})
			require.ErrorIs(t, err, post.ErrInvalidInput)
			assert.Empty(t, fetcher.calls)
		})
	}
}

func TestDeliver_DocumentSink(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces active document", func(t *testing.T) {
		env := newTestEnv(t, &stubFetcher{markdown: "# Fetched"}, func(c *config.Config) {
			c.Sink = string(post.SinkDocument)
			c.ActiveDocument = "notes/draft.md"
		})
		require.NoError(t, env.vault.Create("notes/draft.md", []byte("old draft"), true))

		loc, err := env.svc.Deliver(ctx, DeliverOptions{Host: "alice.hashnode.dev", Slug: "hello-world"})
		require.NoError(t, err)
		assert.Equal(t, post.Location{Kind: post.SinkDocument, Path: "notes/draft.md"}, loc)

		content, err := env.vault.Read("notes/draft.md")
		require.NoError(t, err)
		assert.Equal(t, "# Fetched", string(content))

		st, err := env.store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, st.RecentBlogs, "documents are not tracked as recent")
	})

	t.Run("into overrides config", func(t *testing.T) {
		env := newTestEnv(t, &stubFetcher{markdown: "# Fetched"}, nil)
		require.NoError(t, env.vault.Create("other.md", []byte("x"), false))

		loc, err := env.svc.Deliver(ctx, DeliverOptions{
			Host: "alice.hashnode.dev",
			Slug: "hello-world",
			Sink: post.SinkDocument,
			Into: "other.md",
		})
		require.NoError(t, err)
		assert.Equal(t, "other.md", loc.Path)
	})

	t.Run("no active document", func(t *testing.T) {
		env := newTestEnv(t, &stubFetcher{markdown: "# Fetched"}, nil)

		_, err := env.svc.Deliver(ctx, DeliverOptions{Host: "alice.hashnode.dev", Slug: "hello-world", Sink: post.SinkDocument})
		require.ErrorIs(t, err, post.ErrNoActiveEditor)
		assert.Equal(t, "No active document to render into.", Notice(err))
	})
}

func TestDeliver_TerminalSink(t *testing.T) {
	env := newTestEnv(t, &stubFetcher{markdown: "# Hi\n\nbody"}, nil)

	loc, err := env.svc.Deliver(context.Background(), DeliverOptions{
		Host: "alice.hashnode.dev",
		Slug: "hello-world",
		Sink: post.SinkTerminal,
	})
	require.NoError(t, err)
	assert.Equal(t, post.SinkTerminal, loc.Kind)
	assert.Equal(t, "# Hi\n\nbody\n", env.stdout.String())
	assert.False(t, env.vault.Exists("blog-posts/hello-world.md"))
}

func TestDeliver_UnknownSink(t *testing.T) {
	env := newTestEnv(t, &stubFetcher{markdown: "# Hi"}, nil)

	_, err := env.svc.Deliver(context.Background(), DeliverOptions{Host: "alice.hashnode.dev", Slug: "hello-world", Sink: "printer"})
	require.ErrorIs(t, err, post.ErrInvalidInput)
}

func TestRecent_PruneAndClear(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, &stubFetcher{}, nil)

	require.NoError(t, env.vault.Create("blog-posts/a.md", []byte("a"), true))
	require.NoError(t, env.store.Save(ctx, settings.Settings{
		SaveLocation: "blog-posts",
		RecentBlogs:  []string{"blog-posts/a.md", "blog-posts/gone.md", "blog-posts/a.md"},
	}))

	entries, err := env.svc.Recent(ctx)
	require.NoError(t, err)
	assert.Equal(t, []RecentEntry{
		{Path: "blog-posts/a.md", Exists: true},
		{Path: "blog-posts/gone.md", Exists: false},
		{Path: "blog-posts/a.md", Exists: true},
	}, entries)

	removed, err := env.svc.PruneRecent(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	st, err := env.store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"blog-posts/a.md", "blog-posts/a.md"}, st.RecentBlogs)
	assert.Equal(t, "blog-posts", st.SaveLocation)

	require.NoError(t, env.svc.ClearRecent(ctx))
	entries, err = env.svc.Recent(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, &stubFetcher{}, func(c *config.Config) {
		c.OpenCommand = "edit {{ .Path | shq }} {{ .Name }}"
	})
	require.NoError(t, env.vault.Create("blog-posts/hello-world.md", []byte("# Hi"), true))

	require.NoError(t, env.svc.Open(ctx, "hello-world"))
	require.Len(t, env.exec.Commands, 1)

	cmd := env.exec.Commands[0]
	assert.Equal(t, "sh", cmd.Cmd)
	assert.True(t, cmd.Attached)
	abs, err := env.vault.Abs("blog-posts/hello-world.md")
	require.NoError(t, err)
	assert.Equal(t, []string{"-c", "edit '" + abs + "' hello-world.md"}, cmd.Args)

	err = env.svc.Open(ctx, "missing")
	require.Error(t, err)
	assert.Len(t, env.exec.Commands, 1)
}

func TestShow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, &stubFetcher{}, nil)
	require.NoError(t, env.vault.Create("blog-posts/hello-world.md", []byte("# Hi"), true))

	require.NoError(t, env.svc.Show(ctx, "hello-world.md"))
	assert.Equal(t, "# Hi\n", env.stdout.String())
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, &stubFetcher{}, nil)

	st, err := env.svc.UpdateSettings(ctx, func(s *settings.Settings) {
		s.SaveLocation = "posts"
	})
	require.NoError(t, err)
	assert.Equal(t, "posts", st.SaveLocation)

	loaded, err := env.svc.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, st, loaded)
}
