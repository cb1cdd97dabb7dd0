package settings

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, Settings{Host: "", Slug: "", SaveLocation: "blog-posts"}, s)
	assert.True(t, s.HasSaveLocation())
}

func TestSettings_AddRecent(t *testing.T) {
	s := Default()
	s.AddRecent("blog-posts/a.md")
	s.AddRecent("blog-posts/b.md")
	s.AddRecent("blog-posts/a.md")

	assert.Equal(t, []string{"blog-posts/a.md", "blog-posts/b.md", "blog-posts/a.md"}, s.Recent())

	// Recent returns a copy
	got := s.Recent()
	got[0] = "changed"
	assert.Equal(t, "blog-posts/a.md", s.RecentBlogs[0])
}

func TestSettings_HasSaveLocation(t *testing.T) {
	s := Settings{SaveLocation: "  "}
	assert.False(t, s.HasSaveLocation())
}

func TestSettings_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		s := Default()
		require.NoError(t, s.Validate())
	})

	t.Run("filled settings are valid", func(t *testing.T) {
		s := Settings{Host: "alice.hashnode.dev", Slug: "hello-world", SaveLocation: "notes/blog"}
		require.NoError(t, s.Validate())
	})

	t.Run("reports every bad field", func(t *testing.T) {
		s := Settings{Host: "not a host", Slug: "../escape", SaveLocation: "../outside"}

		err := s.Validate()

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		require.Len(t, fieldErrs, 3)
		assert.Equal(t, "host", fieldErrs[0].Field)
		assert.Equal(t, "slug", fieldErrs[1].Field)
		assert.Equal(t, "saveLocation", fieldErrs[2].Field)
	})

	t.Run("empty save location", func(t *testing.T) {
		s := Settings{SaveLocation: ""}

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, s.Validate(), &fieldErrs)
		assert.Equal(t, "saveLocation", fieldErrs[0].Field)
	})
}
