package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/efie/internal/core/settings"
	"github.com/hay-kot/efie/internal/core/validate"
)

func TestFetchValues(t *testing.T) {
	st := settings.Settings{Host: "alice.hashnode.dev", Slug: "hello-world", SaveLocation: "blog-posts"}

	v := FetchValuesFrom(st)
	assert.Equal(t, FetchValues{Host: "alice.hashnode.dev", Slug: "hello-world"}, v)

	v = FetchValues{Host: "  alice.hashnode.dev ", Slug: "\thello-world\n"}.Trimmed()
	assert.Equal(t, FetchValues{Host: "alice.hashnode.dev", Slug: "hello-world"}, v)
}

func TestSettingsValues_Apply(t *testing.T) {
	st := settings.Settings{
		Host:         "old.hashnode.dev",
		SaveLocation: "blog-posts",
		RecentBlogs:  []string{"blog-posts/a.md"},
	}

	SettingsValues{Host: " new.hashnode.dev", Slug: "", SaveLocation: "posts "}.Apply(&st)

	assert.Equal(t, "new.hashnode.dev", st.Host)
	assert.Empty(t, st.Slug)
	assert.Equal(t, "posts", st.SaveLocation)
	assert.Equal(t, []string{"blog-posts/a.md"}, st.RecentBlogs)
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string) error
		in      string
		wantErr bool
	}{
		{name: "trimmed host ok", fn: trimmed(validate.Host), in: " alice.hashnode.dev ", wantErr: false},
		{name: "trimmed host empty", fn: trimmed(validate.Host), in: "  ", wantErr: true},
		{name: "trimmed slug bad", fn: trimmed(validate.Slug), in: "a/b", wantErr: true},
		{name: "optional host empty", fn: optional(validate.Host), in: "", wantErr: false},
		{name: "optional host bad", fn: optional(validate.Host), in: "https://x.dev", wantErr: true},
		{name: "optional slug ok", fn: optional(validate.Slug), in: "hello-world", wantErr: false},
		{name: "save location escape", fn: trimmed(validate.SaveLocation), in: "../up", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewForms(t *testing.T) {
	fv := FetchValues{}
	require.NotNil(t, NewFetchForm(&fv))

	sv := SettingsValues{}
	require.NotNil(t, NewSettingsForm(&sv))
}
