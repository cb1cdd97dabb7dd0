package tmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type openData struct {
	Path  string
	Name  string
	Vault string
}

func TestRender(t *testing.T) {
	t.Setenv("EFIE_TMPL_EDITOR", "nvim")
	t.Setenv("EFIE_TMPL_EMPTY", "")

	tests := []struct {
		name    string
		tmpl    string
		data    any
		want    string
		wantErr bool
	}{
		{
			name: "struct data",
			tmpl: "{{ .Name }} in {{ .Vault }}",
			data: openData{Name: "hello-world.md", Vault: "/notes"},
			want: "hello-world.md in /notes",
		},
		{
			name: "shell quoted path",
			tmpl: "code {{ .Path | shq }}",
			data: openData{Path: "/notes/it's here.md"},
			want: `code '/notes/it'\''s here.md'`,
		},
		{
			name: "quote empty string",
			tmpl: "{{ shq .Path }}",
			data: openData{},
			want: "''",
		},
		{
			name: "env set",
			tmpl: `{{ env "EFIE_TMPL_EDITOR" "vi" }} file`,
			want: "nvim file",
		},
		{
			name: "env empty uses fallback",
			tmpl: `{{ env "EFIE_TMPL_EMPTY" "vi" }}`,
			want: "vi",
		},
		{
			name: "env without fallback",
			tmpl: `[{{ env "EFIE_TMPL_EMPTY" }}]`,
			want: "[]",
		},
		{
			name: "shell syntax passes through",
			tmpl: "${EDITOR:-vi} {{ .Path | shq }}",
			data: openData{Path: "/a.md"},
			want: "${EDITOR:-vi} '/a.md'",
		},
		{
			name:    "unknown field errors",
			tmpl:    "{{ .Remote }}",
			data:    openData{},
			wantErr: true,
		},
		{
			name:    "missing map key errors",
			tmpl:    "{{ .Missing }}",
			data:    map[string]string{"Name": "test"},
			wantErr: true,
		},
		{
			name:    "invalid template syntax",
			tmpl:    "{{ .Name }",
			data:    openData{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
