package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPost_FileName(t *testing.T) {
	p := Post{Host: "alice.hashnode.dev", Slug: "hello-world"}
	assert.Equal(t, "hello-world.md", p.FileName())
}

func TestSinkKind_Valid(t *testing.T) {
	tests := []struct {
		kind SinkKind
		want bool
	}{
		{SinkFile, true},
		{SinkDocument, true},
		{SinkTerminal, true},
		{"", false},
		{"clipboard", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Valid())
		})
	}
}
