package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantTitle string
		wantWords int
	}{
		{
			name:      "front matter title wins",
			content:   "---\ntitle: From Matter\n---\n# Heading\n\nbody text",
			wantTitle: "From Matter",
			wantWords: 4,
		},
		{
			name:      "first level one heading",
			content:   "Intro line\n\n# Hello **World**\n\n# Second",
			wantTitle: "Hello World",
			wantWords: 7,
		},
		{
			name:      "lower level headings ignored",
			content:   "## Only a subheading\n\nsome words here",
			wantTitle: "",
			wantWords: 7,
		},
		{
			name:      "empty content",
			content:   "",
			wantTitle: "",
			wantWords: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize([]byte(tt.content))
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantWords, got.Words)
		})
	}
}
