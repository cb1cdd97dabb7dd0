package validate

import (
	"testing"
)

func TestHost(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"hashnode subdomain", "alice.hashnode.dev", false},
		{"custom domain", "blog.example.com", false},
		{"empty", "", true},
		{"only spaces", "   ", true},
		{"with scheme", "https://alice.hashnode.dev", true},
		{"with path", "alice.hashnode.dev/posts", true},
		{"contains spaces", "not a host", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Host(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Host(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "hello-world", false},
		{"single word", "intro", false},
		{"empty", "", true},
		{"only tabs", "\t\t", true},
		{"forward slash", "posts/hello", true},
		{"backslash", `posts\hello`, true},
		{"traversal", "../etc", true},
		{"dot dot", "..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Slug(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Slug(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestSaveLocation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default", "blog-posts", false},
		{"nested", "notes/blog", false},
		{"inner dot dot stays inside", "notes/../blog", false},
		{"current dir", ".", false},
		{"empty", "", true},
		{"absolute", "/etc", true},
		{"parent", "..", true},
		{"escapes", "../outside", true},
		{"escapes after clean", "notes/../../outside", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SaveLocation(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("SaveLocation(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
