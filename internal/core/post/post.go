// Package post defines the fetched-post domain types, the sink contract and
// the error taxonomy shared by fetchers and sinks.
package post

import (
	"context"
	"errors"
)

// Sentinel errors for fetch and delivery operations.
var (
	// ErrTransport is returned when the remote endpoint could not be reached
	// or answered with something that is not JSON.
	ErrTransport = errors.New("transport error")
	// ErrNotFound is returned when the response is well formed but carries no
	// markdown (wrong host or slug, unpublished post).
	ErrNotFound = errors.New("post not found")
	// ErrAlreadyExists is returned when the save target is already taken.
	ErrAlreadyExists = errors.New("file already exists")
	// ErrIO is returned for any other file-system failure.
	ErrIO = errors.New("io error")
	// ErrNoActiveEditor is returned by the document sink when there is no
	// open document to render into.
	ErrNoActiveEditor = errors.New("no active editor")
	// ErrInvalidInput is returned when host, slug or save location fail validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoSaveLocation is returned when the save location is empty.
	ErrNoSaveLocation = errors.New("no save location configured")
	// ErrNotDirectory is returned when the save location resolves to a file.
	ErrNotDirectory = errors.New("save location is not a directory")
)

// Post is a fetched post ready to be handed to a sink.
type Post struct {
	Host     string
	Slug     string
	Markdown string
}

// FileName returns the file name a post is saved under.
func (p Post) FileName() string {
	return p.Slug + ".md"
}

// Fetcher retrieves the markdown body of a post.
type Fetcher interface {
	// Fetch returns the markdown for slug on the publication at host.
	// Returns ErrTransport or ErrNotFound on failure.
	Fetch(ctx context.Context, host, slug string) (string, error)
}

// SinkKind names a sink implementation.
type SinkKind string

const (
	SinkFile     SinkKind = "file"
	SinkDocument SinkKind = "document"
	SinkTerminal SinkKind = "terminal"
)

// Valid reports whether k is a known sink kind.
func (k SinkKind) Valid() bool {
	switch k {
	case SinkFile, SinkDocument, SinkTerminal:
		return true
	default:
		return false
	}
}

// Location identifies where a sink put the content. Path is vault-relative
// and empty for the terminal sink.
type Location struct {
	Kind SinkKind
	Path string
}

// Sink accepts fetched content.
type Sink interface {
	Accept(ctx context.Context, p Post) (Location, error)
}
