package efie

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/hay-kot/efie/internal/core/post"
	"github.com/hay-kot/efie/internal/core/validate"
	"github.com/hay-kot/efie/internal/store/vault"
)

// defaultWordWrap is used when neither config nor the terminal give a width.
const defaultWordWrap = 80

// TargetPath returns the vault path a post with slug is saved to.
func TargetPath(saveLocation, slug string) string {
	return path.Join(filepath.ToSlash(saveLocation), slug+".md")
}

// ConflictError reports a save that would overwrite an existing file. It
// matches post.ErrAlreadyExists.
type ConflictError struct {
	Dir  string
	Name string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", post.ErrAlreadyExists, path.Join(e.Dir, e.Name))
}

func (e *ConflictError) Unwrap() error { return post.ErrAlreadyExists }

// FileSink saves posts as new markdown files below a save location.
type FileSink struct {
	vault        *vault.FS
	saveLocation string
	mkdirs       bool
}

// NewFileSink creates a FileSink writing to saveLocation inside v. With
// mkdirs set, a missing save location is created on first save.
func NewFileSink(v *vault.FS, saveLocation string, mkdirs bool) *FileSink {
	return &FileSink{vault: v, saveLocation: saveLocation, mkdirs: mkdirs}
}

// Accept saves p as {saveLocation}/{slug}.md.
func (s *FileSink) Accept(ctx context.Context, p post.Post) (post.Location, error) {
	return s.Save(ctx, p.Slug, p.Markdown)
}

// Save creates {saveLocation}/{slug}.md holding content. It never overwrites
// an existing file.
func (s *FileSink) Save(_ context.Context, slug, content string) (post.Location, error) {
	if strings.TrimSpace(s.saveLocation) == "" {
		return post.Location{}, post.ErrNoSaveLocation
	}

	var errs criterio.FieldErrorsBuilder
	if err := validate.Slug(slug); err != nil {
		errs = errs.Append("slug", err)
	}
	if err := validate.SaveLocation(s.saveLocation); err != nil {
		errs = errs.Append("saveLocation", err)
	}
	if err := errs.ToError(); err != nil {
		return post.Location{}, fmt.Errorf("%w: %w", post.ErrInvalidInput, err)
	}

	target := TargetPath(s.saveLocation, slug)
	if err := s.vault.Create(target, []byte(content), s.mkdirs); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return post.Location{}, &ConflictError{Dir: s.saveLocation, Name: slug + ".md"}
		}
		return post.Location{}, fmt.Errorf("%w: %w", post.ErrIO, err)
	}

	return post.Location{Kind: post.SinkFile, Path: target}, nil
}

// DocumentSink replaces the content of the active document.
type DocumentSink struct {
	vault    *vault.FS
	document string
}

// NewDocumentSink creates a DocumentSink for the vault document at path.
// An empty path means no document is active.
func NewDocumentSink(v *vault.FS, document string) *DocumentSink {
	return &DocumentSink{vault: v, document: document}
}

// Accept overwrites the whole active document with p's markdown.
func (s *DocumentSink) Accept(_ context.Context, p post.Post) (post.Location, error) {
	if strings.TrimSpace(s.document) == "" {
		return post.Location{}, post.ErrNoActiveEditor
	}
	if err := validate.RelativePath(s.document); err != nil {
		return post.Location{}, fmt.Errorf("%w: %w", post.ErrInvalidInput, err)
	}
	if !s.vault.Exists(s.document) {
		return post.Location{}, fmt.Errorf("%w: %s is not open", post.ErrNoActiveEditor, s.document)
	}

	if err := s.vault.Write(s.document, []byte(p.Markdown)); err != nil {
		return post.Location{}, fmt.Errorf("%w: %w", post.ErrIO, err)
	}

	return post.Location{Kind: post.SinkDocument, Path: filepath.ToSlash(s.document)}, nil
}

// TerminalSink renders posts to a writer, styled with glamour when the writer
// is a terminal.
type TerminalSink struct {
	out    io.Writer
	style  string
	width  int
	styled bool
	log    zerolog.Logger
}

// NewTerminalSink creates a TerminalSink writing to out. wordWrap of zero
// uses the terminal width.
func NewTerminalSink(out io.Writer, style string, wordWrap int, log zerolog.Logger) *TerminalSink {
	s := &TerminalSink{out: out, style: style, width: wordWrap, log: log}

	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		s.styled = true
		if s.width == 0 {
			if w, _, err := term.GetSize(int(f.Fd())); err == nil {
				s.width = w
			}
		}
	}
	if s.width == 0 {
		s.width = defaultWordWrap
	}

	return s
}

// Accept writes p's markdown to the terminal.
func (s *TerminalSink) Accept(_ context.Context, p post.Post) (post.Location, error) {
	content := p.Markdown
	if s.styled {
		rendered, err := RenderMarkdown(p.Markdown, s.style, s.width)
		if err != nil {
			s.log.Warn().Err(err).Str("style", s.style).Msg("render failed, printing raw markdown")
		} else {
			content = rendered
		}
	}

	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if _, err := io.WriteString(s.out, content); err != nil {
		return post.Location{}, fmt.Errorf("%w: %w", post.ErrIO, err)
	}

	return post.Location{Kind: post.SinkTerminal}, nil
}
