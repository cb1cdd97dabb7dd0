// Package efie provides the service layer that fetches posts and hands them
// to a sink.
package efie

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"

	"github.com/hay-kot/efie/internal/core/config"
	"github.com/hay-kot/efie/internal/core/post"
	"github.com/hay-kot/efie/internal/core/settings"
	"github.com/hay-kot/efie/internal/core/validate"
	"github.com/hay-kot/efie/internal/store/vault"
	"github.com/hay-kot/efie/pkg/executil"
)

// DeliverOptions configures a fetch-and-deliver run.
type DeliverOptions struct {
	Host string
	Slug string
	Sink post.SinkKind // empty uses the configured sink
	Into string        // active document override for the document sink
}

// Service orchestrates efie operations.
type Service struct {
	fetcher  post.Fetcher
	settings settings.Store
	vault    *vault.FS
	config   *config.Config
	log      zerolog.Logger
	stdout   io.Writer
	library  *Library
	opener   *Opener
}

// New creates a new Service.
func New(
	fetcher post.Fetcher,
	store settings.Store,
	v *vault.FS,
	cfg *config.Config,
	exec executil.Executor,
	log zerolog.Logger,
	streams executil.Streams,
) *Service {
	return &Service{
		fetcher:  fetcher,
		settings: store,
		vault:    v,
		config:   cfg,
		log:      log,
		stdout:   streams.Stdout,
		library:  NewLibrary(v, cfg.ListPattern, log.With().Str("component", "library").Logger()),
		opener:   NewOpener(log.With().Str("component", "opener").Logger(), exec, v, cfg.OpenCommand, streams),
	}
}

// Vault returns the vault the service writes to.
func (s *Service) Vault() *vault.FS {
	return s.vault
}

// Config returns the service configuration.
func (s *Service) Config() *config.Config {
	return s.config
}

// Settings loads the persisted settings.
func (s *Service) Settings(ctx context.Context) (settings.Settings, error) {
	return s.settings.Load(ctx)
}

// UpdateSettings loads the settings, applies fn and saves the result.
func (s *Service) UpdateSettings(ctx context.Context, fn func(*settings.Settings)) (settings.Settings, error) {
	st, err := s.settings.Update(ctx, fn)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("update settings: %w", err)
	}
	return st, nil
}

// Fetch validates host and slug and returns the post's markdown.
func (s *Service) Fetch(ctx context.Context, host, slug string) (string, error) {
	var errs criterio.FieldErrorsBuilder
	if err := validate.Host(host); err != nil {
		errs = errs.Append("host", err)
	}
	if err := validate.Slug(slug); err != nil {
		errs = errs.Append("slug", err)
	}
	if err := errs.ToError(); err != nil {
		return "", fmt.Errorf("%w: %w", post.ErrInvalidInput, err)
	}

	s.log.Info().Str("host", host).Str("slug", slug).Msg("fetching post")

	markdown, err := s.fetcher.Fetch(ctx, host, slug)
	if err != nil {
		if errors.Is(err, post.ErrTransport) {
			s.log.Error().Err(err).Str("host", host).Str("slug", slug).Msg("fetch failed")
		}
		return "", err
	}

	s.log.Debug().Int("bytes", len(markdown)).Msg("fetched post")
	return markdown, nil
}

// Deliver stores host and slug in the settings, fetches the post and hands it
// to the selected sink. Saved files are appended to the recent list.
func (s *Service) Deliver(ctx context.Context, opts DeliverOptions) (post.Location, error) {
	st, err := s.UpdateSettings(ctx, func(st *settings.Settings) {
		st.Host = strings.TrimSpace(opts.Host)
		st.Slug = strings.TrimSpace(opts.Slug)
	})
	if err != nil {
		return post.Location{}, err
	}

	markdown, err := s.Fetch(ctx, st.Host, st.Slug)
	if err != nil {
		return post.Location{}, err
	}

	sink, err := s.sink(opts, st)
	if err != nil {
		return post.Location{}, err
	}

	loc, err := sink.Accept(ctx, post.Post{Host: st.Host, Slug: st.Slug, Markdown: markdown})
	if err != nil {
		if errors.Is(err, post.ErrIO) {
			s.log.Error().Err(err).Msg("deliver failed")
		}
		return post.Location{}, err
	}

	if loc.Kind == post.SinkFile {
		if _, err := s.UpdateSettings(ctx, func(st *settings.Settings) {
			st.AddRecent(loc.Path)
		}); err != nil {
			return loc, err
		}
	}

	s.log.Info().Str("sink", string(loc.Kind)).Str("path", loc.Path).Msg("post delivered")
	return loc, nil
}

func (s *Service) sink(opts DeliverOptions, st settings.Settings) (post.Sink, error) {
	kind := opts.Sink
	if kind == "" {
		kind = s.config.SinkKind()
	}

	switch kind {
	case post.SinkFile:
		return NewFileSink(s.vault, st.SaveLocation, s.config.CreateSaveLocation), nil
	case post.SinkDocument:
		doc := opts.Into
		if doc == "" {
			doc = s.config.ActiveDocument
		}
		return NewDocumentSink(s.vault, doc), nil
	case post.SinkTerminal:
		return s.terminal(), nil
	default:
		return nil, fmt.Errorf("%w: unknown sink %q", post.ErrInvalidInput, kind)
	}
}

func (s *Service) terminal() *TerminalSink {
	return NewTerminalSink(
		s.stdout,
		s.config.Render.Style,
		s.config.Render.WordWrap,
		s.log.With().Str("component", "terminal").Logger(),
	)
}

// SaveContent saves content as {saveLocation}/{slug}.md without overwriting.
func (s *Service) SaveContent(ctx context.Context, slug, saveLocation, content string) (post.Location, error) {
	loc, err := NewFileSink(s.vault, saveLocation, s.config.CreateSaveLocation).Save(ctx, slug, content)
	if err != nil && errors.Is(err, post.ErrIO) {
		s.log.Error().Err(err).Str("slug", slug).Msg("save failed")
	}
	return loc, err
}

// ListSaved lists the posts in saveLocation. An empty saveLocation uses the
// one from the settings.
func (s *Service) ListSaved(ctx context.Context, saveLocation string) ([]SavedItem, error) {
	if saveLocation == "" {
		st, err := s.settings.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}
		saveLocation = st.SaveLocation
	}
	return s.library.List(ctx, saveLocation)
}

// Recent returns the recent list, oldest first, flagging entries whose file
// is gone.
func (s *Service) Recent(ctx context.Context) ([]RecentEntry, error) {
	st, err := s.settings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return s.library.Check(st.Recent()), nil
}

// PruneRecent drops recent entries whose file no longer exists and returns
// how many were removed.
func (s *Service) PruneRecent(ctx context.Context) (int, error) {
	removed := 0
	_, err := s.UpdateSettings(ctx, func(st *settings.Settings) {
		kept := st.RecentBlogs[:0]
		for _, e := range s.library.Check(st.RecentBlogs) {
			if e.Exists {
				kept = append(kept, e.Path)
			} else {
				removed++
			}
		}
		st.RecentBlogs = kept
	})
	return removed, err
}

// ClearRecent empties the recent list.
func (s *Service) ClearRecent(ctx context.Context) error {
	_, err := s.UpdateSettings(ctx, func(st *settings.Settings) {
		st.RecentBlogs = nil
	})
	return err
}

// Resolve finds a saved post by vault path, file name or slug.
func (s *Service) Resolve(ctx context.Context, name string) (string, error) {
	st, err := s.settings.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load settings: %w", err)
	}
	return s.library.Resolve(st.SaveLocation, name)
}

// Open opens a saved post with the configured open command.
func (s *Service) Open(ctx context.Context, name string) error {
	rel, err := s.Resolve(ctx, name)
	if err != nil {
		return err
	}
	return s.opener.Open(ctx, rel)
}

// Content returns the markdown of the vault file rel.
func (s *Service) Content(_ context.Context, rel string) (string, error) {
	content, err := s.vault.Read(rel)
	if err != nil {
		return "", fmt.Errorf("%w: %w", post.ErrIO, err)
	}
	return string(content), nil
}

// Show renders a saved post to stdout.
func (s *Service) Show(ctx context.Context, name string) error {
	rel, err := s.Resolve(ctx, name)
	if err != nil {
		return err
	}

	content, err := s.Content(ctx, rel)
	if err != nil {
		return err
	}

	slug := strings.TrimSuffix(path.Base(rel), path.Ext(rel))
	_, err = s.terminal().Accept(ctx, post.Post{Slug: slug, Markdown: content})
	return err
}
