// Package hashnode fetches post markdown from the Hashnode GraphQL API.
package hashnode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/hay-kot/efie/internal/core/post"
)

// Endpoint is the public Hashnode GraphQL endpoint.
const Endpoint = "https://gql.hashnode.com"

// PostQuery requests the markdown body of a single post.
const PostQuery = `query Publication($host: String!, $slug: String!) {
  publication(host: $host) {
    post(slug: $slug) {
      content {
        markdown
      }
    }
  }
}`

// Request is the GraphQL request body.
type Request struct {
	Query     string    `json:"query"`
	Variables Variables `json:"variables"`
}

// Variables are the PostQuery variables.
type Variables struct {
	Host string `json:"host"`
	Slug string `json:"slug"`
}

// Response mirrors the subset of the GraphQL response that is read. Pointers
// distinguish null or absent objects from empty ones.
type Response struct {
	Data *struct {
		Publication *struct {
			Post *struct {
				Content *struct {
					Markdown *string `json:"markdown"`
				} `json:"content"`
			} `json:"post"`
		} `json:"publication"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Markdown returns data.publication.post.content.markdown and whether it is
// present and non-empty.
func (r *Response) Markdown() (string, bool) {
	if r.Data == nil || r.Data.Publication == nil || r.Data.Publication.Post == nil ||
		r.Data.Publication.Post.Content == nil || r.Data.Publication.Post.Content.Markdown == nil {
		return "", false
	}
	md := *r.Data.Publication.Post.Content.Markdown
	return md, md != ""
}

// Client implements post.Fetcher against a GraphQL endpoint.
type Client struct {
	endpoint  string
	http      *http.Client
	userAgent string
	log       zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithLogger sets the client logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a Client for endpoint. An empty endpoint uses Endpoint.
func New(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = Endpoint
	}
	c := &Client{
		endpoint:  endpoint,
		http:      &http.Client{},
		userAgent: "efie",
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ post.Fetcher = (*Client)(nil)

// Fetch posts PostQuery for host and slug and returns the markdown verbatim.
// Network and decoding failures wrap post.ErrTransport; a response without
// markdown is post.ErrNotFound.
func (c *Client) Fetch(ctx context.Context, host, slug string) (string, error) {
	body, err := json.Marshal(Request{
		Query:     PostQuery,
		Variables: Variables{Host: host, Slug: slug},
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %w", post.ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %w", post.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.log.Debug().Str("host", host).Str("slug", slug).Str("endpoint", c.endpoint).Msg("fetching post")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", post.ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %w", post.ErrTransport, err)
	}

	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("%w: decode response (status %d): %w", post.ErrTransport, resp.StatusCode, err)
	}

	for _, e := range out.Errors {
		c.log.Debug().Str("message", e.Message).Msg("graphql error")
	}

	md, ok := out.Markdown()
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", post.ErrNotFound, host, slug)
	}

	c.log.Debug().Int("bytes", len(md)).Msg("post fetched")
	return md, nil
}
