package efie

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/efie/internal/core/config"
	"github.com/hay-kot/efie/internal/core/post"
	"github.com/hay-kot/efie/internal/hashnode"
	"github.com/hay-kot/efie/internal/store/jsonfile"
	"github.com/hay-kot/efie/internal/store/vault"
	"github.com/hay-kot/efie/pkg/executil"
)

// stubFetcher implements post.Fetcher for testing.
type stubFetcher struct {
	mu       sync.Mutex
	markdown string
	err      error
	calls    []string
}

func (f *stubFetcher) Fetch(_ context.Context, host, slug string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, host+"/"+slug)
	return f.markdown, f.err
}

type testEnv struct {
	svc    *Service
	vault  *vault.FS
	store  *jsonfile.SettingsStore
	exec   *executil.RecordingExecutor
	stdout *bytes.Buffer
	cfg    *config.Config
}

func newTestEnv(t *testing.T, fetcher post.Fetcher, mutate func(*config.Config)) *testEnv {
	t.Helper()

	root := t.TempDir()
	v, err := vault.NewFS(root)
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.VaultDir = root
	cfg.DataDir = t.TempDir()
	if mutate != nil {
		mutate(&cfg)
	}

	store := jsonfile.NewSettingsStore(filepath.Join(cfg.DataDir, "settings.json"))
	exec := &executil.RecordingExecutor{}
	stdout := &bytes.Buffer{}

	svc := New(fetcher, store, v, &cfg, exec, zerolog.Nop(), executil.Streams{Stdout: stdout, Stderr: &bytes.Buffer{}})

	return &testEnv{svc: svc, vault: v, store: store, exec: exec, stdout: stdout, cfg: &cfg}
}

// graphqlServer serves body for every request and returns a client for it.
func graphqlServer(t *testing.T, body any) *hashnode.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)

	return hashnode.New(srv.URL)
}
