package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/efie/internal/core/config"
	"github.com/hay-kot/efie/internal/efie"
	"github.com/hay-kot/efie/internal/hashnode"
	"github.com/hay-kot/efie/internal/store/jsonfile"
	"github.com/hay-kot/efie/internal/store/vault"
	"github.com/hay-kot/efie/pkg/executil"
)

// Flags holds the global options and the state built from them before any
// command runs.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
	VaultDir   string

	Config  *config.Config
	Service *efie.Service
}

// Global returns the root command flags bound to f.
func (f *Flags) Global() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error, fatal, panic)",
			Sources:     cli.EnvVars("EFIE_LOG_LEVEL"),
			Value:       "info",
			Destination: &f.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "path to log file (optional)",
			Sources:     cli.EnvVars("EFIE_LOG_FILE"),
			Destination: &f.LogFile,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to config file",
			Sources:     cli.EnvVars("EFIE_CONFIG"),
			Value:       xdgPath("XDG_CONFIG_HOME", ".config", "config.yaml"),
			Destination: &f.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "directory holding settings.json",
			Sources:     cli.EnvVars("EFIE_DATA_DIR"),
			Value:       xdgPath("XDG_DATA_HOME", filepath.Join(".local", "share"), ""),
			Destination: &f.DataDir,
		},
		&cli.StringFlag{
			Name:        "vault",
			Usage:       "notes vault directory",
			Sources:     cli.EnvVars("EFIE_VAULT"),
			Value:       ".",
			Destination: &f.VaultDir,
		},
	}
}

// Setup loads the config and builds the service. version is sent in the
// GraphQL user agent.
func (f *Flags) Setup(version string) error {
	vaultDir, err := filepath.Abs(f.VaultDir)
	if err != nil {
		return fmt.Errorf("resolve vault: %w", err)
	}

	cfg, err := config.Load(f.ConfigPath, vaultDir, f.DataDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	v, err := vault.NewFS(cfg.VaultDir)
	if err != nil {
		return fmt.Errorf("open vault: %w", err)
	}

	fetcher := hashnode.New(cfg.Endpoint,
		hashnode.WithTimeout(cfg.Timeout),
		hashnode.WithUserAgent("efie/"+version),
		hashnode.WithLogger(log.With().Str("component", "hashnode").Logger()),
	)

	f.Config = cfg
	f.Service = efie.New(
		fetcher,
		jsonfile.NewSettingsStore(cfg.SettingsFile()),
		v,
		cfg,
		&executil.RealExecutor{},
		log.With().Str("component", "efie").Logger(),
		executil.Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr},
	)
	return nil
}

// xdgPath returns $env/efie/name, falling back to ~/fallback/efie/name when
// env is unset.
func xdgPath(env, fallback, name string) string {
	base := os.Getenv(env)
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, fallback)
	}
	return filepath.Join(base, "efie", name)
}
