package efie

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/hay-kot/efie/internal/core/config"
	"github.com/hay-kot/efie/internal/store/vault"
	"github.com/hay-kot/efie/pkg/executil"
	"github.com/hay-kot/efie/pkg/tmpl"
)

// Opener opens saved posts with the configured open command.
type Opener struct {
	log      zerolog.Logger
	executor executil.Executor
	vault    *vault.FS
	command  string
	streams  executil.Streams
}

// NewOpener creates an Opener running command through sh -c.
func NewOpener(log zerolog.Logger, executor executil.Executor, v *vault.FS, command string, streams executil.Streams) *Opener {
	return &Opener{
		log:      log,
		executor: executor,
		vault:    v,
		command:  command,
		streams:  streams,
	}
}

// Open renders the open command for the vault file rel and runs it with the
// terminal attached.
func (o *Opener) Open(ctx context.Context, rel string) error {
	if _, err := o.vault.Stat(rel); err != nil {
		return fmt.Errorf("open %s: %w", rel, err)
	}

	abs, err := o.vault.Abs(rel)
	if err != nil {
		return err
	}

	rendered, err := tmpl.Render(o.command, config.OpenTemplateData{
		Path:  abs,
		Name:  filepath.Base(abs),
		Vault: o.vault.Root(),
	})
	if err != nil {
		return fmt.Errorf("render open command %q: %w", o.command, err)
	}

	o.log.Debug().Str("command", rendered).Msg("opening post")

	if err := o.executor.RunAttached(ctx, o.streams, "sh", "-c", rendered); err != nil {
		return fmt.Errorf("execute open command %q: %w", rendered, err)
	}

	return nil
}
