package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/efie/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	dir   string
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{
		flags: flags,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dir",
			Usage:       "vault directory to browse (defaults to the save location)",
			Destination: &cmd.dir,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	svc := cmd.flags.Service

	dir := cmd.dir
	if dir == "" {
		st, err := svc.Settings(ctx)
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		dir = st.SaveLocation
	}

	watchDir, err := svc.Vault().Abs(dir)
	if err != nil {
		log.Debug().Err(err).Msg("not watching save location")
		watchDir = ""
	}

	m := tui.New(svc, tui.Options{
		SaveLocation: dir,
		WatchDir:     watchDir,
		Style:        cmd.flags.Config.Render.Style,
	})
	defer func() { _ = m.Close() }()

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if model, ok := final.(tui.Model); ok && model.Selected() != "" {
		if err := svc.Open(ctx, model.Selected()); err != nil {
			return fail(ctx, err)
		}
	}

	return nil
}
