package commands

import (
	"context"
	"encoding/json"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/efie/internal/commands/doctor"
	"github.com/hay-kot/efie/internal/printer"
	"github.com/hay-kot/efie/internal/store/jsonfile"
)

type DoctorCmd struct {
	flags  *Flags
	format string
	fix    bool
}

func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{flags: flags}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Run health checks on your efie setup",
		UsageText:   "efie doctor [options]",
		Description: "Runs diagnostic checks on configuration, stored settings, the save location and the recent list.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
			&cli.BoolFlag{
				Name:        "fix",
				Usage:       "prune recent entries whose file is gone",
				Destination: &cmd.fix,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	svc := cmd.flags.Service

	checks := []doctor.Check{
		doctor.NewConfigCheck(cfg),
		doctor.NewSettingsCheck(jsonfile.NewSettingsStore(cfg.SettingsFile()), svc.Vault(), cfg.CreateSaveLocation),
		doctor.NewRecentCheck(svc, cmd.fix),
	}

	report := doctor.RunAll(ctx, checks)

	if cmd.format == "json" {
		enc := json.NewEncoder(c.Root().Writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		cmd.printReport(ctx, report)
	}

	if !report.Healthy {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *DoctorCmd) printReport(ctx context.Context, report doctor.Report) {
	p := printer.Ctx(ctx)

	for _, result := range report.Checks {
		p.Section(result.Name)
		for _, item := range result.Items {
			switch item.Status {
			case doctor.StatusPass:
				p.CheckItem(item.Label, item.Detail)
			case doctor.StatusWarn:
				p.WarnItem(item.Label, item.Detail)
			case doctor.StatusFail:
				p.FailItem(item.Label, item.Detail)
			}
		}
		p.Printf("")
	}

	sum := report.Summary
	p.Printf("Summary: %d passed, %d warnings, %d failed", sum.Passed, sum.Warned, sum.Failed)
	if sum.Fixable > 0 {
		p.Infof("Run 'efie doctor --fix' to fix %d issue%s", sum.Fixable, plural(sum.Fixable, "", "s"))
	}
}
