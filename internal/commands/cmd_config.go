package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/efie/internal/core/config"
	"github.com/hay-kot/efie/internal/printer"
)

type ConfigCmd struct {
	flags  *Flags
	format string
}

func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	formatFlag := &cli.StringFlag{
		Name:        "format",
		Usage:       "output format (text, json)",
		Value:       "text",
		Destination: &cmd.format,
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Inspect the efie configuration",
		Commands: []*cli.Command{
			{
				Name:      "path",
				Usage:     "Print the config file path",
				UsageText: "efie config path",
				Action:    cmd.runPath,
			},
			{
				Name:      "show",
				Usage:     "Print the effective configuration as YAML",
				UsageText: "efie config show",
				Action:    cmd.runShow,
			},
			{
				Name:        "validate",
				Usage:       "Validate the configuration file",
				UsageText:   "efie config validate [--format json]",
				Description: "Checks the endpoint, sink, open_command template, list pattern and render style.",
				Flags:       []cli.Flag{formatFlag},
				Action:      cmd.runValidate,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runPath(_ context.Context, c *cli.Command) error {
	_, err := fmt.Fprintln(c.Root().Writer, cmd.flags.ConfigPath)
	return err
}

func (cmd *ConfigCmd) runShow(_ context.Context, c *cli.Command) error {
	enc := yaml.NewEncoder(c.Root().Writer)
	enc.SetIndent(2)
	if err := enc.Encode(cmd.flags.Config); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

type configReport struct {
	Valid    bool                       `json:"valid"`
	Errors   []configFieldError         `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

type configFieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func newConfigReport(cfg *config.Config) configReport {
	err := cfg.Validate()
	report := configReport{Valid: err == nil, Warnings: cfg.Warnings()}
	if err == nil {
		return report
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		report.Errors = append(report.Errors, configFieldError{Message: err.Error()})
		return report
	}
	for _, fe := range fieldErrs {
		report.Errors = append(report.Errors, configFieldError{Field: fe.Field, Message: fe.Err.Error()})
	}
	return report
}

func (cmd *ConfigCmd) runValidate(ctx context.Context, c *cli.Command) error {
	if cmd.flags.Config == nil {
		return errors.New("configuration not loaded")
	}

	report := newConfigReport(cmd.flags.Config)

	if cmd.format == "json" {
		enc := json.NewEncoder(c.Root().Writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		printConfigReport(printer.Ctx(ctx), report)
	}

	if !report.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func printConfigReport(p *printer.Printer, report configReport) {
	for _, fe := range report.Errors {
		label := fe.Field
		if label == "" {
			label = "config"
		}
		p.FailItem(label, fe.Message)
	}

	for _, w := range report.Warnings {
		label := w.Category
		if w.Item != "" {
			label += " (" + w.Item + ")"
		}
		p.WarnItem(label, w.Message)
	}

	if report.Valid {
		p.Successf("Configuration is valid")
		return
	}
	p.Errorf("Configuration has %d error%s", len(report.Errors), plural(len(report.Errors), "", "s"))
}
