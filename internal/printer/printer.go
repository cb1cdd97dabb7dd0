// Package printer writes one-line notices and check reports to the terminal.
package printer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hay-kot/criterio"

	"github.com/hay-kot/efie/internal/styles"
)

// Symbols
const (
	Check = "✔"
	Cross = "✘"
	Dot   = "•"
)

type ctxKey struct{}

// Printer handles formatted output. Colors are dropped automatically when the
// writer is not a terminal.
type Printer struct {
	writer io.Writer

	red       lipgloss.Style
	green     lipgloss.Style
	yellow    lipgloss.Style
	gray      lipgloss.Style
	bold      lipgloss.Style
	underline lipgloss.Style
}

// New creates a new Printer that writes to the given writer.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)

	return &Printer{
		writer:    w,
		red:       r.NewStyle().Foreground(styles.ColorRed),
		green:     r.NewStyle().Foreground(styles.ColorGreen),
		yellow:    r.NewStyle().Foreground(styles.ColorYellow),
		gray:      r.NewStyle().Foreground(styles.ColorGray),
		bold:      r.NewStyle().Bold(true),
		underline: r.NewStyle().Bold(true).Underline(true),
	}
}

// NewContext returns a context with the printer attached.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx retrieves the printer from context, or creates one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) line(s string) {
	_, _ = io.WriteString(p.writer, s+"\n")
}

// FatalError prints a boxed error. Validation errors list each field. The
// caller decides the exit code.
func (p *Printer) FatalError(err error) {
	if err == nil {
		return
	}

	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		p.printValidationErrors(err, fieldErrs)
		return
	}

	p.line(p.red.Render("╭ Error"))
	p.line(p.red.Render("│") + " " + p.gray.Render(err.Error()))
	p.line(p.red.Render("╵"))
}

// printValidationErrors prints the error context followed by one line per
// field.
func (p *Printer) printValidationErrors(wrappedErr error, fieldErrs criterio.FieldErrors) {
	errStr := wrappedErr.Error()
	errContext := ""
	if idx := strings.Index(errStr, fieldErrs.Error()); idx > 0 {
		errContext = strings.TrimSuffix(errStr[:idx], ": ")
	}

	p.line(p.red.Render("╭ Validation Error"))
	if errContext != "" {
		p.line(p.red.Render("│") + " " + p.gray.Render(errContext))
		p.line(p.red.Render("│"))
	}

	for _, fe := range fieldErrs {
		line := p.red.Render("│") + " " + p.red.Render(Cross) + " "
		if fe.Field != "" {
			line += p.gray.Render(fe.Field + ": ")
		}
		line += fe.Err.Error()
		p.line(line)
	}

	p.line(p.red.Render("╵"))
}

// Errorf prints an error notice in red.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(p.red.Render(Cross + " " + fmt.Sprintf(format, args...)))
}

// Successf prints a success notice in green.
func (p *Printer) Successf(format string, args ...any) {
	p.line(p.green.Render(Check + " " + fmt.Sprintf(format, args...)))
}

// Infof prints an info notice in gray.
func (p *Printer) Infof(format string, args ...any) {
	p.line(p.gray.Render(Dot + " " + fmt.Sprintf(format, args...)))
}

// Warnf prints a warning notice in yellow.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(p.yellow.Render(Dot + " " + fmt.Sprintf(format, args...)))
}

// Printf prints a plain line.
func (p *Printer) Printf(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

// Bold makes text bold.
func (p *Printer) Bold(text string) string {
	return p.bold.Render(text)
}

// Muted renders secondary text.
func (p *Printer) Muted(text string) string {
	return p.gray.Render(text)
}

// Section prints a section header.
func (p *Printer) Section(title string) {
	p.line(p.underline.Render(title))
}

// CheckItem prints a passing item.
func (p *Printer) CheckItem(label, detail string) {
	p.printItem(p.green, Check, label, detail)
}

// WarnItem prints a warning item.
func (p *Printer) WarnItem(label, detail string) {
	p.printItem(p.yellow, Dot, label, detail)
}

// FailItem prints a failing item.
func (p *Printer) FailItem(label, detail string) {
	p.printItem(p.red, Cross, label, detail)
}

func (p *Printer) printItem(style lipgloss.Style, symbol, label, detail string) {
	line := "  " + style.Render(symbol) + " " + label
	if detail != "" {
		line += ": " + detail
	}
	p.line(line)
}
