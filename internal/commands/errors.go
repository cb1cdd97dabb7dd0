package commands

import (
	"context"
	"errors"
	"os"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/efie/internal/efie"
	"github.com/hay-kot/efie/internal/printer"
)

// fail prints the user facing notice for err and returns an exit error.
// Validation errors get the full field box.
func fail(ctx context.Context, err error) error {
	p := printer.Ctx(ctx)

	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		p.FatalError(err)
	} else {
		p.Errorf("%s", efie.Notice(err))
	}

	log.Debug().Err(err).Msg("command failed")
	return cli.Exit("", 1)
}

// interactive reports whether stdin and stdout are both terminals.
func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
