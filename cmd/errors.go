package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tlview/tlview/cmd/common"
	"github.com/tlview/tlview/pkg/timeline"
	"github.com/urfave/cli"
)

// ErrReported is returned by actions whose failure has already been printed.
var ErrReported = errors.New("error reported")

func rectifyError(err error) string {
	var ms *timeline.MalformedSourceError
	switch {
	case errors.Is(err, context.Canceled):
		return "interrupted"
	case errors.Is(err, timeline.ErrIncompleteSelection):
		return err.Error() + " (use --names and at least one of --switchboard, --threadloop or --events)"
	case errors.As(err, &ms) && len(ms.Missing) > 0:
		return fmt.Sprintf("%s does not look like a timing log: table %q lacks %s", ms.Path, ms.Table, strings.Join(ms.Missing, ", "))
	case errors.Is(err, timeline.ErrInvalidOrder):
		return err.Error() + ` (list every plugin exactly once, see "tlview order")`
	}
	return err.Error()
}

// fail prints err for the user and returns ErrReported.
func fail(ctx *cli.Context, cmd, action string, err error) error {
	common.PrintRuntimeErr(ctx, cmd, action, errors.New(rectifyError(err)))
	return ErrReported
}
