package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/josephlewis42/hostreport/core/config"
	"github.com/josephlewis42/hostreport/core/vos"
	log "github.com/sirupsen/logrus"
)

// Command wraps Run as a process. It is the only place a failed report is
// turned into an exit code: 0 on success, 1 if the report was interrupted or
// failed for any reason.
func Command(ctx context.Context, cfg *config.Configuration) vos.ProcessFunc {
	return func(virtOS vos.VOS) (exitCode int) {
		w := virtOS.Stdout()

		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Debug("report panicked")
				fmt.Fprintf(w, "\nError: report failed: %v\n", r)
				exitCode = 1
			}
		}()

		err := Run(ctx, virtOS, cfg)
		switch {
		case err == nil:
			return 0

		case errors.Is(err, ErrInterrupted), errors.Is(err, context.Canceled):
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Warning: interrupted by user")
			return 1

		default:
			log.WithError(err).Debug("report failed")
			fmt.Fprintf(w, "\nError: report failed: %v\n", err)
			return 1
		}
	}
}
