// Package report prints a short diagnostic report about the host, the current
// directory and the process's arguments.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/josephlewis42/hostreport/core/config"
	"github.com/josephlewis42/hostreport/core/vos"
)

// ErrInterrupted is the cancellation cause used when the user interrupts a
// running report.
var ErrInterrupted = errors.New("interrupted by user")

// TimeLayout is the format of timestamps in the report.
const TimeLayout = "2006-01-02 15:04:05"

// Squares returns the squares of the integers 1 through n.
func Squares(n int) []int {
	out := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, i*i)
	}
	return out
}

func formatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// stickyWriter remembers the first write error and drops everything after it.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) Printf(format string, a ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *stickyWriter) Println(a ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintln(s.w, a...)
}

type reporter struct {
	ctx    context.Context
	virtOS vos.VOS
	cfg    *config.Configuration
	out    *stickyWriter
	color  ColorPrinter
}

// checkpoint returns the reason the report was cancelled, if it was.
func checkpoint(ctx context.Context) error {
	if ctx.Err() != nil {
		return context.Cause(ctx)
	}
	return nil
}

// Run writes the report to virtOS's stdout.
//
// Failures listing the working directory are reported inline. Every other
// failure, including cancellation of ctx, stops the report and is returned.
func Run(ctx context.Context, virtOS vos.VOS, cfg *config.Configuration) error {
	r := &reporter{
		ctx:    ctx,
		virtOS: virtOS,
		cfg:    cfg,
		out:    &stickyWriter{w: virtOS.Stdout()},
		color:  NewColorPrinter(virtOS),
	}

	if err := checkpoint(ctx); err != nil {
		return err
	}
	r.out.Println(r.color.Sprintf(ColorBoldGreen, "Host report"))
	r.out.Printf("Run at: %s\n", virtOS.Now().Format(TimeLayout))
	r.out.Println()

	for _, section := range []func() error{
		r.systemInfo,
		r.directoryInfo,
		r.arguments,
		r.featureDemo,
		r.complete,
	} {
		if err := checkpoint(ctx); err != nil {
			return err
		}
		if err := section(); err != nil {
			return err
		}
		if r.out.err != nil {
			return fmt.Errorf("writing report: %w", r.out.err)
		}
	}

	return nil
}

func (r *reporter) rule() {
	r.out.Println(strings.Repeat("=", r.cfg.BannerWidth))
}

func (r *reporter) header(title string) {
	r.rule()
	r.out.Println(r.color.Sprintf(ColorBoldCyan, "%s", title))
	r.rule()
}

func (r *reporter) systemInfo() error {
	r.header("System info")

	host := Describe(r.virtOS)
	r.out.Printf("Operating system: %s\n", strings.TrimSpace(host.OS+" "+host.Release))
	r.out.Printf("Runtime: %s\n", host.Runtime)
	r.out.Printf("Current time: %s\n", host.Time.Format(TimeLayout))
	r.out.Printf("Current user: %s\n", host.User)
	r.out.Println()
	return nil
}

func (r *reporter) arguments() error {
	r.header("Command-line arguments")

	args := r.virtOS.Args()
	if len(args) > 1 {
		args = args[1:]
		r.out.Printf("Argument count: %d\n", len(args))
		for i, arg := range args {
			r.out.Printf("  Argument %d: %s\n", i+1, arg)
		}
	} else {
		r.out.Println("No command-line arguments provided")
	}
	r.out.Println()
	return nil
}

func (r *reporter) featureDemo() error {
	r.header("Feature demo")

	r.out.Printf("Squares: %s\n", formatInts(Squares(5)))

	r.out.Println()
	r.out.Println("Script info:")
	for _, item := range r.cfg.Info {
		r.out.Printf("  %s: %s\n", item.Key, item.Value)
	}

	r.out.Println()
	r.out.Println("Math:")
	r.out.Printf("  Value of pi: %.6f\n", math.Pi)
	r.out.Printf("  Square root of pi: %.6f\n", math.Sqrt(math.Pi))
	r.out.Println()
	return nil
}

func (r *reporter) complete() error {
	r.rule()
	r.out.Println(r.color.Sprintf(ColorBoldGreen, "Report complete!"))
	r.rule()
	r.out.Printf("Hint: %s\n", r.cfg.UsageHint)
	return nil
}
