package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/josephlewis42/hostreport/core/config"
	"github.com/josephlewis42/hostreport/core/vos"
	"github.com/josephlewis42/hostreport/report"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// EnvLogLevel names the environment variable that sets the log level.
const EnvLogLevel = "HOSTREPORT_LOG_LEVEL"

// exitCode is the status the process exits with once the command returns.
var exitCode int

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hostreport [ARG]...",
	Short: "Print a report about the host and current directory",
	Long: `Prints system information, the contents of the current directory,
the arguments it was given and a short feature demo.

Arguments are echoed back verbatim, none of them are parsed as flags.`,
	// Every argument, including --help, belongs to the report.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := interruptContext(cmd.Context())
		defer stop()

		virtOS := vos.NewHostOS(
			append([]string{cmd.CommandPath()}, args...),
			cmd.OutOrStdout(),
			cmd.ErrOrStderr(),
		)

		configureLogging(virtOS, cmd.ErrOrStderr())

		cfg, err := config.FromEnv(virtOS.LookupEnv)
		if err != nil {
			return err
		}
		log.WithField("banner_width", cfg.BannerWidth).Debug("configuration loaded")

		exitCode = report.Command(ctx, cfg)(virtOS)
		return nil
	},
}

// interruptContext returns a context that is cancelled with
// report.ErrInterrupted the first time the process is interrupted. Later
// signals get the default behavior.
func interruptContext(parent context.Context) (context.Context, func()) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancelCause(parent)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigs:
			log.Debugf("Got signal %q, stopping report", sig)
			signal.Stop(sigs)
			cancel(report.ErrInterrupted)
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigs)
		cancel(nil)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}
