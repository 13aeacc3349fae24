package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/josephlewis42/hostreport/core/vos"
	"github.com/josephlewis42/hostreport/report"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]struct {
		env     []string
		want    log.Level
		wantErr bool
	}{
		"unset":   {env: nil, want: log.WarnLevel},
		"empty":   {env: []string{EnvLogLevel + "="}, want: log.WarnLevel},
		"debug":   {env: []string{EnvLogLevel + "=debug"}, want: log.DebugLevel},
		"mixed":   {env: []string{EnvLogLevel + "=ERROR"}, want: log.ErrorLevel},
		"invalid": {env: []string{EnvLogLevel + "=chatty"}, want: log.WarnLevel, wantErr: true},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			level, err := parseLogLevel(vos.NewMapEnvFromEnvList(tc.env))
			assert.Equal(t, tc.want, level)
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}

func TestRootCmd(t *testing.T) {
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		exitCode = 0
	})

	out := &bytes.Buffer{}
	rootCmd.SetArgs([]string{"--help", "-v", "plain"})
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, 0, exitCode)

	got := out.String()
	assert.Contains(t, got, "Argument count: 3\n")
	assert.Contains(t, got, "  Argument 1: --help\n")
	assert.Contains(t, got, "  Argument 2: -v\n")
	assert.Contains(t, got, "  Argument 3: plain\n")
	assert.Contains(t, got, "Report complete!")
	assert.NotContains(t, got, "\x1b[", "output to a buffer is never colored")
}

func TestInterruptContext(t *testing.T) {
	ctx, stop := interruptContext(context.Background())
	assert.NoError(t, ctx.Err())

	stop()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.NotErrorIs(t, context.Cause(ctx), report.ErrInterrupted)
}
