package cmd

import (
	"io"

	"github.com/josephlewis42/hostreport/core/vos"
	log "github.com/sirupsen/logrus"
)

// defaultLogLevel keeps diagnostics out of the report unless asked for.
const defaultLogLevel = log.WarnLevel

// parseLogLevel reads the log level from the environment.
func parseLogLevel(env vos.VEnv) (log.Level, error) {
	raw, ok := env.LookupEnv(EnvLogLevel)
	if !ok || raw == "" {
		return defaultLogLevel, nil
	}
	level, err := log.ParseLevel(raw)
	if err != nil {
		return defaultLogLevel, err
	}
	return level, nil
}

func configureLogging(env vos.VEnv, w io.Writer) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	level, err := parseLogLevel(env)
	log.SetLevel(level)
	if err != nil {
		log.WithError(err).Warnf("ignoring %s", EnvLogLevel)
	}
}
