package main

import (
	"fmt"
	"io"

	"github.com/rpgo/outcome-sim/internal/metrics"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newLogger creates a text logrus logger writing to w at the named level.
func newLogger(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logger, nil
}

// commandLogger builds the logger for cmd from its --log-level flag; logs go to stderr.
func commandLogger(cmd *cobra.Command) (*logrus.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	return newLogger(level, cmd.ErrOrStderr())
}

// writeMetrics records one run via observe and writes the textfile named by --metrics.
func writeMetrics(cmd *cobra.Command, logger *logrus.Logger, observe func(*metrics.Recorder)) error {
	path, _ := cmd.Flags().GetString("metrics")
	if path == "" {
		return nil
	}
	recorder := metrics.NewRecorder()
	observe(recorder)
	if err := recorder.WriteTextfile(path); err != nil {
		return err
	}
	logger.Infof("metrics written to %s", path)
	return nil
}
