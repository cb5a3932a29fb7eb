// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qmdd

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// The package logs through github.com/rs/zerolog with a console writer. The
// kernel only emits debug-level messages (the per-gate trace of Run), so the
// default level keeps it quiet; the logger is a nop under "go test".

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// SetLogger overrides the package logger.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// SetLogOutput changes the output of the package logger.
func SetLogOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Logger returns the package logger.
func Logger() zerolog.Logger {
	return logger
}
