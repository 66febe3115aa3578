/*
NAME
  logsetup.go - assembles a logging.Logger from a rotating file writer,
  optionally fanned out to a systemd journal sink.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package logsetup wires up the logging.Logger every parser component takes,
// following the same fileLog/netLog fan-out cmd/rv and cmd/speaker build
// around lumberjack, with an optional systemd-journal sink in place of the
// cloud netlogger neither of those daemons need here.
package logsetup

import (
	"io"

	"github.com/ausocean/utils/logging"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Config controls the rotating log file and verbosity level handed to
// logging.New.
type Config struct {
	Path       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Verbosity  int8
	Suppress   bool // suppress echoing to stderr; see logging.New.
	Journal    bool // also fan out to the systemd journal, where available.
}

// New builds a logging.Logger writing to a lumberjack-rotated file at
// cfg.Path, additionally fanned out to the systemd journal when cfg.Journal
// is set and a journal sink is available on this platform.
func New(cfg Config) logging.Logger {
	fileLog := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
	}

	var w io.Writer = fileLog
	if cfg.Journal {
		if j, ok := journalWriter(); ok {
			w = io.MultiWriter(fileLog, j)
		}
	}

	return logging.New(cfg.Verbosity, w, cfg.Suppress)
}
