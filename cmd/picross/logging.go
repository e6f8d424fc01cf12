package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	logDir      = "logs"
	logFileName = "picross.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns the session logger. Without debug every record is
// discarded and the file is nil; with debug records go to logs/picross.log,
// rotating an oversized previous log aside first
// The terminal belongs to the game, so nothing is ever written to stdout or stderr
func setupLogging(debug bool) (*log.Logger, *os.File) {
	if !debug {
		return log.New(io.Discard), nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return log.New(io.Discard), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		stamp := time.Now().Format("20060102-150405")
		rotated := filepath.Join(logDir, strings.TrimSuffix(logFileName, ".log")+"-"+stamp+".log")
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return log.New(io.Discard), nil
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.StampMilli,
		Level:           log.DebugLevel,
		Formatter:       log.LogfmtFormatter,
	})
	return logger, f
}
