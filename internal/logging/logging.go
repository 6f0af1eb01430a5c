package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/sweep/internal/config"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 14
)

// New returns a logger that writes only to the rotating file named by
// cfg.LogFile; the terminal belongs to the game screen.
func New(cfg *config.Config) (*logrus.Logger, error) {
	level := logrus.InfoLevel
	if cfg.Development {
		level = logrus.DebugLevel
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetOutput(io.Discard)

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Level:      level,
		Formatter:  &logrus.TextFormatter{DisableColors: true, FullTimestamp: true},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create log file hook: %w", err)
	}
	log.AddHook(hook)

	return log, nil
}

// Adopt routes a package-level logger such as [sweep.Log] through log.
func Adopt(pkg, log *logrus.Logger) {
	pkg.SetLevel(log.GetLevel())
	pkg.SetOutput(io.Discard)
	pkg.ReplaceHooks(log.Hooks)
}
