package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/sweep/internal/app"
	"github.com/vancomm/sweep/internal/config"
	"github.com/vancomm/sweep/internal/logging"
	"github.com/vancomm/sweep/internal/sweep"
)

func bindFlags(fs *flag.FlagSet, cfg *config.Config) {
	const (
		widthUsage  = "board width (0 fits the terminal)"
		heightUsage = "board height (0 fits the terminal)"
		logUsage    = "log file path"
	)
	fs.IntVar(&cfg.Width, "width", cfg.Width, widthUsage)
	fs.IntVar(&cfg.Width, "w", cfg.Width, widthUsage+" (shorthand)")
	fs.IntVar(&cfg.Height, "height", cfg.Height, heightUsage)
	fs.IntVar(&cfg.Height, "h", cfg.Height, heightUsage+" (shorthand)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "mine placement seed (0 picks one at random)")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, logUsage)
	fs.BoolVar(&cfg.Development, "dev", cfg.Development, "debug logging")
	fs.Func("mine", `fixed mine position as "x=3&y=4" (repeatable)`, cfg.AddMine)
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		exitf("unable to load config: %s", err)
	}

	bindFlags(flag.CommandLine, cfg)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		exitf("invalid config: %s", err)
	}

	log, err := logging.New(cfg)
	if err != nil {
		exitf("unable to set up logging: %s", err)
	}
	logging.Adopt(sweep.Log, log)

	log.WithFields(cfg.Fields()).Debug("config")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	a := app.New(log, cfg, nil)
	if err := a.Start(ctx); err != nil {
		log.WithError(err).Error("game stopped")
		stop()
		exitf("sweep: %s", err)
	}
	log.WithFields(logrus.Fields{"interrupted": ctx.Err() != nil}).Info("exit")
}
