package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-pieces/pkg/inventory"
	"github.com/huynhanx03/go-pieces/pkg/logger"
	"github.com/huynhanx03/go-pieces/pkg/settings"
	"github.com/huynhanx03/go-pieces/pkg/shell"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("pieces", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.StringP("config", "c", "", "path to a config file (yaml, json or toml)")
	flags.Uint64("seed", 0, "seed for piece kinds (0 = time based)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	v := settings.NewViper()
	if err := v.BindPFlag("inventory.seed", flags.Lookup("seed")); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if flags.Changed("log-level") {
		if err := v.BindPFlag("logger.log_level", flags.Lookup("log-level")); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	cfg, err := settings.Load(v, *configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	log, err := logger.NewWithWriter(cfg.Logger, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	inv, err := inventory.New(cfg.Inventory)
	if err != nil {
		log.Error("failed to build inventory", zap.Error(err))
		return 1
	}
	log.Info("inventory ready",
		zap.Int("queue_capacity", inv.QueueCap()),
		zap.Int("stack_capacity", inv.StackCap()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := shell.New(inv, stdin, stdout, log).Run(gctx)
		if err == nil {
			// Quit: release the watcher below.
			return errShellClosed
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			log.Info("received shutdown signal")
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errShellClosed) && !errors.Is(err, context.Canceled) {
		log.Error("shell stopped", zap.Error(err))
		return 1
	}
	return 0
}

var errShellClosed = errors.New("shell closed")
