package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"PongArcade/core"
	"PongArcade/input"
	"PongArcade/logger"
	"PongArcade/loop"
	"PongArcade/sound"
	"PongArcade/terminal"
	"PongArcade/window"
)

const propertiesDir = "./properties"
const loggerDir = "./"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := core.NewFlagSet("pong")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	props, err := core.ReadProperties(propertiesDir, resolveEnv(flags), flags)
	if err != nil {
		return err
	}
	cfg := props.Config()

	// the terminal host owns stdout, so log lines go to the file only
	if err := logger.Log.Init(loggerDir, cfg.Host != core.HostTerminal); err != nil {
		return err
	}
	defer logger.Log.Close()

	rules, err := cfg.Rules()
	if err != nil {
		return err
	}
	game := core.NewGame(rules, rand.New(rand.NewSource(time.Now().UnixNano())))

	var session *loop.Session
	switch cfg.Host {
	case core.HostTerminal:
		session = loop.NewSession(game, input.NewLatch(terminal.KeyHold), sound.Silent{})
	default:
		session = loop.NewSession(game, input.NewLatch(0), window.NewCue(cfg.Sound))
	}

	session.Start(cfg.FPS)
	defer session.Stop()

	props.WatchDifficulty(func(d core.Difficulty) {
		logger.Log.Info(fmt.Sprintf(logger.ConfigReloadMsg, cfg.File, d))
		session.Submit(loop.Difficulty(d))
	}, func(err error) {
		logger.Log.Warn(fmt.Sprintf(logger.ConfigReloadFailedMsg, err))
	})

	switch cfg.Host {
	case core.HostTerminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = terminal.Run(ctx, session, cfg.FPS)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	default:
		err = window.Run(session, cfg.FPS)
	}
	if err != nil {
		logger.Log.Error(fmt.Sprintf(logger.HostFailedMsg, cfg.Host, err))
	}
	return err
}

// resolveEnv picks the properties environment: --env, then $PONG_ENV, then local.
func resolveEnv(flags *pflag.FlagSet) string {
	if env, _ := flags.GetString("env"); env != "" {
		return env
	}
	if env := os.Getenv("PONG_ENV"); env != "" {
		return env
	}
	return core.DefaultEnv
}
