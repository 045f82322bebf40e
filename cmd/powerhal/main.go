package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"codeberg.org/mutker/powerhal/internal/config"
	"codeberg.org/mutker/powerhal/internal/errors"
	"codeberg.org/mutker/powerhal/internal/host"
	"codeberg.org/mutker/powerhal/internal/logger"
	"codeberg.org/mutker/powerhal/internal/pid"
	"codeberg.org/mutker/powerhal/internal/power"
	"codeberg.org/mutker/powerhal/internal/sysfs"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger.Init(level, logger.IsService())
	logger.Debug().
		Str("sysfs_root", cfg.SysfsRoot).
		Str("pid_dir", cfg.PIDDir).
		Msg("Config loaded")

	if err := run(cfg); err != nil {
		var appErr errors.Error
		if errors.As(err, &appErr) {
			logger.ErrorWithCode(appErr).Msg("powerhal stopped")
		} else {
			logger.Error().Err(err).Msg("powerhal stopped")
		}
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if err := pid.Write(cfg.PIDDir); err != nil {
		return err
	}
	defer func() {
		if err := pid.Remove(cfg.PIDDir); err != nil {
			logger.Error().Err(err).Msg("failed to remove PID file")
		}
	}()

	log := logger.Default()
	shim := power.New(sysfs.NewWriter(cfg.SysfsRoot), log)
	info := shim.Info()
	logger.Info().
		Str("id", info.ID).
		Str("name", info.Name).
		Stringer("module_api", info.ModuleAPIVersion).
		Msg("Loaded power module")

	shim.Init()
	if p := cfg.InitialProfile(); p != power.ProfileUnset {
		shim.PowerHint(power.HintSetProfile, int32(p))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if err := host.NewServer(shim, log).Serve(ctx, os.Stdin, os.Stdout); err != nil {
		return err
	}

	logger.Info().Msg("Exiting...")

	return nil
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}
