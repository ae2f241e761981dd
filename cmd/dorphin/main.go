package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"codeberg.org/snonux/dorphin/internal/app"
	"codeberg.org/snonux/dorphin/internal/config"
	"codeberg.org/snonux/dorphin/internal/logging"
	"codeberg.org/snonux/dorphin/internal/meta"
)

var (
	runApp = app.Run
	exit   = os.Exit
)

func main() {
	exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dorphin", flag.ContinueOnError)
	fs.SetOutput(stderr)
	themeFlag := fs.String("theme", "", "Color theme: dark or light (default from DORPHIN_THEME)")
	avatarFlag := fs.String("avatar", "", "Profile avatar text (default from DORPHIN_AVATAR)")
	logFileFlag := fs.String("log-file", "", "Write logs to this file instead of discarding them")
	logLevelFlag := fs.String("log-level", "", "Log level: debug, info, warn or error")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *versionFlag {
		fmt.Fprintf(stdout, "Dorphin version %s\n", meta.Version)
		return 0
	}

	cfg, err := config.Process()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	overrideString(&cfg.Theme, *themeFlag)
	overrideString(&cfg.Avatar, *avatarFlag)
	overrideString(&cfg.LogFile, *logFileFlag)
	overrideString(&cfg.LogLevel, *logLevelFlag)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	logger, closer, err := logging.New(cfg.LogFile, level)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer closer.Close()

	ctx := logging.WithLogger(context.Background(), logger)
	opts := app.Options{
		Debounce:     cfg.Debounce,
		TickInterval: cfg.TickInterval,
		VoiceTimeout: cfg.VoiceTimeout,
		UploadDelay:  cfg.UploadDelay,
		LightMode:    cfg.LightMode(),
		Avatar:       cfg.Avatar,
	}
	if err := runApp(ctx, opts); err != nil {
		logger.Error("program failed", "error", err)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func overrideString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
