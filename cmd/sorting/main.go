package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/shpitdev/sorting-tool/internal/app"
	"github.com/shpitdev/sorting-tool/internal/cli"
	"github.com/shpitdev/sorting-tool/internal/config"
	"github.com/shpitdev/sorting-tool/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], app.Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr})
	stop()
	os.Exit(code)
}

// run returns the process exit code: 0 on success, 2 for configuration
// errors (nothing reported), 1 when the run itself failed.
func run(ctx context.Context, args []string, streams app.Streams) int {
	flags, err := cli.Parse(args, streams.Stderr)
	if err != nil {
		_, _ = fmt.Fprintln(streams.Stderr, err.Error())
		return 2
	}
	if flags.Help {
		cli.Usage(streams.Stdout)
		return 0
	}
	if flags.Version {
		_, _ = fmt.Fprintln(streams.Stdout, version.Current)
		return 0
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		_, _ = fmt.Fprintf(streams.Stderr, "config error: %s\n", err)
		return 2
	}
	opts, err := loadOptions(flags)
	if err != nil {
		_, _ = fmt.Fprintf(streams.Stderr, "config error: %s\n", err)
		return 2
	}
	cfg, err := app.NewConfig(opts)
	if err != nil {
		_, _ = fmt.Fprintf(streams.Stderr, "config error: %s\n", err)
		return 2
	}

	if err := app.Run(ctx, cfg, streams); err != nil {
		return exitCode(streams.Stderr, err)
	}
	return 0
}

// loadOptions layers defaults, config file, environment and flags.
func loadOptions(flags cli.Flags) (config.Options, error) {
	opts := config.Default()

	envOpts, err := config.FromEnv(config.Options{})
	if err != nil {
		return config.Options{}, err
	}
	if path := strings.TrimSpace(flags.ConfigPath(envOpts.ConfigFile)); path != "" {
		opts.ConfigFile = path
		if opts, err = config.LoadFile(path, opts); err != nil {
			return config.Options{}, err
		}
	}

	if opts, err = config.FromEnv(opts); err != nil {
		return config.Options{}, err
	}
	return flags.Apply(opts), nil
}

func exitCode(w io.Writer, err error) int {
	var ce *app.ConfigError
	if errors.As(err, &ce) {
		_, _ = fmt.Fprintln(w, err.Error())
		return 2
	}
	_, _ = fmt.Fprintf(w, "sorting failed: %s\n", err)
	return 1
}
