package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/shpitdev/sorting-tool/internal/config"
	"github.com/shpitdev/sorting-tool/internal/report"
	"github.com/shpitdev/sorting-tool/pkg/pipeline/core"
	"github.com/shpitdev/sorting-tool/pkg/pipeline/datatype"
	"github.com/shpitdev/sorting-tool/pkg/pipeline/io/local"
	"github.com/shpitdev/sorting-tool/pkg/pipeline/schema"
)

// Config is a validated run configuration.
type Config struct {
	DataType    schema.DataType
	SortingType schema.SortingType
	InputFile   string
	OutputFile  string
	Verbose     bool
}

// ConfigError marks a failure that happened before any report was produced.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	if e == nil || e.Err == nil {
		return "configuration error"
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewConfig validates raw options.
func NewConfig(o config.Options) (Config, error) {
	dt, err := schema.ParseDataType(o.DataType)
	if err != nil {
		return Config{}, &ConfigError{Err: err}
	}
	return Config{
		DataType:    dt,
		SortingType: schema.ParseSortingType(o.SortingType),
		InputFile:   o.InputFile,
		OutputFile:  o.OutputFile,
		Verbose:     o.Verbose,
	}, nil
}

// Streams are the process streams a run falls back to when no files are configured.
// Skip warnings and run logs always go to Stderr.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run reads the whole input, then writes one report.
func Run(ctx context.Context, cfg Config, streams Streams) error {
	logger := log.New(io.Discard, "", log.LstdFlags)
	if cfg.Verbose {
		logger.SetOutput(streams.Stderr)
	}
	runID := uuid.NewString()
	logf := func(format string, args ...any) {
		prefix := make([]any, 0, len(args)+1)
		prefix = append(prefix, runID)
		prefix = append(prefix, args...)
		logger.Printf("run=%s "+format, prefix...)
	}
	runStart := time.Now()

	var in io.Reader = streams.Stdin
	inputName := "stdin"
	if cfg.InputFile != "" {
		f, err := local.OpenInput(cfg.InputFile)
		if err != nil {
			return &ConfigError{Err: err}
		}
		defer func() {
			_ = f.Close()
		}()
		in = f
		inputName = cfg.InputFile
	}

	out := streams.Stdout
	outputName := "stdout"
	var outFile io.WriteCloser
	if cfg.OutputFile != "" {
		f, err := local.CreateOutput(cfg.OutputFile)
		if err != nil {
			return &ConfigError{Err: err}
		}
		defer func() {
			_ = f.Close()
		}()
		out = f
		outFile = f
		outputName = cfg.OutputFile
	}

	logf("run start: dataType=%s sortingType=%s input=%s output=%s", cfg.DataType, cfg.SortingType, inputName, outputName)

	counter := &countingReader{r: in}
	cursor := local.NewCursor(counter)
	var (
		res stats
		err error
	)
	switch cfg.DataType {
	case schema.DataTypeLong:
		res, err = runWith[int64](ctx, datatype.Integer{}, cursor, out, cfg.SortingType, streams.Stderr)
	case schema.DataTypeLine:
		res, err = runWith[string](ctx, datatype.Line{}, cursor, out, cfg.SortingType, streams.Stderr)
	default:
		res, err = runWith[string](ctx, datatype.Word{}, cursor, out, cfg.SortingType, streams.Stderr)
	}
	if err != nil {
		return err
	}
	logf(
		"read complete: %s %s (%s) skipped=%d from %s in %s",
		humanize.Comma(int64(res.summary.Total)),
		res.plural,
		humanize.Bytes(counter.n),
		res.skipped,
		inputName,
		res.readTime.Round(time.Millisecond),
	)

	if outFile != nil {
		if err := outFile.Close(); err != nil {
			return fmt.Errorf("close %s: %w", outputName, err)
		}
	}
	logf(
		"run complete: mode=%s distinct=%s writeDuration=%s totalDuration=%s",
		res.summary.Mode,
		humanize.Comma(int64(res.summary.Distinct)),
		res.writeTime.Round(time.Millisecond),
		time.Since(runStart).Round(time.Millisecond),
	)
	return nil
}

type stats struct {
	summary   report.Summary
	plural    string
	skipped   int
	readTime  time.Duration
	writeTime time.Duration
}

func runWith[T comparable](
	ctx context.Context,
	dt datatype.DataType[T],
	cursor core.Cursor,
	out io.Writer,
	mode schema.SortingType,
	warn io.Writer,
) (stats, error) {
	res := stats{plural: datatype.Plural(dt)}

	readStart := time.Now()
	data, err := datatype.ReadAll(ctx, cursor, dt, func(e *core.SkipError) {
		res.skipped++
		_, _ = fmt.Fprintln(warn, e.Error())
	})
	if err != nil {
		return stats{}, fmt.Errorf("read input: %w", err)
	}
	res.readTime = time.Since(readStart)

	writeStart := time.Now()
	sum, err := report.Write(out, dt, mode, data)
	if err != nil {
		return stats{}, err
	}
	res.summary = sum
	res.writeTime = time.Since(writeStart)
	return res, nil
}

type countingReader struct {
	r io.Reader
	n uint64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += uint64(n)
	return n, err
}
