// Package job runs a complete reorder: it validates paths, opens the
// source, composes the destination on a background goroutine while
// rendering progress, and finalizes the output.
package job

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/itsmostafa/invreorder/internal/compose"
	"github.com/itsmostafa/invreorder/internal/layout"
	"github.com/itsmostafa/invreorder/internal/pdfio"
)

// Config holds the job configuration
type Config struct {
	Source string
	// Output defaults to DefaultOutputPath(Source, Suffix)
	Output string
	Suffix string
	// Force allows replacing an existing output file
	Force bool
	// Verify re-checks the written output against the source
	Verify bool
	Out    io.Writer
}

// Result describes a finished run
type Result struct {
	Output       string
	Pages        int
	Duration     time.Duration
	Mismatched   []int
	Verification *VerificationReport
}

// Run executes the reorder described by cfg
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Suffix == "" {
		cfg.Suffix = DefaultSuffix
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutputPath(cfg.Source, cfg.Suffix)
	}

	start := time.Now()
	res, err := run(ctx, cfg)
	if err != nil {
		FormatFailure(cfg.Out, err, time.Since(start))
		return nil, err
	}
	res.Duration = time.Since(start)

	if cfg.Verify {
		report := Verify(cfg.Source, res.Output)
		FormatVerification(cfg.Out, report)
		res.Verification = &report
		if !report.Passed {
			return res, fmt.Errorf("verification of %s failed", res.Output)
		}
	}

	FormatSummary(cfg.Out, res)
	return res, nil
}

func run(ctx context.Context, cfg Config) (*Result, error) {
	if err := ValidatePaths(cfg.Source, cfg.Output, cfg.Force); err != nil {
		return nil, err
	}

	src, err := pdfio.OpenSource(cfg.Source)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	total := src.PageCount()
	FormatHeader(cfg.Out, cfg.Source, cfg.Output, total)
	mismatched := src.Mismatched(layout.A4)
	FormatSizeWarning(cfg.Out, mismatched)

	dst, err := pdfio.CreateDestination(cfg.Output)
	if err != nil {
		return nil, err
	}

	if err := composeInBackground(ctx, cfg.Out, src, dst, total); err != nil {
		dst.Discard()
		return nil, err
	}

	if err := pdfio.Finalize(dst); err != nil {
		return nil, err
	}

	return &Result{
		Output:     cfg.Output,
		Pages:      dst.PageCount(),
		Mismatched: mismatched,
	}, nil
}

// composeInBackground runs compose.Reorder on a worker goroutine. Progress is passed
// back over a channel and rendered here, so only this goroutine writes to w.
func composeInBackground(ctx context.Context, w io.Writer, src compose.Source, dst compose.Destination, total int) error {
	progress := make(chan int)
	done := make(chan error, 1)

	go func() {
		defer close(progress)
		done <- compose.Reorder(ctx, src, dst, func(page int) {
			progress <- page
		})
	}()

	for page := range progress {
		FormatProgress(w, page, total)
	}
	return <-done
}
