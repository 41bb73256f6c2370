package job

import (
	"fmt"
	"math"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/itsmostafa/invreorder/internal/layout"
)

// VerificationCheck is the outcome of one check on an output file
type VerificationCheck struct {
	Name   string
	Passed bool
	Error  string
}

// VerificationReport collects the checks run against an output file
type VerificationReport struct {
	Output    string
	Passed    bool
	Checks    []VerificationCheck
	Timestamp time.Time
}

// Verify checks that output is a valid PDF with as many pages as source,
// all of them in the layout page size.
func Verify(source, output string) VerificationReport {
	report := VerificationReport{
		Output:    output,
		Passed:    true,
		Timestamp: time.Now(),
	}
	add := func(check VerificationCheck) {
		report.Checks = append(report.Checks, check)
		if !check.Passed {
			report.Passed = false
		}
	}

	add(runCheck("valid PDF", func() error {
		return api.ValidateFile(output, model.NewDefaultConfiguration())
	}))

	add(runCheck("page count matches source", func() error {
		want, err := api.PageCountFile(source)
		if err != nil {
			return fmt.Errorf("source: %w", err)
		}
		got, err := api.PageCountFile(output)
		if err != nil {
			return fmt.Errorf("output: %w", err)
		}
		if got != want {
			return fmt.Errorf("output has %d pages, source has %d", got, want)
		}
		return nil
	}))

	add(runCheck("pages are A4", func() error {
		dims, err := api.PageDimsFile(output)
		if err != nil {
			return err
		}
		g := layout.A4
		for i, d := range dims {
			if math.Abs(d.Width-g.Width) > 1 || math.Abs(d.Height-g.Height) > 1 {
				return fmt.Errorf("page %d is %.2fx%.2f", i+1, d.Width, d.Height)
			}
		}
		return nil
	}))

	return report
}

func runCheck(name string, fn func() error) VerificationCheck {
	check := VerificationCheck{Name: name, Passed: true}
	if err := fn(); err != nil {
		check.Passed = false
		check.Error = err.Error()
	}
	return check
}
