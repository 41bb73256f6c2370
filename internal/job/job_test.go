package job

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"

	"github.com/itsmostafa/invreorder/internal/compose"
)

func writeInvoices(t *testing.T, path string, numPages int) {
	t.Helper()

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetFont("Helvetica", "", 16)
	_, h := pdf.GetPageSize()
	for page := 1; page <= numPages; page++ {
		pdf.AddPage()
		for slot := 0; slot < 4; slot++ {
			pdf.Text(50, float64(slot)*h/4+60, fmt.Sprintf("Invoice %d", (page-1)*4+slot+1))
		}
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		source string
		suffix string
		want   string
	}{
		{"invoices.pdf", "_reordered", "invoices_reordered.pdf"},
		{"/tmp/a/b.PDF", "_x", "/tmp/a/b_x.PDF"},
		{"noext", "_reordered", "noext_reordered.pdf"},
	}
	for _, tt := range tests {
		if got := DefaultOutputPath(tt.source, tt.suffix); got != tt.want {
			t.Errorf("DefaultOutputPath(%q, %q) = %q, want %q", tt.source, tt.suffix, got, tt.want)
		}
	}
}

func TestValidatePaths(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.pdf")
	if err := os.WriteFile(src, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatal(err)
	}
	existing := filepath.Join(dir, "existing.pdf")
	if err := os.WriteFile(existing, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		source   string
		output   string
		force    bool
		wantErr  bool
		wantRead bool
	}{
		{name: "ok", source: src, output: filepath.Join(dir, "out.pdf")},
		{name: "creates output dir", source: src, output: filepath.Join(dir, "sub", "deeper", "out.pdf")},
		{name: "empty source", source: "", output: "out.pdf", wantErr: true},
		{name: "empty output", source: src, output: "", wantErr: true},
		{name: "missing source", source: filepath.Join(dir, "missing.pdf"), output: filepath.Join(dir, "o.pdf"), wantErr: true, wantRead: true},
		{name: "source is dir", source: dir, output: filepath.Join(dir, "o.pdf"), wantErr: true, wantRead: true},
		{name: "same path", source: src, output: src, wantErr: true},
		{name: "output exists", source: src, output: existing, wantErr: true},
		{name: "output exists with force", source: src, output: existing, force: true},
		{name: "output is dir", source: src, output: dir, force: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePaths(tt.source, tt.output, tt.force)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ValidatePaths() expected error, got nil")
				}
				if tt.wantRead && !errors.Is(err, compose.ErrPdfRead) {
					t.Errorf("ValidatePaths() error = %v, want pdf read failure", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidatePaths() unexpected error: %v", err)
			}
			if _, err := os.Stat(filepath.Dir(tt.output)); err != nil {
				t.Errorf("output directory missing: %v", err)
			}
		})
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "invoices.pdf")
	writeInvoices(t, src, 3)

	var out bytes.Buffer
	res, err := Run(context.Background(), Config{Source: src, Verify: true, Out: &out})
	if err != nil {
		t.Fatalf("Run() unexpected error: %v\n%s", err, out.String())
	}

	wantOutput := filepath.Join(dir, "invoices_reordered.pdf")
	if res.Output != wantOutput {
		t.Errorf("Output = %q, want %q", res.Output, wantOutput)
	}
	if res.Pages != 3 {
		t.Errorf("Pages = %d, want 3", res.Pages)
	}
	if len(res.Mismatched) != 0 {
		t.Errorf("Mismatched = %v, want none", res.Mismatched)
	}
	if res.Verification == nil || !res.Verification.Passed {
		t.Errorf("verification did not pass: %+v", res.Verification)
	}
	if _, err := os.Stat(wantOutput); err != nil {
		t.Errorf("output not written: %v", err)
	}

	text := out.String()
	for _, want := range []string{"page 1/3", "page 2/3", "page 3/3", "Reorder Complete"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Index(text, "page 1/3") > strings.Index(text, "page 3/3") {
		t.Errorf("progress out of order:\n%s", text)
	}
}

func TestRunMissingSource(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.pdf")

	var out bytes.Buffer
	_, err := Run(context.Background(), Config{
		Source: filepath.Join(dir, "missing.pdf"),
		Output: output,
		Out:    &out,
	})
	if !errors.Is(err, compose.ErrPdfRead) {
		t.Fatalf("Run() error = %v, want pdf read failure", err)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("output should not exist, stat error: %v", err)
	}
	if !strings.Contains(out.String(), "FAILED") {
		t.Errorf("failure not reported:\n%s", out.String())
	}
}

func TestRunCorruptSourceLeavesNoFiles(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.pdf")
	if err := os.WriteFile(src, []byte("%PDF-1.4\ngarbage"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Run(context.Background(), Config{Source: src, Out: &bytes.Buffer{}})
	if !errors.Is(err, compose.ErrPdfRead) {
		t.Fatalf("Run() error = %v, want pdf read failure", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the source in %s, found %d entries", dir, len(entries))
	}
}

func TestRunCancelled(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.pdf")
	output := filepath.Join(dir, "out.pdf")
	writeInvoices(t, src, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Config{Source: src, Output: output, Out: &bytes.Buffer{}})
	if !errors.Is(err, compose.ErrComposition) {
		t.Fatalf("Run() error = %v, want composition failure", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the source in %s, found %d entries", dir, len(entries))
	}
}

func TestVerifyPageCountMismatch(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.pdf")
	other := filepath.Join(dir, "other.pdf")
	writeInvoices(t, src, 2)
	writeInvoices(t, other, 3)

	report := Verify(src, other)
	if report.Passed {
		t.Fatal("Verify() passed for mismatched page counts")
	}
	for _, check := range report.Checks {
		if check.Name == "page count matches source" && check.Passed {
			t.Error("page count check should fail")
		}
		if check.Name == "valid PDF" && !check.Passed {
			t.Errorf("valid PDF check failed: %s", check.Error)
		}
	}
}
