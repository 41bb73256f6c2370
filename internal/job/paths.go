package job

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/itsmostafa/invreorder/internal/compose"
)

// DefaultSuffix is appended to the source name to build the output name
const DefaultSuffix = "_reordered"

// DefaultOutputPath places the output next to the source, e.g.
// invoices.pdf -> invoices_reordered.pdf
func DefaultOutputPath(source, suffix string) string {
	ext := filepath.Ext(source)
	base := strings.TrimSuffix(source, ext)
	if ext == "" {
		ext = ".pdf"
	}
	return base + suffix + ext
}

// ValidatePaths checks the source and output paths before any work is done.
// The output directory is created if it does not exist yet.
func ValidatePaths(source, output string, force bool) error {
	if source == "" || output == "" {
		return errors.New("both source and output paths are required")
	}

	info, err := os.Stat(source)
	if err != nil {
		return compose.ReadFailure("open", source, err)
	}
	if !info.Mode().IsRegular() {
		return compose.ReadFailure("open", source, errors.New("not a regular file"))
	}

	absSrc, err := filepath.Abs(source)
	if err != nil {
		return fmt.Errorf("resolving source path: %w", err)
	}
	absOut, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("resolving output path: %w", err)
	}
	if absSrc == absOut {
		return errors.New("source and output paths must be different")
	}

	outInfo, err := os.Stat(output)
	switch {
	case err == nil && outInfo.IsDir():
		return fmt.Errorf("output path %q is a directory", output)
	case err == nil && !force:
		return fmt.Errorf("output file %q already exists (use --force to overwrite)", output)
	case err != nil && !os.IsNotExist(err):
		return compose.WriteFailure("stat", output, err)
	}

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return compose.WriteFailure("mkdir", output, err)
	}
	return nil
}
