// Package pdfio provides the PDF backend for compose: sources are inspected
// with pdfcpu, destinations are built with fpdf and source pages are
// imported as form XObject templates with gofpdi.
package pdfio

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/itsmostafa/invreorder/internal/compose"
	"github.com/itsmostafa/invreorder/internal/layout"
)

func init() {
	// pdfcpu would otherwise create a config directory on first use
	api.DisableConfigDir()
}

// sizeTolerance is how far, in points, a page may deviate from the
// layout geometry before it is reported as mismatched
const sizeTolerance = 1.0

// PageSize is the width and height of a page in points
type PageSize struct {
	Width  float64
	Height float64
}

// SourceDocument is an open, read-only input PDF
type SourceDocument struct {
	path  string
	sizes []PageSize
}

// OpenSource inspects the PDF at path. It fails with a compose.ErrPdfRead
// error if the file is missing, is not a readable PDF or has no pages.
func OpenSource(path string) (*SourceDocument, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, compose.ReadFailure("open", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, compose.ReadFailure("open", path, errors.New("not a regular file"))
	}

	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, compose.ReadFailure("open", path, err)
	}
	if len(dims) == 0 {
		return nil, compose.ReadFailure("open", path, errors.New("source PDF has no pages"))
	}

	sizes := make([]PageSize, len(dims))
	for i, d := range dims {
		sizes[i] = PageSize{Width: d.Width, Height: d.Height}
	}

	return &SourceDocument{path: path, sizes: sizes}, nil
}

// Path returns the file the document was opened from
func (s *SourceDocument) Path() string {
	return s.path
}

// PageCount returns the number of pages
func (s *SourceDocument) PageCount() int {
	return len(s.sizes)
}

// PageSizes returns the media box size of every page, in page order
func (s *SourceDocument) PageSizes() []PageSize {
	return s.sizes
}

// Mismatched returns the 1-based numbers of pages whose size differs from
// g. Those pages are still composed with g's bands.
func (s *SourceDocument) Mismatched(g layout.Geometry) []int {
	var pages []int
	for i, sz := range s.sizes {
		if math.Abs(sz.Width-g.Width) > sizeTolerance || math.Abs(sz.Height-g.Height) > sizeTolerance {
			pages = append(pages, i+1)
		}
	}
	return pages
}

// Close releases the document. A closed source reports zero pages.
func (s *SourceDocument) Close() error {
	if s.sizes == nil {
		return fmt.Errorf("source %s already closed", s.path)
	}
	s.sizes = nil
	return nil
}
