// Package compose builds the reordered document: for every destination
// page it copies four source bands into place, clipped to their slot.
//
// The package only talks to PDFs through the Source and Destination
// interfaces, so any backend able to import a page as a reusable drawable,
// clip and translate can be plugged in.
package compose

import (
	"context"
	"fmt"

	"github.com/itsmostafa/invreorder/internal/layout"
)

// Source is a read-only PDF whose pages each hold four invoices
type Source interface {
	// PageCount returns the number of pages, P
	PageCount() int
}

// Drawable is a snapshot of one full source page, bound to the
// destination that created it. It may be drawn any number of times.
type Drawable interface{}

// Destination is a write-only PDF built one page at a time
type Destination interface {
	// Geometry returns the fixed page layout used for measuring and output
	Geometry() layout.Geometry

	// AddPage appends a blank page. Drawing goes to the latest page.
	AddPage() error

	// Snapshot returns the full content of the given 1-based source page
	// as a drawable reusable within this destination.
	Snapshot(src Source, page int) (Drawable, error)

	// DrawClipped saves the graphics state, clips to clip, draws d
	// translated vertically by dy and restores the state.
	DrawClipped(d Drawable, clip layout.Rect, dy float64) error
}

// ProgressFunc is called after each completed destination page
type ProgressFunc func(page int)

// Reorder fills dst with src's invoices in reindexed order.
//
// Pages are processed strictly in order 1..P and slots 1..4 within a page.
// onProgress, if not nil, is called exactly once per finished page with the
// 1-based page number. ctx is checked before each page; any failure aborts
// the run and leaves dst in a state that must be discarded.
func Reorder(ctx context.Context, src Source, dst Destination, onProgress ProgressFunc) error {
	numPages := src.PageCount()
	if numPages < 0 {
		return CompositionFailure("reorder", fmt.Errorf("invalid page count %d", numPages))
	}
	geom := dst.Geometry()

	for page := 1; page <= numPages; page++ {
		if err := ctx.Err(); err != nil {
			return CompositionFailure("reorder", fmt.Errorf("cancelled before page %d: %w", page, err))
		}

		if err := dst.AddPage(); err != nil {
			return classify("add page", page, 0, err)
		}

		for pos := 1; pos <= layout.SlotsPerPage; pos++ {
			from := layout.SourceOf(numPages, page, pos)
			if from.Page < 1 || from.Page > numPages {
				return CompositionFailure("map", fmt.Errorf("page %d slot %d maps to source page %d of %d",
					page, pos, from.Page, numPages))
			}

			snap, err := dst.Snapshot(src, from.Page)
			if err != nil {
				return classify("snapshot", page, pos, err)
			}

			dy := geom.Offset(pos, from.Slot)
			if err := dst.DrawClipped(snap, geom.Band(pos), dy); err != nil {
				return classify("draw", page, pos, err)
			}
		}

		if onProgress != nil {
			onProgress(page)
		}
	}

	return nil
}
