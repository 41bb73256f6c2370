// Package layout maps destination invoice slots to source slots and slot
// numbers to band rectangles on a page.
package layout

// SlotsPerPage is the number of invoice bands on every page
const SlotsPerPage = 4

// Location identifies one slot on one page. Both fields are 1-based.
type Location struct {
	Page int
	Slot int
}

// Placement pairs a destination slot with the source slot it is filled from
type Placement struct {
	Dest    Location
	Invoice int
	Source  Location
}

// InvoiceNumber applies the forward rule for a document of numPages pages.
// Slot pos of destination page is the invoice at page + (pos-1)*numPages,
// so the first slots of all pages come first, then all second slots, and so on.
func InvoiceNumber(numPages, page, pos int) int {
	return page + (pos-1)*numPages
}

// LocationOf returns where invoice n sits in the source document.
func LocationOf(invoice int) Location {
	return Location{
		Page: (invoice + SlotsPerPage - 1) / SlotsPerPage,
		Slot: (invoice-1)%SlotsPerPage + 1,
	}
}

// SourceOf returns the source slot whose content belongs at the
// destination slot (page, pos).
func SourceOf(numPages, page, pos int) Location {
	return LocationOf(InvoiceNumber(numPages, page, pos))
}

// Plan lists every placement of a numPages document in processing order
func Plan(numPages int) []Placement {
	if numPages <= 0 {
		return nil
	}
	out := make([]Placement, 0, numPages*SlotsPerPage)
	for page := 1; page <= numPages; page++ {
		for pos := 1; pos <= SlotsPerPage; pos++ {
			n := InvoiceNumber(numPages, page, pos)
			out = append(out, Placement{
				Dest:    Location{Page: page, Slot: pos},
				Invoice: n,
				Source:  LocationOf(n),
			})
		}
	}
	return out
}
