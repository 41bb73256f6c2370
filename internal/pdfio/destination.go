package pdfio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/itsmostafa/invreorder/internal/compose"
	"github.com/itsmostafa/invreorder/internal/layout"
)

const mediaBox = "/MediaBox"

// template is an imported source page
type template struct {
	id     int
	width  float64
	height float64
}

// DestinationDocument is the output PDF under construction. It is written
// to a temporary file next to the target path and only moved into place by
// Finalize.
type DestinationDocument struct {
	path string
	tmp  *os.File
	geom layout.Geometry

	pdf       *fpdf.Fpdf
	imp       *gofpdi.Importer
	templates *TemplateStore[template]
	pages     int
	done      bool
}

// CreateDestination prepares an output document for path. The directory
// must exist and be writable; the target file itself is not touched until
// Finalize.
func CreateDestination(path string) (*DestinationDocument, error) {
	dir := filepath.Dir(path)
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	tmp, err := os.CreateTemp(dir, "."+base+"-*.pdf.tmp")
	if err != nil {
		return nil, compose.WriteFailure("create", path, err)
	}

	g := layout.A4
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: g.Width, Ht: g.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	return &DestinationDocument{
		path:      path,
		tmp:       tmp,
		geom:      g,
		pdf:       pdf,
		imp:       gofpdi.NewImporter(),
		templates: NewTemplateStore[template](),
	}, nil
}

// Path returns the final output path
func (d *DestinationDocument) Path() string {
	return d.path
}

// PageCount returns the number of pages added so far
func (d *DestinationDocument) PageCount() int {
	return d.pages
}

// Geometry implements compose.Destination
func (d *DestinationDocument) Geometry() layout.Geometry {
	return d.geom
}

// AddPage implements compose.Destination
func (d *DestinationDocument) AddPage() error {
	if d.done {
		return errors.New("destination already finalized")
	}
	d.pdf.AddPage()
	if err := d.pdf.Error(); err != nil {
		return compose.WriteFailure("add page", d.path, err)
	}
	d.pages++
	return nil
}

// Snapshot implements compose.Destination. Every source page is imported
// once; later snapshots of the same page reuse the template.
func (d *DestinationDocument) Snapshot(src compose.Source, page int) (compose.Drawable, error) {
	s, ok := src.(*SourceDocument)
	if !ok {
		return nil, fmt.Errorf("unsupported source type %T", src)
	}
	if page < 1 || page > s.PageCount() {
		return nil, fmt.Errorf("source page %d out of range [1, %d]", page, s.PageCount())
	}

	key := templateKey(s.path, page)
	if t, ok := d.templates.Get(key); ok {
		return t, nil
	}

	t, err := d.importPage(s.path, page)
	if err != nil {
		return nil, compose.ReadFailure("import page", s.path, err)
	}
	d.templates.Store(key, t)
	return t, nil
}

// importPage turns gofpdi panics on unreadable input into errors
func (d *DestinationDocument) importPage(path string, page int) (t template, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: %v", page, r)
		}
	}()

	t.id = d.imp.ImportPage(d.pdf, path, page, mediaBox)
	t.width, t.height = d.geom.Width, d.geom.Height
	if dims, ok := d.imp.GetPageSizes()[page]; ok {
		if mb, ok := dims[mediaBox]; ok && mb["w"] > 0 && mb["h"] > 0 {
			t.width, t.height = mb["w"], mb["h"]
		}
	}
	if err := d.pdf.Error(); err != nil {
		return t, err
	}
	return t, nil
}

// DrawClipped implements compose.Destination.
//
// fpdf measures y from the top of the page, so the band and the template
// position are flipped from the bottom-origin layout coordinates. The
// template keeps its natural size.
func (d *DestinationDocument) DrawClipped(x compose.Drawable, clip layout.Rect, dy float64) (err error) {
	t, ok := x.(template)
	if !ok {
		return fmt.Errorf("drawable %T was not created by this destination", x)
	}
	if d.pages == 0 {
		return errors.New("draw before first page")
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("drawing template %d: %v", t.id, r)
		}
	}()

	h := d.geom.Height
	d.pdf.ClipRect(clip.X, h-(clip.Y+clip.Height), clip.Width, clip.Height, false)
	d.imp.UseImportedTemplate(d.pdf, t.id, 0, h-dy-t.height, t.width, t.height)
	d.pdf.ClipEnd()

	return d.pdf.Error()
}

// Finalize writes the document and moves it onto the target path. The
// written file is validated with pdfcpu and must contain every composed
// page. On failure the temporary file is removed and the target path is
// left as it was.
func Finalize(d *DestinationDocument) error {
	if d.done {
		return compose.WriteFailure("finalize", d.path, errors.New("already finalized"))
	}
	d.done = true

	if err := d.write(); err != nil {
		d.removeTmp()
		return compose.WriteFailure("finalize", d.path, err)
	}
	if err := os.Rename(d.tmp.Name(), d.path); err != nil {
		d.removeTmp()
		return compose.WriteFailure("finalize", d.path, err)
	}
	return nil
}

func (d *DestinationDocument) write() error {
	if d.pages == 0 {
		return errors.New("no pages composed")
	}

	if err := d.pdf.Output(d.tmp); err != nil {
		d.tmp.Close()
		return fmt.Errorf("writing document: %w", err)
	}
	if err := d.tmp.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	name := d.tmp.Name()
	if err := api.ValidateFile(name, model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("validating output: %w", err)
	}
	n, err := api.PageCountFile(name)
	if err != nil {
		return fmt.Errorf("counting output pages: %w", err)
	}
	if n != d.pages {
		return fmt.Errorf("output has %d pages, composed %d", n, d.pages)
	}
	return nil
}

// Discard drops an unfinished document and removes its temporary file.
// It is a no-op after Finalize.
func (d *DestinationDocument) Discard() {
	if d.done {
		return
	}
	d.done = true
	d.removeTmp()
}

func (d *DestinationDocument) removeTmp() {
	d.tmp.Close() // may already be closed
	os.Remove(d.tmp.Name())
}

func templateKey(path string, page int) string {
	return fmt.Sprintf("%s#%d", path, page)
}
