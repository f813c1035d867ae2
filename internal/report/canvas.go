package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// Canvas is the drawing surface the renderer lays pages out on.
// Coordinates are in points with the origin at the bottom-left corner of
// the current page; Image places its box by the lower-left corner.
type Canvas interface {
	NewPage()
	SetFont(size float64)
	Text(x, y float64, s string)
	Image(jpeg []byte, x, y, w, h float64)
	// Err reports the first failure of any drawing call.
	Err() error
}

const (
	embeddedFamily = "body"
	coreFamily     = "Helvetica"
)

// documentDate is stamped as the creation and modification date so that
// identical input renders identical bytes.
var documentDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

type pdfCanvas struct {
	pdf       *fpdf.Fpdf
	height    float64
	family    string
	translate func(string) string
	images    int
}

// newPDFCanvas creates an fpdf-backed canvas sized to layout. When font holds
// a TrueType face it is embedded for full Unicode coverage; otherwise text is
// set in the core Helvetica face with cp1252 translation. embedded reports
// which path was taken.
func newPDFCanvas(layout Layout, font []byte) (c *pdfCanvas, embedded bool) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: layout.PageWidth, Ht: layout.PageHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(true)
	pdf.SetCreationDate(documentDate)
	pdf.SetModificationDate(documentDate)
	pdf.SetCatalogSort(true)
	pdf.SetProducer("sedam", true)

	c = &pdfCanvas{
		pdf:    pdf,
		height: layout.PageHeight,
		family: coreFamily,
	}

	if isTrueType(font) {
		pdf.AddUTF8FontFromBytes(embeddedFamily, "", font)
		if pdf.Ok() {
			c.family = embeddedFamily
			c.translate = func(s string) string { return s }
			return c, true
		}
		pdf.ClearError()
	}

	c.translate = pdf.UnicodeTranslatorFromDescriptor("")
	return c, false
}

func (c *pdfCanvas) SetTitle(title string) {
	c.pdf.SetTitle(title, true)
}

func (c *pdfCanvas) NewPage() {
	c.pdf.AddPage()
}

func (c *pdfCanvas) SetFont(size float64) {
	c.pdf.SetFont(c.family, "", size)
}

func (c *pdfCanvas) Text(x, y float64, s string) {
	c.pdf.Text(x, c.height-y, c.translate(s))
}

func (c *pdfCanvas) Image(jpeg []byte, x, y, w, h float64) {
	c.images++
	name := fmt.Sprintf("image-%d", c.images)
	opts := fpdf.ImageOptions{ImageType: "JPG"}

	c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(jpeg))
	c.pdf.ImageOptions(name, x, c.height-(y+h), w, h, false, opts, 0, "")
}

func (c *pdfCanvas) Err() error {
	return c.pdf.Error()
}

func (c *pdfCanvas) PageCount() int {
	return c.pdf.PageCount()
}

func (c *pdfCanvas) output(w io.Writer) error {
	return c.pdf.Output(w)
}

// isTrueType checks the sfnt version tag of a TrueType outline font.
// CFF-flavoured OpenType files are not supported by the embedder.
func isTrueType(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	tag := string(data[:4])
	return tag == "\x00\x01\x00\x00" || tag == "true"
}
