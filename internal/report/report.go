// Package report renders a policy, its analysis, generated images, and video
// prompts into a paginated A4 PDF.
//
// Layout is a single downward-moving cursor. Headings and paragraphs break to
// a new page when the cursor drops below a threshold, and every list, string,
// and asset is capped so a document never grows without bound. Missing data
// is skipped silently; only a failure of the drawing surface is an error.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/JaimeStill/sedam/internal/analysis"
)

// ErrRender indicates the drawing surface failed and no document was produced.
var ErrRender = errors.New("report render failed")

// Subject is the policy snapshot printed on the cover page.
type Subject struct {
	Title          string `json:"title"`
	Category       string `json:"category"`
	TargetAudience string `json:"target_audience"`
	CreatedAt      string `json:"created_at"`
}

// Document is the complete input to a render.
// A nil or section-less Analysis produces a cover-only document.
type Document struct {
	Subject      Subject
	Analysis     *analysis.Analysis
	Images       [][]byte
	VideoPrompts []string
}

// Renderer is immutable once built and safe for concurrent use; every call
// owns its own cursor and page buffer.
type Renderer struct {
	layout Layout
	labels Labels
	font   []byte
	logger *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

func WithLayout(l Layout) Option {
	return func(r *Renderer) { r.layout = l }
}

func WithLabels(l Labels) Option {
	return func(r *Renderer) { r.labels = l }
}

// WithFont embeds a TrueType face. Without one, text is set in Helvetica and
// characters outside cp1252 are not representable.
func WithFont(ttf []byte) Option {
	return func(r *Renderer) { r.font = ttf }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// New creates a Renderer with the default A4 layout and English labels.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		layout: DefaultLayout(),
		labels: EnglishLabels(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Layout returns the renderer's layout.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Render lays out doc and returns the encoded PDF.
func (r *Renderer) Render(doc Document) ([]byte, error) {
	c, embedded := newPDFCanvas(r.layout, r.font)
	if !embedded && len(r.font) > 0 {
		r.logger.Warn("font could not be embedded, falling back to core font", "family", coreFamily)
	}
	c.SetTitle(doc.Subject.Title)

	if err := r.Draw(c, doc); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := c.output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// Draw lays out doc onto c. It is exported so alternate surfaces can be
// driven with the same pagination.
func (r *Renderer) Draw(c Canvas, doc Document) error {
	w := &writer{
		c:      c,
		l:      r.layout,
		labels: r.labels,
		logger: r.logger,
	}

	w.newPage()
	w.cover(doc.Subject)

	if !doc.Analysis.Empty() {
		w.newPage()
		w.analysis(doc.Analysis)
		w.images(doc.Images)
		w.videoPrompts(doc.VideoPrompts)
	}

	if err := c.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}

type writer struct {
	c      Canvas
	l      Layout
	labels Labels
	logger *slog.Logger
	y      float64
}

func (w *writer) newPage() {
	w.c.NewPage()
	w.y = w.l.Top()
}

func (w *writer) heading(text string, size float64) {
	if w.y < w.l.HeadingBreak {
		w.newPage()
	}
	w.c.SetFont(size)
	w.c.Text(w.l.LeftMargin, w.y, clip(text, w.l.HeadingMaxChars))
	w.y -= size + w.l.HeadingGap
}

func (w *writer) paragraph(text string, size, indent float64) {
	if w.y < w.l.ParagraphBreak {
		w.newPage()
	}
	w.c.SetFont(size)

	lines := chunk(text, w.l.lineChars(indent), w.l.ParagraphMaxChars, w.l.ParagraphMaxLines)
	for _, line := range lines {
		if w.y < w.l.LineBreak {
			w.newPage()
			w.c.SetFont(size)
		}
		w.c.Text(indent, w.y, line)
		w.y -= size + w.l.LineGap
	}
	w.y -= w.l.ParagraphGap
}

// section starts a new page when too little room remains to keep the
// heading with its first line.
func (w *writer) section(title string, body func()) {
	if w.y < w.l.SectionBreak {
		w.newPage()
	}
	w.heading(title, w.l.SectionSize)
	body()
	w.y -= w.l.SectionGap
}

func (w *writer) label(text string) {
	w.paragraph(text, w.l.LabelSize, w.l.BodyIndent)
}

func (w *writer) body(text string) {
	w.paragraph(text, w.l.BodySize, w.l.BodyIndent)
}

func (w *writer) item(text string) {
	w.paragraph(text, w.l.BodySize, w.l.ItemIndent)
}

func (w *writer) detail(text string) {
	w.paragraph(text, w.l.DetailSize, w.l.DetailIndent)
}

func (w *writer) cover(s Subject) {
	l := w.l

	w.c.SetFont(l.CoverTitleSize)
	w.c.Text(l.LeftMargin, w.y, w.labels.ReportTitle)
	w.y -= l.CoverTitleGap

	w.c.SetFont(l.CoverSubjectSize)
	w.c.Text(l.LeftMargin, w.y, w.labels.Title+clip(s.Title, l.CoverTitleChars))
	w.y -= l.CoverSubjectGap

	w.c.SetFont(l.LabelSize)
	w.c.Text(l.LeftMargin, w.y, w.labels.Category+clip(s.Category, l.CoverCategoryChars))
	w.y -= l.CoverMetaGap
	w.c.Text(l.LeftMargin, w.y, w.labels.Audience+s.TargetAudience)
	w.y -= l.CoverMetaGap
	w.c.Text(l.LeftMargin, w.y, w.labels.Created+s.CreatedAt)
}

func (w *writer) images(images [][]byte) {
	if len(images) == 0 {
		return
	}

	l := w.l
	if w.y < l.SectionBreak {
		w.newPage()
	}
	w.heading(w.labels.Images, l.SectionSize)

	for i, data := range capped(images, l.Caps.Images) {
		img, err := prepareImage(data, l)
		if err != nil {
			w.logger.Warn("skipping image", "index", i+1, "error", err)
			continue
		}

		if w.y < l.ImageBreak {
			w.newPage()
		}

		dx, dy, dw, dh := fit(img.width, img.height, l.ImageBoxWidth, l.ImageBoxHeight)
		w.c.Image(img.jpeg, l.LeftMargin+dx, w.y-l.ImageBoxHeight+dy, dw, dh)
		w.y -= l.ImageAdvance

		w.c.SetFont(l.BodySize)
		w.c.Text(l.LeftMargin, w.y, w.labels.imageCaption(i+1))
		w.y -= l.ImageCaptionGap
	}
}

func (w *writer) videoPrompts(prompts []string) {
	if len(prompts) == 0 {
		return
	}

	l := w.l
	w.newPage()
	w.heading(w.labels.VideoPrompts, l.SectionSize)

	for i, p := range capped(prompts, l.Caps.VideoPrompts) {
		if w.y < l.VideoBreak {
			w.newPage()
		}
		w.paragraph(w.labels.videoLabel(i+1), l.VideoLabelSize, l.BodyIndent)
		w.paragraph(clip(p, l.VideoMaxChars), l.VideoTextSize, l.ItemIndent)
		w.y -= l.VideoEntryGap
	}
}

func capped[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
