package report

import (
	"errors"
	"fmt"
)

// Caps bounds how many items of each list are rendered. Items past a cap are
// dropped without notice.
type Caps struct {
	KeyStrategies    int
	ExpectedOutcomes int
	ActionItems      int
	Risks            int
	KeyMessages      int
	Channels         int
	SocialPosts      int
	KPIs             int
	SuccessCriteria  int
	Stakeholders     int
	Objections       int
	Images           int
	VideoPrompts     int
}

// Layout holds every page geometry value, break threshold, truncation limit,
// and font size the renderer uses. Vertical positions are measured in points
// from the bottom edge of the page.
type Layout struct {
	PageWidth  float64
	PageHeight float64
	TopMargin  float64
	LeftMargin float64

	HeadingBreak    float64
	HeadingGap      float64
	HeadingMaxChars int

	ParagraphBreak    float64
	LineBreak         float64
	LineGap           float64
	ParagraphGap      float64
	ParagraphMaxChars int
	ParagraphMaxLines int
	BodyLineChars     int
	IndentLineChars   int

	BodyIndent   float64
	ItemIndent   float64
	DetailIndent float64

	SectionBreak float64
	SectionGap   float64

	SectionSize float64
	LabelSize   float64
	BodySize    float64
	DetailSize  float64

	CoverTitleSize     float64
	CoverTitleGap      float64
	CoverSubjectSize   float64
	CoverSubjectGap    float64
	CoverMetaGap       float64
	CoverTitleChars    int
	CoverCategoryChars int

	ImageBreak      float64
	ImageBoxWidth   float64
	ImageBoxHeight  float64
	ImageAdvance    float64
	ImageCaptionGap float64
	ImageMaxPixels  int
	// ImageMaxSourcePixels bounds width×height read from an image header
	// before the image is decoded.
	ImageMaxSourcePixels int
	ImageJPEGQuality     int

	VideoBreak     float64
	VideoMaxChars  int
	VideoEntryGap  float64
	VideoLabelSize float64
	VideoTextSize  float64

	Caps Caps
}

// DefaultCaps returns the standard list caps.
func DefaultCaps() Caps {
	return Caps{
		KeyStrategies:    8,
		ExpectedOutcomes: 5,
		ActionItems:      8,
		Risks:            5,
		KeyMessages:      8,
		Channels:         5,
		SocialPosts:      5,
		KPIs:             8,
		SuccessCriteria:  5,
		Stakeholders:     6,
		Objections:       4,
		Images:           4,
		VideoPrompts:     9,
	}
}

// DefaultLayout returns the A4 layout.
func DefaultLayout() Layout {
	return Layout{
		PageWidth:  595.28,
		PageHeight: 841.89,
		TopMargin:  50,
		LeftMargin: 50,

		HeadingBreak:    100,
		HeadingGap:      15,
		HeadingMaxChars: 90,

		ParagraphBreak:    80,
		LineBreak:         60,
		LineGap:           4,
		ParagraphGap:      5,
		ParagraphMaxChars: 400,
		ParagraphMaxLines: 10,
		BodyLineChars:     85,
		IndentLineChars:   90,

		BodyIndent:   60,
		ItemIndent:   70,
		DetailIndent: 75,

		SectionBreak: 150,
		SectionGap:   15,

		SectionSize: 16,
		LabelSize:   11,
		BodySize:    10,
		DetailSize:  9,

		CoverTitleSize:     24,
		CoverTitleGap:      50,
		CoverSubjectSize:   14,
		CoverSubjectGap:    25,
		CoverMetaGap:       20,
		CoverTitleChars:    50,
		CoverCategoryChars: 60,

		ImageBreak:           250,
		ImageBoxWidth:        450,
		ImageBoxHeight:       200,
		ImageAdvance:         220,
		ImageCaptionGap:      30,
		ImageMaxPixels:       1600,
		ImageMaxSourcePixels: 40_000_000,
		ImageJPEGQuality:     90,

		VideoBreak:     150,
		VideoMaxChars:  600,
		VideoEntryGap:  15,
		VideoLabelSize: 11,
		VideoTextSize:  9,

		Caps: DefaultCaps(),
	}
}

// Top returns the cursor position at the top of a fresh page.
func (l Layout) Top() float64 {
	return l.PageHeight - l.TopMargin
}

// lineChars returns the wrap width for a paragraph drawn at indent.
// Body-level text wraps narrower than indented list text.
func (l Layout) lineChars(indent float64) int {
	if indent == l.BodyIndent {
		return l.BodyLineChars
	}
	return l.IndentLineChars
}

// Validate rejects layouts with missing geometry or non-positive limits.
func (l Layout) Validate() error {
	var errs []error

	positive := map[string]float64{
		"page_width":       l.PageWidth,
		"page_height":      l.PageHeight,
		"image_box_width":  l.ImageBoxWidth,
		"image_box_height": l.ImageBoxHeight,
		"section_size":     l.SectionSize,
		"body_size":        l.BodySize,
	}
	for name, v := range positive {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", name))
		}
	}

	counts := map[string]int{
		"heading_max_chars":   l.HeadingMaxChars,
		"paragraph_max_chars": l.ParagraphMaxChars,
		"paragraph_max_lines": l.ParagraphMaxLines,
		"body_line_chars":     l.BodyLineChars,
		"indent_line_chars":   l.IndentLineChars,
		"image_max_pixels":    l.ImageMaxPixels,
		"image_max_source_px": l.ImageMaxSourcePixels,
	}
	for name, v := range counts {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", name))
		}
	}

	if l.TopMargin >= l.PageHeight {
		errs = append(errs, fmt.Errorf("top_margin must be less than page_height"))
	}
	if l.ImageJPEGQuality < 1 || l.ImageJPEGQuality > 100 {
		errs = append(errs, fmt.Errorf("image_jpeg_quality must be within 1-100"))
	}

	if err := l.Caps.validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (c Caps) validate() error {
	fields := map[string]int{
		"key_strategies":    c.KeyStrategies,
		"expected_outcomes": c.ExpectedOutcomes,
		"action_items":      c.ActionItems,
		"risks":             c.Risks,
		"key_messages":      c.KeyMessages,
		"channels":          c.Channels,
		"social_posts":      c.SocialPosts,
		"kpis":              c.KPIs,
		"success_criteria":  c.SuccessCriteria,
		"stakeholders":      c.Stakeholders,
		"objections":        c.Objections,
		"images":            c.Images,
		"video_prompts":     c.VideoPrompts,
	}

	var errs []error
	for name, v := range fields {
		if v < 0 {
			errs = append(errs, fmt.Errorf("caps.%s must not be negative", name))
		}
	}
	return errors.Join(errs...)
}

// CapOverrides sets individual caps. A nil field keeps the current cap, so
// an explicit zero hides that list.
type CapOverrides struct {
	KeyStrategies    *int `toml:"key_strategies"`
	ExpectedOutcomes *int `toml:"expected_outcomes"`
	ActionItems      *int `toml:"action_items"`
	Risks            *int `toml:"risks"`
	KeyMessages      *int `toml:"key_messages"`
	Channels         *int `toml:"channels"`
	SocialPosts      *int `toml:"social_posts"`
	KPIs             *int `toml:"kpis"`
	SuccessCriteria  *int `toml:"success_criteria"`
	Stakeholders     *int `toml:"stakeholders"`
	Objections       *int `toml:"objections"`
	Images           *int `toml:"images"`
	VideoPrompts     *int `toml:"video_prompts"`
}

func (o *CapOverrides) fields() []**int {
	return []**int{
		&o.KeyStrategies, &o.ExpectedOutcomes, &o.ActionItems, &o.Risks,
		&o.KeyMessages, &o.Channels, &o.SocialPosts, &o.KPIs,
		&o.SuccessCriteria, &o.Stakeholders, &o.Objections, &o.Images,
		&o.VideoPrompts,
	}
}

func (c *Caps) fields() []*int {
	return []*int{
		&c.KeyStrategies, &c.ExpectedOutcomes, &c.ActionItems, &c.Risks,
		&c.KeyMessages, &c.Channels, &c.SocialPosts, &c.KPIs,
		&c.SuccessCriteria, &c.Stakeholders, &c.Objections, &c.Images,
		&c.VideoPrompts,
	}
}

// Apply sets every cap the overrides name.
func (c *Caps) Apply(o CapOverrides) {
	dst := c.fields()
	for i, v := range o.fields() {
		if *v != nil {
			*dst[i] = **v
		}
	}
}

// Merge takes every override set in overlay.
func (o *CapOverrides) Merge(overlay CapOverrides) {
	dst := o.fields()
	for i, v := range overlay.fields() {
		if *v != nil {
			*dst[i] = *v
		}
	}
}
