package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/sedam/internal/report"
	"github.com/JaimeStill/sedam/pkg/envvar"
)

// ReportConfig tunes the PDF renderer. FontPath names a TrueType font with
// Hangul coverage; without it the renderer falls back to a core font.
type ReportConfig struct {
	FontPath string              `toml:"font_path"`
	Locale   string              `toml:"locale"`
	Caps     report.CapOverrides `toml:"caps"`
}

func (c *ReportConfig) Finalize() error {
	if c.Locale == "" {
		c.Locale = string(report.LocaleEnglish)
	}

	envvar.String(&c.FontPath, "SEDAM_REPORT_FONT_PATH")
	envvar.String(&c.Locale, "SEDAM_REPORT_LOCALE")

	switch report.Locale(c.Locale) {
	case report.LocaleEnglish, report.LocaleKorean:
	default:
		return fmt.Errorf("unknown locale %q", c.Locale)
	}
	if c.FontPath != "" {
		if _, err := os.Stat(c.FontPath); err != nil {
			return fmt.Errorf("font_path: %w", err)
		}
	}
	return c.Layout().Validate()
}

// Layout is the default layout with configured caps applied.
func (c *ReportConfig) Layout() report.Layout {
	l := report.DefaultLayout()
	l.Caps.Apply(c.Caps)
	return l
}

// Options assembles renderer options, reading the font file when set.
func (c *ReportConfig) Options() ([]report.Option, error) {
	opts := []report.Option{
		report.WithLayout(c.Layout()),
		report.WithLabels(report.LabelsFor(report.Locale(c.Locale))),
	}
	if c.FontPath != "" {
		ttf, err := os.ReadFile(c.FontPath)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		opts = append(opts, report.WithFont(ttf))
	}
	return opts, nil
}

func (c *ReportConfig) Merge(overlay *ReportConfig) {
	if overlay.FontPath != "" {
		c.FontPath = overlay.FontPath
	}
	if overlay.Locale != "" {
		c.Locale = overlay.Locale
	}
	c.Caps.Merge(overlay.Caps)
}
