package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/sedam/internal/analysis"
	"github.com/JaimeStill/sedam/internal/config"
	"github.com/JaimeStill/sedam/internal/report"
)

// inputFlags are shared by every command that renders a report.
type inputFlags struct {
	policy   string
	analysis string
	images   []string
	videos   []string
	out      string
	font     string
	locale   string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.policy, "policy", "", "policy JSON file (title, category, target_audience, created_at)")
	fs.StringVar(&f.analysis, "analysis", "", "analysis JSON file; omit for a cover-only report")
	fs.StringArrayVar(&f.images, "image", nil, "image file to include, repeatable")
	fs.StringArrayVar(&f.videos, "video", nil, "text file holding one video prompt, repeatable")
	fs.StringVarP(&f.out, "out", "o", "", "output file")
	fs.StringVar(&f.font, "font", "", "TrueType font with Hangul coverage (default SEDAM_REPORT_FONT_PATH)")
	fs.StringVar(&f.locale, "locale", "", "label locale: en or ko (default SEDAM_REPORT_LOCALE or en)")

	_ = cmd.MarkFlagRequired("policy")
	_ = cmd.MarkFlagRequired("out")
}

// inputs holds the decoded files. Policy keeps every field of the source
// document for the archive's policy_info.json.
type inputs struct {
	subject  report.Subject
	policy   map[string]any
	analysis *analysis.Analysis
	images   [][]byte
	videos   []string
}

func (f *inputFlags) load() (*inputs, error) {
	data, err := os.ReadFile(f.policy)
	if err != nil {
		return nil, fmt.Errorf("read policy: %w", err)
	}

	in := &inputs{}
	if err := json.Unmarshal(data, &in.subject); err != nil {
		return nil, fmt.Errorf("decode policy: %w", err)
	}
	if err := json.Unmarshal(data, &in.policy); err != nil {
		return nil, fmt.Errorf("decode policy: %w", err)
	}

	if f.analysis != "" {
		data, err := os.ReadFile(f.analysis)
		if err != nil {
			return nil, fmt.Errorf("read analysis: %w", err)
		}
		if in.analysis, err = analysis.Decode(data); err != nil {
			return nil, fmt.Errorf("decode analysis: %w", err)
		}
	}

	for _, path := range f.images {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read image: %w", err)
		}
		in.images = append(in.images, data)
	}

	for _, path := range f.videos {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read video prompt: %w", err)
		}
		in.videos = append(in.videos, string(data))
	}

	return in, nil
}

func (in *inputs) document() report.Document {
	return report.Document{
		Subject:      in.subject,
		Analysis:     in.analysis,
		Images:       in.images,
		VideoPrompts: in.videos,
	}
}

// renderer applies flags over the SEDAM_REPORT_ environment settings.
func (f *inputFlags) renderer(logger *slog.Logger) (*report.Renderer, error) {
	var cfg config.ReportConfig
	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("report config: %w", err)
	}
	cfg.Merge(&config.ReportConfig{FontPath: f.font, Locale: f.locale})

	switch report.Locale(cfg.Locale) {
	case report.LocaleEnglish, report.LocaleKorean:
	default:
		return nil, fmt.Errorf("unknown locale %q", cfg.Locale)
	}

	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return report.New(append(opts, report.WithLogger(logger))...), nil
}
