// Package archive packages a policy's exported artifacts into a ZIP file with
// a fixed layout.
package archive

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"
)

const (
	ReportName   = "report.pdf"
	PolicyName   = "policy_info.json"
	AnalysisName = "analysis_full.json"
	ReadmeName   = "README.txt"
	ImagesDir    = "images/"
	PromptsDir   = "video_prompts/"
)

// ErrBuild indicates the archive could not be written.
var ErrBuild = errors.New("archive build failed")

// modified is stamped on every entry so identical bundles produce identical archives.
var modified = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Bundle is everything that goes into an export archive.
// Policy and Analysis are serialised as indented JSON; a nil Analysis is
// written as an empty object.
type Bundle struct {
	Title        string
	CreatedAt    string
	Policy       any
	Analysis     any
	Report       []byte
	Images       [][]byte
	VideoPrompts []string
}

type entry struct {
	name string
	data []byte
}

// Build writes b as a ZIP archive. Entries appear in a fixed order: the
// report, policy and analysis JSON, images, video prompts, then the README.
func Build(b Bundle) ([]byte, error) {
	entries, err := b.entries()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuild, err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, e := range entries {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     e.name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrBuild, e.name, err)
		}
		if _, err := w.Write(e.data); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrBuild, e.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuild, err)
	}
	return buf.Bytes(), nil
}

// Names lists the entry names Build would write for b, in order.
func (b Bundle) Names() []string {
	var names []string
	if len(b.Report) > 0 {
		names = append(names, ReportName)
	}
	names = append(names, PolicyName, AnalysisName)
	for i := range b.Images {
		names = append(names, imageName(i+1))
	}
	for i := range b.VideoPrompts {
		names = append(names, promptName(i+1))
	}
	return append(names, ReadmeName)
}

func (b Bundle) entries() ([]entry, error) {
	policy, err := marshal(b.Policy)
	if err != nil {
		return nil, fmt.Errorf("policy: %w", err)
	}

	analysis := b.Analysis
	if analysis == nil {
		analysis = struct{}{}
	}
	analysisJSON, err := marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}

	var entries []entry
	if len(b.Report) > 0 {
		entries = append(entries, entry{ReportName, b.Report})
	}
	entries = append(entries,
		entry{PolicyName, policy},
		entry{AnalysisName, analysisJSON},
	)
	for i, img := range b.Images {
		entries = append(entries, entry{imageName(i + 1), img})
	}
	for i, p := range b.VideoPrompts {
		entries = append(entries, entry{promptName(i + 1), []byte(p)})
	}
	entries = append(entries, entry{ReadmeName, []byte(b.readme())})

	return entries, nil
}

func (b Bundle) readme() string {
	var sb strings.Builder

	sb.WriteString("Sedam Policy Program - Output Package\n\n")
	fmt.Fprintf(&sb, "Policy title: %s\n", b.Title)
	fmt.Fprintf(&sb, "Created: %s\n\n", b.CreatedAt)

	sb.WriteString("Contents:\n")
	if len(b.Report) > 0 {
		sb.WriteString("- report.pdf: full report with analysis sections, images, and video prompts\n")
	}
	sb.WriteString("- policy_info.json: policy details\n")
	sb.WriteString("- analysis_full.json: full analysis result (JSON)\n")
	if len(b.Images) > 0 {
		sb.WriteString("- images/: generated images\n")
	}
	if len(b.VideoPrompts) > 0 {
		sb.WriteString("- video_prompts/: video production prompts\n")
	}

	sb.WriteString("\nUsage:\n")
	sb.WriteString("1. Open report.pdf to review the full content (recommended)\n")
	sb.WriteString("2. Open analysis_full.json to inspect the raw analysis\n")
	sb.WriteString("3. Use the files in images/ for publication\n")
	sb.WriteString("4. Paste the prompts in video_prompts/ into Sora, Runway, Pika, or a similar tool\n")

	return sb.String()
}

// marshal writes v as two-space indented JSON without HTML escaping so
// non-ASCII text stays readable.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func imageName(n int) string {
	return fmt.Sprintf("%simage_%d.png", ImagesDir, n)
}

func promptName(n int) string {
	return fmt.Sprintf("%sprompt_%d.txt", PromptsDir, n)
}
