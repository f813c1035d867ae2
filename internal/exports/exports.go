// Package exports assembles a policy's stored artifacts into the report PDF
// and the download archive.
package exports

import (
	"fmt"

	"github.com/JaimeStill/sedam/internal/analysis"
)

const (
	ContentTypePDF = "application/pdf"
	ContentTypeZIP = "application/zip"
)

// Artifact is a rendered export ready for download. Pages is zero when the
// page count could not be read.
type Artifact struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Pages       int    `json:"pages,omitempty"`
	Data        []byte `json:"-"`
}

func reportFilename(policyID int64) string {
	return fmt.Sprintf("policy_report_%d.pdf", policyID)
}

func archiveFilename(policyID int64) string {
	return fmt.Sprintf("policy_package_%d.zip", policyID)
}

// VideoTexts flattens prompt sets into labelled texts, three per set in
// documentary, cinematic, modern dynamic order.
func VideoTexts(sets []analysis.VideoPromptSet) []string {
	texts := make([]string, 0, len(sets)*3)
	for i, s := range sets {
		n := i + 1
		texts = append(texts,
			fmt.Sprintf("[Set %d - Documentary]\n%s", n, s.Documentary),
			fmt.Sprintf("[Set %d - Cinematic]\n%s", n, s.Cinematic),
			fmt.Sprintf("[Set %d - Modern dynamic]\n%s", n, s.ModernDynamic),
		)
	}
	return texts
}
