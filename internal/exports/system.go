package exports

import "context"

type System interface {
	Handler() *Handler

	// Report renders the policy's PDF and marks the policy exported.
	Report(ctx context.Context, policyID int64) (*Artifact, error)
	// Archive packages the PDF with the policy's raw artifacts and marks
	// the policy exported.
	Archive(ctx context.Context, policyID int64) (*Artifact, error)
}
