package contents

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/sedam/internal/analysis"
	"github.com/JaimeStill/sedam/pkg/pagination"
)

type System interface {
	Handler() *Handler

	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Content], error)
	Find(ctx context.Context, id uuid.UUID) (*Content, error)
	// Latest returns the newest content of kind for a policy.
	Latest(ctx context.Context, policyID int64, kind ContentType) (*Content, error)
	// ListByPolicy returns a policy's contents newest first. A nil kind
	// returns every type.
	ListByPolicy(ctx context.Context, policyID int64, kind *ContentType) ([]Content, error)

	Analyze(ctx context.Context, policyID int64, cmd AnalyzeCommand) (*Content, error)
	GenerateVideoPrompts(ctx context.Context, policyID int64) (*Content, error)

	// LatestAnalysis returns nil without error when the policy has never
	// been analyzed.
	LatestAnalysis(ctx context.Context, policyID int64) (*analysis.Analysis, error)
	// VideoPromptSets returns every stored set, oldest first.
	VideoPromptSets(ctx context.Context, policyID int64) ([]analysis.VideoPromptSet, error)
}
