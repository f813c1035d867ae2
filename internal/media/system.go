package media

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/sedam/pkg/pagination"
	"github.com/JaimeStill/sedam/pkg/storage"
)

type System interface {
	Handler() *Handler

	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Media], error)
	Find(ctx context.Context, id uuid.UUID) (*Media, error)
	// ListByPolicy returns a policy's media oldest first, optionally
	// narrowed to one media type.
	ListByPolicy(ctx context.Context, policyID int64, mediaType *string) ([]Media, error)

	// Generate renders the selected image briefs of the latest analysis and
	// stores every image that rendered. Briefs whose image failed are listed
	// in the result. It fails when no image renders or storing fails.
	Generate(ctx context.Context, policyID int64, cmd GenerateCommand) (*GenerateResult, error)

	// Download opens the blob behind a media row. The caller closes Body.
	Download(ctx context.Context, id uuid.UUID) (*Media, *storage.Object, error)
	// Delete removes the row, then the blob. A blob failure is logged.
	Delete(ctx context.Context, id uuid.UUID) error
}
