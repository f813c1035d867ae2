package policies

import (
	"context"

	"github.com/JaimeStill/sedam/pkg/pagination"
)

type System interface {
	Handler() *Handler

	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Policy], error)
	Find(ctx context.Context, id int64) (*Policy, error)
	Create(ctx context.Context, cmd CreateCommand) (*Policy, error)
	UpdateStatus(ctx context.Context, id int64, status Status) (*Policy, error)
	// Delete removes the policy with its contents and media. Media blobs are
	// removed after the rows; a blob failure is logged, not returned.
	Delete(ctx context.Context, id int64) error
}
