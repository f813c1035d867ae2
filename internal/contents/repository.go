package contents

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/sedam/internal/analysis"
	"github.com/JaimeStill/sedam/internal/policies"
	"github.com/JaimeStill/sedam/internal/workflow"
	"github.com/JaimeStill/sedam/pkg/pagination"
	"github.com/JaimeStill/sedam/pkg/query"
	"github.com/JaimeStill/sedam/pkg/repository"
)

type repo struct {
	db         *sql.DB
	policies   policies.System
	runtime    *workflow.Runtime
	logger     *slog.Logger
	pagination pagination.Config
}

func New(
	db *sql.DB,
	policySys policies.System,
	rt *workflow.Runtime,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		policies:   policySys,
		runtime:    rt,
		logger:     logger.With("system", "contents"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Content], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, defaultSort)
	filters.Apply(qb)
	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count contents: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanContent)
	if err != nil {
		return nil, fmt.Errorf("query contents: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Content, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanContent)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) Latest(ctx context.Context, policyID int64, kind ContentType) (*Content, error) {
	q, args := Filters{PolicyID: &policyID, ContentType: &kind}.
		Apply(query.NewBuilder(projection, defaultSort)).
		BuildFirst()

	c, err := repository.QueryOne(ctx, r.db, q, args, scanContent)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) ListByPolicy(ctx context.Context, policyID int64, kind *ContentType) ([]Content, error) {
	return r.listByPolicy(ctx, policyID, kind, defaultSort)
}

func (r *repo) listByPolicy(ctx context.Context, policyID int64, kind *ContentType, order query.SortField) ([]Content, error) {
	q, args := Filters{PolicyID: &policyID, ContentType: kind}.
		Apply(query.NewBuilder(projection, order)).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanContent)
	if err != nil {
		return nil, fmt.Errorf("query policy contents: %w", err)
	}
	return items, nil
}

func (r *repo) Analyze(ctx context.Context, policyID int64, cmd AnalyzeCommand) (*Content, error) {
	p, err := r.policies.Find(ctx, policyID)
	if err != nil {
		return nil, err
	}

	req := workflow.Request{
		Title:          p.Title,
		Category:       p.Category,
		TargetAudience: p.TargetAudience,
		Description:    p.Description,
		Keywords:       cmd.Keywords,
		Constraints:    cmd.Constraints,
		Model:          cmd.Model,
	}
	if a, ok := policies.FindAudience(p.TargetAudience); ok {
		req.TargetAudience = a.Label
		req.AudienceNotes = a.Notes()
	}

	result, err := workflow.Analyze(ctx, r.runtime, req)
	if err != nil {
		return nil, err
	}

	metadata := map[string]any{
		"model":      result.Model,
		"provider":   r.runtime.Agent.Provider,
		"retried":    result.Retried,
		"raw_length": len(result.Raw),
		"sections":   result.Analysis.SectionCount(),
	}

	c, err := r.store(ctx, policyID, TypeAnalysis, result.Analysis, metadata, policies.StatusAnalyzed)
	if err != nil {
		return nil, err
	}

	r.logger.InfoContext(ctx, "analysis stored", "policy_id", policyID, "content_id", c.ID, "retried", result.Retried)
	return c, nil
}

func (r *repo) GenerateVideoPrompts(ctx context.Context, policyID int64) (*Content, error) {
	a, err := r.LatestAnalysis(ctx, policyID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNoAnalysis
	}
	if a.ContentBriefs == nil || a.ContentBriefs.VideoBrief == nil {
		return nil, fmt.Errorf("%w: video_brief", workflow.ErrMissingBrief)
	}

	set := workflow.VideoPrompts(a.ContentBriefs.VideoBrief)
	metadata := map[string]any{"styles": len(set.Texts())}

	c, err := r.store(ctx, policyID, TypeVideoPrompts, set, metadata, "")
	if err != nil {
		return nil, err
	}

	r.logger.InfoContext(ctx, "video prompts stored", "policy_id", policyID, "content_id", c.ID)
	return c, nil
}

func (r *repo) LatestAnalysis(ctx context.Context, policyID int64) (*analysis.Analysis, error) {
	c, err := r.Latest(ctx, policyID, TypeAnalysis)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	a, err := analysis.Decode(c.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, c.ID, err)
	}
	return a, nil
}

func (r *repo) VideoPromptSets(ctx context.Context, policyID int64) ([]analysis.VideoPromptSet, error) {
	kind := TypeVideoPrompts
	items, err := r.listByPolicy(ctx, policyID, &kind, oldestFirst)
	if err != nil {
		return nil, err
	}

	sets := make([]analysis.VideoPromptSet, 0, len(items))
	for _, c := range items {
		var set analysis.VideoPromptSet
		if err := json.Unmarshal(c.Data, &set); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, c.ID, err)
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// store inserts the content row and, when status is set, advances the
// policy in the same transaction.
func (r *repo) store(
	ctx context.Context,
	policyID int64,
	kind ContentType,
	data any,
	metadata map[string]any,
	status policies.Status,
) (*Content, error) {
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", kind, err)
	}
	metaJSON, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Content, error) {
		c, err := repository.QueryOne(ctx, tx,
			`INSERT INTO contents(id, policy_id, content_type, data, metadata)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+columns,
			[]any{uuid.New(), policyID, kind, dataJSON, metaJSON},
			scanContent)
		if err != nil {
			return Content{}, err
		}

		if status != "" {
			if err := repository.ExecExpectOne(ctx, tx,
				"UPDATE policies SET status = $1, updated_at = NOW() WHERE id = $2",
				status, policyID,
			); err != nil {
				return Content{}, err
			}
		}
		return c, nil
	})
	if err != nil {
		return nil, repository.MapError(err, policies.ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}
