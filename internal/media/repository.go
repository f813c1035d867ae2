package media

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/sedam/internal/analysis"
	"github.com/JaimeStill/sedam/internal/contents"
	"github.com/JaimeStill/sedam/internal/policies"
	"github.com/JaimeStill/sedam/internal/workflow"
	"github.com/JaimeStill/sedam/pkg/pagination"
	"github.com/JaimeStill/sedam/pkg/query"
	"github.com/JaimeStill/sedam/pkg/repository"
	"github.com/JaimeStill/sedam/pkg/storage"
)

const imageContentType = "image/png"

type repo struct {
	db         *sql.DB
	storage    storage.System
	contents   contents.System
	runtime    *workflow.Runtime
	logger     *slog.Logger
	pagination pagination.Config
}

func New(
	db *sql.DB,
	store storage.System,
	contentSys contents.System,
	rt *workflow.Runtime,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		contents:   contentSys,
		runtime:    rt,
		logger:     logger.With("system", "media"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Media], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Prompt")
	filters.Apply(qb)
	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count media: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanMedia)
	if err != nil {
		return nil, fmt.Errorf("query media: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Media, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	m, err := repository.QueryOne(ctx, r.db, q, args, scanMedia)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &m, nil
}

func (r *repo) ListByPolicy(ctx context.Context, policyID int64, mediaType *string) ([]Media, error) {
	q, args := Filters{PolicyID: &policyID, MediaType: mediaType}.
		Apply(query.NewBuilder(projection, oldestFirst)).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanMedia)
	if err != nil {
		return nil, fmt.Errorf("query policy media: %w", err)
	}
	return items, nil
}

func (r *repo) Generate(ctx context.Context, policyID int64, cmd GenerateCommand) (*GenerateResult, error) {
	opts := workflow.ImageOptions{Size: cmd.Size, Quality: cmd.Quality}
	if err := opts.Normalize(); err != nil {
		return nil, err
	}

	a, err := r.contents.LatestAnalysis(ctx, policyID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, contents.ErrNoAnalysis
	}

	briefs, err := selectBriefs(a, cmd.Briefs)
	if err != nil {
		return nil, err
	}

	imagePrompts := make([]string, len(briefs))
	for i, b := range briefs {
		p, err := workflow.ImagePrompt(ctx, r.runtime, b.brief, cmd.StyleOverride)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.key, err)
		}
		imagePrompts[i] = p
	}

	batch, err := workflow.GenerateImages(ctx, r.runtime, imagePrompts, opts)
	if err != nil {
		return nil, err
	}

	pending := make([]Media, len(batch.Images))
	for i, img := range batch.Images {
		id := uuid.New()
		pending[i] = Media{
			ID:          id,
			PolicyID:    policyID,
			MediaType:   TypeImage,
			StorageKey:  storageKey(policyID, id),
			ContentType: imageContentType,
			SizeBytes:   int64(len(img.Data)),
			Prompt:      img.Prompt,
			Params: map[string]any{
				"brief":          string(briefs[img.Index].key),
				"size":           opts.Size,
				"quality":        opts.Quality,
				"model":          r.runtime.Agent.ImageModel,
				"revised_prompt": img.RevisedPrompt,
			},
		}

		if err := r.storage.Upload(ctx, pending[i].StorageKey, bytes.NewReader(img.Data), pending[i].SizeBytes, imageContentType); err != nil {
			r.removeBlobs(ctx, pending[:i])
			return nil, fmt.Errorf("upload %s: %w", pending[i].StorageKey, err)
		}
	}

	stored, err := r.insert(ctx, policyID, pending)
	if err != nil {
		r.removeBlobs(ctx, pending)
		return nil, err
	}

	result := &GenerateResult{Media: stored}
	for _, f := range batch.Failed {
		result.Failed = append(result.Failed, FailedBrief{Brief: briefs[f.Index].key, Error: f.Err.Error()})
	}

	r.logger.InfoContext(ctx, "media generated",
		"policy_id", policyID, "count", len(stored), "failed", len(result.Failed), "size", opts.Size)
	return result, nil
}

func (r *repo) insert(ctx context.Context, policyID int64, pending []Media) ([]Media, error) {
	stored, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) ([]Media, error) {
		out := make([]Media, 0, len(pending))
		for _, m := range pending {
			params, err := json.Marshal(m.Params)
			if err != nil {
				return nil, fmt.Errorf("encode params: %w", err)
			}

			row, err := repository.QueryOne(ctx, tx,
				`INSERT INTO media(id, policy_id, media_type, storage_key, content_type, size_bytes, prompt, params)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				RETURNING `+columns,
				[]any{m.ID, m.PolicyID, m.MediaType, m.StorageKey, m.ContentType, m.SizeBytes, m.Prompt, params},
				scanMedia)
			if err != nil {
				return nil, err
			}
			out = append(out, row)
		}

		if err := repository.ExecExpectOne(ctx, tx,
			"UPDATE policies SET status = $1, updated_at = NOW() WHERE id = $2",
			policies.StatusMediaReady, policyID,
		); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		return nil, repository.MapError(err, policies.ErrNotFound, ErrDuplicate)
	}
	return stored, nil
}

func (r *repo) removeBlobs(ctx context.Context, items []Media) {
	for _, m := range items {
		if err := r.storage.Delete(ctx, m.StorageKey); err != nil {
			r.logger.Warn("orphaned media blob", "key", m.StorageKey, "error", err)
		}
	}
}

func (r *repo) Download(ctx context.Context, id uuid.UUID) (*Media, *storage.Object, error) {
	m, err := r.Find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	obj, err := r.storage.Download(ctx, m.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("download %s: %w", m.StorageKey, err)
	}
	return m, obj, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	key, err := repository.QueryOne(ctx, r.db,
		"DELETE FROM media WHERE id = $1 RETURNING storage_key",
		[]any{id},
		func(s repository.Scanner) (string, error) {
			var key string
			err := s.Scan(&key)
			return key, err
		})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if err := r.storage.Delete(ctx, key); err != nil {
		r.logger.Warn("media blob not removed", "id", id, "key", key, "error", err)
	}

	r.logger.Info("media deleted", "id", id)
	return nil
}

type selectedBrief struct {
	key   analysis.BriefKey
	brief *analysis.ImageBrief
}

// selectBriefs resolves keys against the analysis in the order given, or
// every present brief when keys is empty.
func selectBriefs(a *analysis.Analysis, keys []analysis.BriefKey) ([]selectedBrief, error) {
	explicit := len(keys) > 0
	if !explicit {
		keys = analysis.BriefKeys()
	}

	var out []selectedBrief
	for _, key := range keys {
		if !isBriefKey(key) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownBrief, key)
		}
		b := a.ContentBriefs.Image(key)
		if b == nil {
			if explicit {
				return nil, fmt.Errorf("%w: %s", workflow.ErrMissingBrief, key)
			}
			continue
		}
		out = append(out, selectedBrief{key: key, brief: b})
	}

	if len(out) == 0 {
		return nil, ErrNoBriefs
	}
	return out, nil
}

func isBriefKey(key analysis.BriefKey) bool {
	for _, k := range analysis.BriefKeys() {
		if k == key {
			return true
		}
	}
	return false
}
