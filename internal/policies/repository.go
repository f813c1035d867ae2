package policies

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/sedam/pkg/pagination"
	"github.com/JaimeStill/sedam/pkg/query"
	"github.com/JaimeStill/sedam/pkg/repository"
	"github.com/JaimeStill/sedam/pkg/storage"
)

type repo struct {
	db         *sql.DB
	storage    storage.System
	logger     *slog.Logger
	pagination pagination.Config
}

func New(db *sql.DB, store storage.System, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		storage:    store,
		logger:     logger.With("system", "policies"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Policy], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Title", "Category", "Description")
	filters.Apply(qb)
	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count policies: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanPolicy)
	if err != nil {
		return nil, fmt.Errorf("query policies: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Policy, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	p, err := repository.QueryOne(ctx, r.db, q, args, scanPolicy)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Policy, error) {
	if err := cmd.normalize(); err != nil {
		return nil, err
	}

	q := `INSERT INTO policies(title, category, target_audience, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + columns

	p, err := repository.QueryOne(ctx, r.db, q,
		[]any{cmd.Title, cmd.Category, cmd.TargetAudience, cmd.Description, StatusDraft},
		scanPolicy)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("policy created", "id", p.ID, "title", p.Title, "audience", p.TargetAudience)
	return &p, nil
}

func (r *repo) UpdateStatus(ctx context.Context, id int64, status Status) (*Policy, error) {
	if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}

	p, err := repository.QueryOne(ctx, r.db,
		"UPDATE policies SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING "+columns,
		[]any{status, id}, scanPolicy)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("policy status updated", "id", p.ID, "status", p.Status)
	return &p, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	keys, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) ([]string, error) {
		keys, err := repository.QueryMany(ctx, tx,
			"SELECT storage_key FROM media WHERE policy_id = $1",
			[]any{id}, scanKey)
		if err != nil {
			return nil, fmt.Errorf("collect media keys: %w", err)
		}

		if err := repository.ExecExpectOne(ctx, tx, "DELETE FROM policies WHERE id = $1", id); err != nil {
			return nil, err
		}
		return keys, nil
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	for _, key := range keys {
		if err := r.storage.Delete(ctx, key); err != nil {
			r.logger.Warn("media blob not removed", "policy_id", id, "key", key, "error", err)
		}
	}

	r.logger.Info("policy deleted", "id", id, "media", len(keys))
	return nil
}

func scanKey(s repository.Scanner) (string, error) {
	var key string
	err := s.Scan(&key)
	return key, err
}
