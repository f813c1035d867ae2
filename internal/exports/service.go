package exports

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/sedam/internal/analysis"
	"github.com/JaimeStill/sedam/internal/archive"
	"github.com/JaimeStill/sedam/internal/contents"
	"github.com/JaimeStill/sedam/internal/media"
	"github.com/JaimeStill/sedam/internal/policies"
	"github.com/JaimeStill/sedam/internal/report"
	"github.com/JaimeStill/sedam/pkg/storage"
)

const fetchLimit = 4

type service struct {
	policies policies.System
	contents contents.System
	media    media.System
	storage  storage.System
	renderer *report.Renderer
	logger   *slog.Logger
}

func New(
	policySys policies.System,
	contentSys contents.System,
	mediaSys media.System,
	store storage.System,
	renderer *report.Renderer,
	logger *slog.Logger,
) System {
	return &service{
		policies: policySys,
		contents: contentSys,
		media:    mediaSys,
		storage:  store,
		renderer: renderer,
		logger:   logger.With("system", "exports"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// inputs is everything stored for one policy that an export draws on.
type inputs struct {
	policy   *policies.Policy
	analysis *analysis.Analysis
	images   [][]byte
	videos   []string
}

func (in inputs) document() report.Document {
	return report.Document{
		Subject:      in.policy.Subject(),
		Analysis:     in.analysis,
		Images:       in.images,
		VideoPrompts: in.videos,
	}
}

func (s *service) Report(ctx context.Context, policyID int64) (*Artifact, error) {
	in, err := s.collect(ctx, policyID)
	if err != nil {
		return nil, err
	}

	pdf, pages, err := s.render(ctx, in)
	if err != nil {
		return nil, err
	}

	s.markExported(ctx, policyID)
	s.logger.InfoContext(ctx, "report exported", "policy_id", policyID, "pages", pages, "bytes", len(pdf))

	return &Artifact{
		Filename:    reportFilename(policyID),
		ContentType: ContentTypePDF,
		Pages:       pages,
		Data:        pdf,
	}, nil
}

func (s *service) Archive(ctx context.Context, policyID int64) (*Artifact, error) {
	in, err := s.collect(ctx, policyID)
	if err != nil {
		return nil, err
	}

	pdf, pages, err := s.render(ctx, in)
	if err != nil {
		return nil, err
	}

	bundle := archive.Bundle{
		Title:        in.policy.Title,
		CreatedAt:    in.policy.Subject().CreatedAt,
		Policy:       in.policy,
		Report:       pdf,
		Images:       in.images,
		VideoPrompts: in.videos,
	}
	if in.analysis != nil {
		bundle.Analysis = in.analysis
	}

	data, err := archive.Build(bundle)
	if err != nil {
		return nil, err
	}

	s.markExported(ctx, policyID)
	s.logger.InfoContext(ctx, "archive exported", "policy_id", policyID, "entries", len(bundle.Names()), "bytes", len(data))

	return &Artifact{
		Filename:    archiveFilename(policyID),
		ContentType: ContentTypeZIP,
		Pages:       pages,
		Data:        data,
	}, nil
}

func (s *service) collect(ctx context.Context, policyID int64) (inputs, error) {
	p, err := s.policies.Find(ctx, policyID)
	if err != nil {
		return inputs{}, err
	}

	a, err := s.contents.LatestAnalysis(ctx, policyID)
	if err != nil {
		return inputs{}, fmt.Errorf("load analysis: %w", err)
	}

	sets, err := s.contents.VideoPromptSets(ctx, policyID)
	if err != nil {
		return inputs{}, fmt.Errorf("load video prompts: %w", err)
	}

	imageType := media.TypeImage
	items, err := s.media.ListByPolicy(ctx, policyID, &imageType)
	if err != nil {
		return inputs{}, fmt.Errorf("load media: %w", err)
	}

	return inputs{
		policy:   p,
		analysis: a,
		images:   s.fetchImages(ctx, items),
		videos:   VideoTexts(sets),
	}, nil
}

// fetchImages downloads blobs concurrently and keeps media order. A blob
// that cannot be read is skipped.
func (s *service) fetchImages(ctx context.Context, items []media.Media) [][]byte {
	blobs := make([][]byte, len(items))

	var g errgroup.Group
	g.SetLimit(fetchLimit)

	for i, m := range items {
		g.Go(func() error {
			data, err := storage.ReadAll(ctx, s.storage, m.StorageKey)
			if err != nil {
				s.logger.WarnContext(ctx, "image skipped", "media_id", m.ID, "key", m.StorageKey, "error", err)
				return nil
			}
			blobs[i] = data
			return nil
		})
	}
	_ = g.Wait()

	images := make([][]byte, 0, len(blobs))
	for _, b := range blobs {
		if b != nil {
			images = append(images, b)
		}
	}
	return images
}

func (s *service) render(ctx context.Context, in inputs) ([]byte, int, error) {
	pdf, err := s.renderer.Render(in.document())
	if err != nil {
		return nil, 0, err
	}

	pages, err := api.PageCount(bytes.NewReader(pdf), nil)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read report page count", "policy_id", in.policy.ID, "error", err)
		return pdf, 0, nil
	}
	return pdf, pages, nil
}

// markExported advances the policy status. The artifact is already built,
// so a failure here is logged rather than returned.
func (s *service) markExported(ctx context.Context, policyID int64) {
	if _, err := s.policies.UpdateStatus(ctx, policyID, policies.StatusExported); err != nil {
		s.logger.WarnContext(ctx, "policy status not updated", "policy_id", policyID, "error", err)
	}
}
