package workflow

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/sedam/internal/analysis"
	"github.com/JaimeStill/sedam/internal/prompts"
)

var (
	imageSizes = []string{
		openai.CreateImageSize1024x1024,
		openai.CreateImageSize1024x1792,
		openai.CreateImageSize1792x1024,
	}
	imageQualities = []string{
		openai.CreateImageQualityStandard,
		openai.CreateImageQualityHD,
	}
)

// ImageOptions are passed through to the image model. Zero values select
// 1024x1024 at standard quality.
type ImageOptions struct {
	Size    string `json:"size,omitempty"`
	Quality string `json:"quality,omitempty"`
}

func (o *ImageOptions) Normalize() error {
	if o.Size == "" {
		o.Size = openai.CreateImageSize1024x1024
	}
	if o.Quality == "" {
		o.Quality = openai.CreateImageQualityStandard
	}
	if !slices.Contains(imageSizes, o.Size) {
		return fmt.Errorf("%w: size %q", ErrInvalidOptions, o.Size)
	}
	if !slices.Contains(imageQualities, o.Quality) {
		return fmt.Errorf("%w: quality %q", ErrInvalidOptions, o.Quality)
	}
	return nil
}

type GeneratedImage struct {
	// Index is the position of Prompt in the request.
	Index         int
	Prompt        string
	RevisedPrompt string
	Data          []byte
}

type ImageFailure struct {
	Index int
	Err   error
}

// ImageBatch holds the images that rendered, in prompt order, and the
// prompts that did not.
type ImageBatch struct {
	Images []GeneratedImage
	Failed []ImageFailure
}

// ImagePrompt turns a creative brief into an image prompt. An empty
// styleOverride uses the effective image-stage instructions.
func ImagePrompt(ctx context.Context, rt *Runtime, brief *analysis.ImageBrief, styleOverride string) (string, error) {
	if brief == nil {
		return "", ErrMissingBrief
	}

	style := styleOverride
	if style == "" {
		s, err := rt.Prompts.Instructions(ctx, prompts.StageImage)
		if err != nil {
			return "", err
		}
		style = s
	}

	constraints, err := rt.Prompts.Spec(ctx, prompts.StageImage)
	if err != nil {
		return "", err
	}

	var parts []string
	add := func(label string, p *string) {
		if v, ok := analysis.Str(p); ok {
			parts = append(parts, label+v)
		}
	}
	add("", brief.Concept)
	add("Scene description: ", brief.SceneDescription)
	add("Visual style: ", brief.VisualStyle)
	parts = append(parts, style)
	add("Key message to convey: ", brief.KeyMessage)
	parts = append(parts, constraints)

	return strings.Join(parts, "\n\n"), nil
}

// GenerateImages renders one image per prompt with bounded concurrency.
// A failed prompt is recorded in the batch and the rest are kept. The call
// fails only when no image renders.
func GenerateImages(ctx context.Context, rt *Runtime, imagePrompts []string, opts ImageOptions) (*ImageBatch, error) {
	if err := opts.Normalize(); err != nil {
		return nil, err
	}

	images := make([]GeneratedImage, len(imagePrompts))
	errs := make([]error, len(imagePrompts))

	var g errgroup.Group
	g.SetLimit(max(rt.Agent.Concurrency, 1))

	for i, prompt := range imagePrompts {
		g.Go(func() error {
			img, err := generateImage(ctx, rt, prompt, opts)
			if err != nil {
				errs[i] = fmt.Errorf("image %d: %w", i+1, err)
				return nil
			}
			img.Index = i
			images[i] = img
			return nil
		})
	}
	_ = g.Wait()

	batch := &ImageBatch{}
	for i := range imagePrompts {
		if errs[i] != nil {
			rt.Logger.WarnContext(ctx, "image generation failed", "index", i+1, "error", errs[i])
			batch.Failed = append(batch.Failed, ImageFailure{Index: i, Err: errs[i]})
			continue
		}
		batch.Images = append(batch.Images, images[i])
	}

	if len(imagePrompts) > 0 && len(batch.Images) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrImageFailed, errors.Join(errs...))
	}

	rt.Logger.InfoContext(ctx, "images generated",
		"count", len(batch.Images), "failed", len(batch.Failed),
		"size", opts.Size, "quality", opts.Quality)
	return batch, nil
}

func generateImage(ctx context.Context, rt *Runtime, prompt string, opts ImageOptions) (GeneratedImage, error) {
	resp, err := rt.Client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          rt.Agent.ImageModel,
		N:              1,
		Size:           opts.Size,
		Quality:        opts.Quality,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return GeneratedImage{}, err
	}
	if len(resp.Data) == 0 {
		return GeneratedImage{}, fmt.Errorf("no image returned")
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return GeneratedImage{}, fmt.Errorf("decode image: %w", err)
	}

	return GeneratedImage{
		Prompt:        prompt,
		RevisedPrompt: resp.Data[0].RevisedPrompt,
		Data:          data,
	}, nil
}
