package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/JaimeStill/sedam/internal/analysis"
	"github.com/JaimeStill/sedam/internal/prompts"
	"github.com/JaimeStill/sedam/pkg/formatting"
)

type AnalysisResult struct {
	Analysis *analysis.Analysis
	Raw      string
	Model    string
	Retried  bool
}

// Analyze asks the chat model for the seven-section plan. A reply that does
// not parse into a non-empty plan is retried once at the retry temperature.
func Analyze(ctx context.Context, rt *Runtime, req Request) (*AnalysisResult, error) {
	model := req.Model
	if model == "" {
		model = rt.Agent.Model
	}

	system, err := ComposePrompt(ctx, rt.Prompts, prompts.StageAnalyze)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	raw, err := chat(ctx, rt, model, rt.Agent.Temperature, system, req.userPrompt())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	if a, ok := parseAnalysis(raw); ok {
		rt.Logger.InfoContext(ctx, "analysis complete", "title", req.Title, "model", model, "sections", a.SectionCount())
		return &AnalysisResult{Analysis: a, Raw: raw, Model: model}, nil
	}

	rt.Logger.WarnContext(ctx, "analysis reply was not valid JSON, retrying", "title", req.Title, "length", len(raw))

	system, err = ComposePrompt(ctx, rt.Prompts, prompts.StageRetry)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	raw, err = chat(ctx, rt, model, rt.Agent.RetryTemperature, system, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: retry: %w", ErrAnalysisFailed, err)
	}

	a, ok := parseAnalysis(raw)
	if !ok {
		return nil, fmt.Errorf("%w: reply is not a policy plan after retry", ErrAnalysisFailed)
	}

	rt.Logger.InfoContext(ctx, "analysis complete", "title", req.Title, "model", model, "sections", a.SectionCount(), "retried", true)
	return &AnalysisResult{Analysis: a, Raw: raw, Model: model, Retried: true}, nil
}

func parseAnalysis(raw string) (*analysis.Analysis, bool) {
	a, err := formatting.Parse[analysis.Analysis](raw)
	if err != nil || a.Empty() {
		return nil, false
	}
	return &a, true
}

func chat(ctx context.Context, rt *Runtime, model string, temperature float64, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: float32(temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}
	if reasoningModel(model) {
		req.MaxCompletionTokens = rt.Agent.MaxTokens
	} else {
		req.MaxTokens = rt.Agent.MaxTokens
	}

	resp, err := rt.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// reasoningModel reports models that take max_completion_tokens.
func reasoningModel(model string) bool {
	for _, prefix := range []string{"o1", "o3", "o4", "gpt-5"} {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}
