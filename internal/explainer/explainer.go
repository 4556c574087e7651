// Package explainer runs one explain request: validate the code, ask the
// completion provider, fall back to a canned explanation on any failure, and
// render the result.
package explainer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ziadkadry99/codeexplainer/internal/fallback"
	"github.com/ziadkadry99/codeexplainer/internal/formatter"
	"github.com/ziadkadry99/codeexplainer/internal/language"
	"github.com/ziadkadry99/codeexplainer/internal/llm"
)

// ErrEmptyCode is returned for blank or whitespace-only code. No provider
// call is made.
var ErrEmptyCode = errors.New("please enter some code to explain")

// FallbackNotice is shown alongside a canned explanation.
const FallbackNotice = "Could not connect to the AI provider. Using fallback explanation."

// Source records where an explanation came from.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// Options configures a Service.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
	// Timeout bounds each provider call. Zero means no timeout beyond the
	// caller's context.
	Timeout time.Duration
	// Escape selects formatter.Format over formatter.FormatUnsafe.
	Escape bool
	Logger *slog.Logger
}

// Request is a single explain request.
type Request struct {
	Code     string
	Language language.Tag
}

// Result is the outcome of an explain request. Exactly one of the AI response
// or the fallback text is carried in Raw.
type Result struct {
	Language     language.Tag  `json:"language"`
	Source       Source        `json:"source"`
	Raw          string        `json:"raw"`
	HTML         string        `json:"html"`
	Notice       string        `json:"notice,omitempty"`
	Model        string        `json:"model,omitempty"`
	InputTokens  int           `json:"input_tokens,omitempty"`
	OutputTokens int           `json:"output_tokens,omitempty"`
	CostUSD      float64       `json:"cost_usd,omitempty"`
	Duration     time.Duration `json:"duration"`
}

// Service explains code using an llm.Provider and a fallback table.
type Service struct {
	provider llm.Provider
	table    *fallback.Table
	opts     Options
	log      *slog.Logger
}

// New creates a Service. A nil provider sends every request down the
// fallback path; a nil table uses fallback.Default().
func New(provider llm.Provider, table *fallback.Table, opts Options) *Service {
	if table == nil {
		table = fallback.Default()
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = 1024
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		provider: provider,
		table:    table,
		opts:     opts,
		log:      logger.With("component", "explainer"),
	}
}

// Explain runs req through the provider. Provider failures never surface as
// errors: the caller gets the fallback explanation with Notice set. The only
// errors returned are ErrEmptyCode and language.ErrUnknownLanguage.
func (s *Service) Explain(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Code) == "" {
		return nil, ErrEmptyCode
	}
	lang := req.Language
	if lang == "" {
		lang = language.Default
	}
	if !lang.Valid() {
		return nil, fmt.Errorf("%w: %q", language.ErrUnknownLanguage, lang)
	}

	start := time.Now()
	resp, err := s.complete(ctx, lang, req.Code)
	if err != nil {
		s.log.Warn("completion failed, using fallback",
			"language", lang,
			"error", err,
		)
		raw := s.table.Lookup(lang)
		return &Result{
			Language: lang,
			Source:   SourceFallback,
			Raw:      raw,
			HTML:     s.Render(raw),
			Notice:   FallbackNotice,
			Duration: time.Since(start),
		}, nil
	}

	res := &Result{
		Language:     lang,
		Source:       SourceAI,
		Raw:          resp.Content,
		HTML:         s.Render(resp.Content),
		Model:        resp.Model,
		InputTokens:  resp.InputTokens,
		OutputTokens: resp.OutputTokens,
		CostUSD:      llm.EstimateCost(resp.Model, resp.InputTokens, resp.OutputTokens),
		Duration:     time.Since(start),
	}
	s.log.Info("explanation generated",
		"language", lang,
		"provider", s.provider.Name(),
		"model", res.Model,
		"input_tokens", res.InputTokens,
		"output_tokens", res.OutputTokens,
		"duration", res.Duration,
	)
	return res, nil
}

// Render formats raw explanation text with the configured escaping mode.
func (s *Service) Render(raw string) string {
	if s.opts.Escape {
		return formatter.Format(raw)
	}
	return formatter.FormatUnsafe(raw)
}

func (s *Service) complete(ctx context.Context, lang language.Tag, code string) (*llm.CompletionResponse, error) {
	if s.provider == nil {
		return nil, errors.New("no completion provider configured")
	}

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	resp, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Model: s.opts.Model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
			{Role: llm.RoleUser, Content: userPrompt(lang, code)},
		},
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
	})
	if err != nil {
		return nil, err
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return nil, llm.ErrEmptyCompletion
	}
	return resp, nil
}
