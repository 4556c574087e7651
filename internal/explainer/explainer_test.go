package explainer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/codeexplainer/internal/fallback"
	"github.com/ziadkadry99/codeexplainer/internal/formatter"
	"github.com/ziadkadry99/codeexplainer/internal/language"
	"github.com/ziadkadry99/codeexplainer/internal/llm"
)

type mockProvider struct {
	mu    sync.Mutex
	calls []llm.CompletionRequest
	resp  *llm.CompletionResponse
	err   error
	block bool
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func (m *mockProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(p llm.Provider) *Service {
	return New(p, nil, Options{
		Model:       "mistral-small-latest",
		Temperature: 0.7,
		MaxTokens:   1024,
		Escape:      true,
		Logger:      quietLogger(),
	})
}

func TestExplainEmptyCodeMakesNoCall(t *testing.T) {
	mock := &mockProvider{}
	svc := newService(mock)

	for _, code := range []string{"", "   ", "\n\t\n"} {
		_, err := svc.Explain(context.Background(), Request{Code: code, Language: language.Python})
		assert.True(t, errors.Is(err, ErrEmptyCode), "code %q", code)
	}
	assert.Zero(t, mock.callCount())
}

func TestExplainUnknownLanguage(t *testing.T) {
	mock := &mockProvider{}
	_, err := newService(mock).Explain(context.Background(), Request{Code: "x", Language: "cobol"})
	assert.True(t, errors.Is(err, language.ErrUnknownLanguage))
	assert.Zero(t, mock.callCount())
}

func TestExplainSuccess(t *testing.T) {
	mock := &mockProvider{resp: &llm.CompletionResponse{
		Content:      "## Purpose\n* adds numbers",
		Model:        "mistral-small-latest",
		InputTokens:  100,
		OutputTokens: 50,
	}}
	svc := newService(mock)

	res, err := svc.Explain(context.Background(), Request{Code: "a + b", Language: language.Rust})
	require.NoError(t, err)

	assert.Equal(t, SourceAI, res.Source)
	assert.Equal(t, "## Purpose\n* adds numbers", res.Raw)
	assert.Equal(t, formatter.Format(res.Raw), res.HTML)
	assert.Empty(t, res.Notice)
	assert.Equal(t, language.Rust, res.Language)
	assert.Greater(t, res.CostUSD, 0.0)

	require.Equal(t, 1, mock.callCount())
	call := mock.calls[0]
	assert.Equal(t, "mistral-small-latest", call.Model)
	assert.Equal(t, 0.7, call.Temperature)
	assert.Equal(t, 1024, call.MaxTokens)
	require.Len(t, call.Messages, 2)
	assert.Equal(t, llm.RoleSystem, call.Messages[0].Role)
	assert.Contains(t, call.Messages[0].Content, "## for main headings")
	assert.Equal(t, llm.RoleUser, call.Messages[1].Role)
	assert.Equal(t, "Please explain this rust code in a point-by-point format with clear headings:\n\na + b", call.Messages[1].Content)
}

func TestExplainDefaultsLanguage(t *testing.T) {
	mock := &mockProvider{resp: &llm.CompletionResponse{Content: "ok"}}
	res, err := newService(mock).Explain(context.Background(), Request{Code: "x"})
	require.NoError(t, err)
	assert.Equal(t, language.JavaScript, res.Language)
}

func TestExplainProviderFailureUsesFallback(t *testing.T) {
	tests := []struct {
		name string
		mock *mockProvider
	}{
		{"error", &mockProvider{err: errors.New("connection refused")}},
		{"empty content", &mockProvider{resp: &llm.CompletionResponse{Content: "  "}}},
		{"nil response", &mockProvider{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(tt.mock)
			res, err := svc.Explain(context.Background(), Request{Code: "print(1)", Language: language.Python})
			require.NoError(t, err)

			assert.Equal(t, SourceFallback, res.Source)
			assert.Equal(t, fallback.Default().Lookup(language.Python), res.Raw)
			assert.Equal(t, formatter.Format(res.Raw), res.HTML)
			assert.Equal(t, FallbackNotice, res.Notice)
			assert.Equal(t, 1, tt.mock.callCount())
		})
	}
}

func TestExplainFallbackDefaultEntry(t *testing.T) {
	svc := newService(&mockProvider{err: errors.New("down")})
	res, err := svc.Explain(context.Background(), Request{Code: "fn main() {}", Language: language.Rust})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Raw, "## Code Analysis"))
}

func TestExplainNilProviderUsesFallback(t *testing.T) {
	svc := New(nil, nil, Options{Escape: true, Logger: quietLogger()})
	res, err := svc.Explain(context.Background(), Request{Code: "x", Language: language.Java})
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, res.Source)
}

func TestExplainTimeoutUsesFallback(t *testing.T) {
	mock := &mockProvider{block: true}
	svc := New(mock, nil, Options{Timeout: 20 * time.Millisecond, Logger: quietLogger()})

	res, err := svc.Explain(context.Background(), Request{Code: "x", Language: language.CSS})
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, res.Source)
}

func TestRenderRespectsEscapeOption(t *testing.T) {
	raw := "<b>x</b>"
	escaping := New(nil, nil, Options{Escape: true, Logger: quietLogger()})
	passthrough := New(nil, nil, Options{Escape: false, Logger: quietLogger()})

	assert.Equal(t, "&lt;b&gt;x&lt;/b&gt;", escaping.Render(raw))
	assert.Equal(t, "<b>x</b>", passthrough.Render(raw))
}

func TestEstimateInputTokensGrowsWithCode(t *testing.T) {
	small := EstimateInputTokens(language.Python, "x = 1")
	large := EstimateInputTokens(language.Python, strings.Repeat("x = 1\n", 100))
	assert.Greater(t, small, 0)
	assert.Greater(t, large, small)
}
