// Package web serves the explainer page and its JSON and websocket API.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/codeexplainer/internal/explainer"
	"github.com/ziadkadry99/codeexplainer/internal/highlight"
	"github.com/ziadkadry99/codeexplainer/internal/language"
	"github.com/ziadkadry99/codeexplainer/internal/session"
)

// SessionCookie names the cookie carrying the session ID.
const SessionCookie = "session_id"

// EmptyCodeNotice is shown when the explain action is used on blank code.
const EmptyCodeNotice = "Please enter some code to explain."

// Web provides the page and API handlers.
type Web struct {
	svc       *explainer.Service
	sessions  *session.Manager
	highlight *highlight.Renderer
	log       *slog.Logger
}

// New creates a Web.
func New(svc *explainer.Service, sessions *session.Manager, hl *highlight.Renderer, logger *slog.Logger) *Web {
	if logger == nil {
		logger = slog.Default()
	}
	if hl == nil {
		hl = highlight.New()
	}
	return &Web{
		svc:       svc,
		sessions:  sessions,
		highlight: hl,
		log:       logger.With("component", "web"),
	}
}

// RegisterRoutes mounts all page and API routes onto the given router.
func (h *Web) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ServeIndex)
	r.Route("/api", func(r chi.Router) {
		r.Get("/languages", h.handleLanguages)
		r.Get("/tips", h.handleTips)
		r.Get("/about", h.handleAbout)
		r.Post("/explain", h.handleExplain)
		r.Get("/session", h.handleSession)
		r.Post("/session/theme", h.handleTheme)
		r.Post("/session/copy", h.handleCopy)
	})
	r.Get("/ws/explain", h.handleWebSocket)
}

// explainRequest is the body of POST /api/explain and of websocket explain
// messages.
type explainRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// explainResponse is returned for a completed explain request.
type explainResponse struct {
	SessionID  string           `json:"session_id"`
	Language   language.Tag     `json:"language"`
	Source     explainer.Source `json:"source"`
	Raw        string           `json:"raw"`
	HTML       string           `json:"html"`
	Notice     string           `json:"notice,omitempty"`
	SourceHTML string           `json:"source_html,omitempty"`
}

// explain runs one request for the session st, holding its busy flag for the
// duration of the provider call.
func (h *Web) explain(ctx context.Context, st *session.State, req explainRequest) (*explainResponse, error) {
	lang, err := language.Parse(req.Language)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Code) == "" {
		return nil, explainer.ErrEmptyCode
	}

	if err := h.sessions.Begin(ctx, st.ID); err != nil {
		return nil, err
	}

	res, err := h.svc.Explain(ctx, explainer.Request{Code: req.Code, Language: lang})
	// The result is recorded even if the client went away mid-request.
	if finishErr := h.sessions.Finish(context.WithoutCancel(ctx), st.ID, res); finishErr != nil {
		h.log.Error("recording explanation", "session", st.ID, "error", finishErr)
	}
	if err != nil {
		return nil, err
	}

	sourceHTML, err := h.highlight.Source(req.Code, lang, st.Theme == session.ThemeDark)
	if err != nil {
		h.log.Warn("highlighting source", "language", lang, "error", err)
	}

	return &explainResponse{
		SessionID:  st.ID,
		Language:   res.Language,
		Source:     res.Source,
		Raw:        res.Raw,
		HTML:       res.HTML,
		Notice:     res.Notice,
		SourceHTML: sourceHTML,
	}, nil
}

// errorStatus maps domain errors to HTTP status codes and user notices.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, explainer.ErrEmptyCode):
		return http.StatusBadRequest, EmptyCodeNotice
	case errors.Is(err, language.ErrUnknownLanguage):
		return http.StatusBadRequest, "Please select a supported language."
	case errors.Is(err, session.ErrInvalidTheme):
		return http.StatusBadRequest, ""
	case errors.Is(err, session.ErrBusy):
		return http.StatusConflict, "An explanation is already in progress."
	case errors.Is(err, session.ErrNothingToCopy):
		return http.StatusNotFound, "Nothing to copy yet."
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound, ""
	default:
		return http.StatusInternalServerError, ""
	}
}
