package web

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/ziadkadry99/codeexplainer/internal/content"
	"github.com/ziadkadry99/codeexplainer/internal/language"
	"github.com/ziadkadry99/codeexplainer/internal/session"
)

type languageEntry struct {
	Tag  language.Tag `json:"tag"`
	Name string       `json:"name"`
}

type languagesResponse struct {
	Languages []languageEntry `json:"languages"`
	Default   language.Tag    `json:"default"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Notice string `json:"notice,omitempty"`
}

type themeRequest struct {
	Theme string `json:"theme"`
}

type copyResponse struct {
	Text   string `json:"text"`
	Copied bool   `json:"copied"`
}

func (h *Web) handleLanguages(w http.ResponseWriter, r *http.Request) {
	tags := language.All()
	entries := make([]languageEntry, 0, len(tags))
	for _, t := range tags {
		entries = append(entries, languageEntry{Tag: t, Name: t.DisplayName()})
	}
	writeJSON(w, http.StatusOK, languagesResponse{Languages: entries, Default: language.Default})
}

func (h *Web) handleTips(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"tips": content.Tips()})
}

func (h *Web) handleAbout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"paragraphs": content.About()})
}

func (h *Web) handleSession(w http.ResponseWriter, r *http.Request) {
	st, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *Web) handleExplain(w http.ResponseWriter, r *http.Request) {
	st, ok := h.session(w, r)
	if !ok {
		return
	}

	var req explainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.explain(r.Context(), st, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleTheme sets the theme from the body, or toggles it when no theme is given.
func (h *Web) handleTheme(w http.ResponseWriter, r *http.Request) {
	st, ok := h.session(w, r)
	if !ok {
		return
	}

	var req themeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	var (
		updated *session.State
		err     error
	)
	if req.Theme == "" {
		updated, err = h.sessions.ToggleTheme(r.Context(), st.ID)
	} else {
		updated, err = h.sessions.SetTheme(r.Context(), st.ID, session.Theme(req.Theme))
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Web) handleCopy(w http.ResponseWriter, r *http.Request) {
	st, ok := h.session(w, r)
	if !ok {
		return
	}

	text, err := h.sessions.Copy(r.Context(), st.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, copyResponse{Text: text, Copied: true})
}

// session resolves the caller's session from the cookie, creating one if
// needed. On failure it writes the error response and returns false.
func (h *Web) session(w http.ResponseWriter, r *http.Request) (*session.State, bool) {
	var id string
	if c, err := r.Cookie(SessionCookie); err == nil {
		id = c.Value
	}

	st, err := h.sessions.Ensure(r.Context(), id)
	if err != nil {
		h.log.Error("resolving session", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "session unavailable"})
		return nil, false
	}
	if st.ID != id {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    st.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return st, true
}

func writeError(w http.ResponseWriter, err error) {
	status, notice := errorStatus(err)
	writeJSON(w, status, errorResponse{Error: err.Error(), Notice: notice})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
