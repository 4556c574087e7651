package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Type     string `json:"type"` // "explain"
	Code     string `json:"code"`
	Language string `json:"language"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type   string           `json:"type"` // "status", "result" or "error"
	Busy   *bool            `json:"busy,omitempty"`
	Result *explainResponse `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
	Notice string           `json:"notice,omitempty"`
}

// handleWebSocket streams the busy indicator and result of explain requests.
// For each request the client receives status(busy=true), then result or
// error, then status(busy=false).
func (h *Web) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	st, ok := h.session(w, r)
	if !ok {
		return
	}

	// Upgrade writes its own response, so carry over a freshly issued cookie.
	var hdr http.Header
	if cookies := w.Header().Values("Set-Cookie"); len(cookies) > 0 {
		hdr = http.Header{"Set-Cookie": cookies}
	}
	conn, err := upgrader.Upgrade(w, r, hdr)
	if err != nil {
		h.log.Warn("websocket upgrade", "error", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("websocket read", "error", err)
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			h.send(conn, wsResponse{Type: "error", Error: "invalid message format"})
			continue
		}
		if req.Type != "explain" {
			h.send(conn, wsResponse{Type: "error", Error: "unknown message type: " + req.Type})
			continue
		}

		h.send(conn, status(true))
		resp, err := h.explain(r.Context(), st, explainRequest{Code: req.Code, Language: req.Language})
		if err != nil {
			_, notice := errorStatus(err)
			h.send(conn, wsResponse{Type: "error", Error: err.Error(), Notice: notice})
		} else {
			h.send(conn, wsResponse{Type: "result", Result: resp})
		}
		h.send(conn, status(false))
	}
}

func status(busy bool) wsResponse {
	return wsResponse{Type: "status", Busy: &busy}
}

func (h *Web) send(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		h.log.Warn("websocket write", "error", err)
	}
}
