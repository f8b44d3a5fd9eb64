// Package visualize serves a small HTTP+WebSocket endpoint for the `bidi
// visualize` command: a connecting client receives one JSON message per
// pipeline phase transition for a single paragraph. It is grounded on the
// teacher codebase's own internal/network WebSocket server (Upgrader
// config, per-connection handler, http.Server wiring), trimmed
// from a general multi-server/multi-client registry down to one server
// streaming one trace to whichever client connects.
package visualize

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"bidi/internal/bidi"
	"bidi/internal/bidilog"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// phaseMessage is what each WebSocket client receives per pipeline phase.
type phaseMessage struct {
	Phase  string  `json:"phase"`
	Levels []int   `json:"levels"`
	Order  []int   `json:"order,omitempty"`
}

// Server streams the trace of one fixed input (set at construction) to every
// client that connects to its WebSocket endpoint; the trace is recomputed for
// each connection.
type Server struct {
	types []bidi.Type
	base  bidi.BaseDirection
	http  *http.Server
}

// New builds a Server that will trace types under base direction base.
func New(addr string, types []bidi.Type, base bidi.BaseDirection) *Server {
	s := &Server{types: types, base: base}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/", s.handleIndex)
	s.http = &http.Server{Addr: addr, Handler: mux}
	return s
}

// ListenAndServe starts the HTTP server and blocks until ctx is cancelled
// or the server fails, mirroring the teacher's go server.ListenAndServe()
// background-goroutine pattern but made cancellable via ctx instead of
// running forever in a fire-and-forget goroutine.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		bidilog.Info("visualize server listening on %s", s.http.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		bidilog.Warn("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for _, snap := range bidi.Trace(s.types, s.base) {
		msg := phaseMessage{
			Phase:  string(snap.Phase),
			Levels: levelsToInts(snap.Levels),
			Order:  snap.Order,
		}
		payload, err := json.Marshal(msg)
		if err != nil {
			bidilog.Error("marshaling phase snapshot: %v", err)
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			bidilog.Warn("writing to websocket client: %v", err)
			return
		}
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

func levelsToInts(levels []bidi.Level) []int {
	out := make([]int, len(levels))
	for i, lvl := range levels {
		out[i] = int(lvl)
	}
	return out
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>bidi visualize</title></head>
<body>
<pre id="out">connecting...</pre>
<script>
const out = document.getElementById("out");
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (ev) => { out.textContent += ev.data + "\n"; };
ws.onclose = () => { out.textContent += "(stream closed)\n"; };
</script>
</body>
</html>`
