package visualize

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"bidi/internal/bidi"
)

func TestHandleWSStreamsEveryPhase(t *testing.T) {
	s := New(":0", []bidi.Type{bidi.L, bidi.RLI, bidi.R, bidi.PDI, bidi.L}, bidi.Auto)

	srv := httptest.NewServer(s.http.Handler)
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dialing websocket: %v", err)
	}
	defer conn.Close()

	var phases []string
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		var msg phaseMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		phases = append(phases, msg.Phase)
	}

	want := []string{"isolate-build", "explicit", "weak", "neutral", "implicit", "line-reset", "reorder"}
	if len(phases) != len(want) {
		t.Fatalf("phases = %v, want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("phases[%d] = %q, want %q", i, phases[i], want[i])
		}
	}
}

func TestHandleIndexServesHTML(t *testing.T) {
	s := New(":0", []bidi.Type{bidi.L}, bidi.Auto)
	srv := httptest.NewServer(s.http.Handler)
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
