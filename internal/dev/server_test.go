package dev

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/puerro-dev/puerro/internal/config"
	"github.com/puerro-dev/puerro/pkg/vdom"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Name = "test"
	s, err := NewServer(cfg, nil)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return s
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func postEvent(t *testing.T, h http.Handler, action, value string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"value": {value}}
	req := httptest.NewRequest(http.MethodPost, "/event/"+action, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndexServesPage(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s.Routes(), "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("index should serve a full page")
	}
	if !strings.Contains(body, `id="app"`) {
		t.Error("index should contain the rendered app")
	}
	if !strings.Contains(body, "watch the patch stream") {
		t.Error("index should contain the seeded todo")
	}
}

func TestFragmentServesLiveTree(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s.Routes(), "/fragment")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("fragment should not include the page shell")
	}
	if !strings.Contains(body, "<output>0</output>") {
		t.Errorf("fragment should show the initial count, got %q", body)
	}
}

func TestIncrementEvent(t *testing.T) {
	s := newTestServer(t)
	h := s.Routes()

	rec := postEvent(t, h, "increment", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	body := get(t, h, "/fragment").Body.String()
	if !strings.Contains(body, "<output>1</output>") {
		t.Errorf("count should be 1 after increment, got %q", body)
	}
}

func TestAddTodoEvent(t *testing.T) {
	s := newTestServer(t)
	h := s.Routes()

	rec := postEvent(t, h, "add", "write tests")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	body := get(t, h, "/fragment").Body.String()
	if !strings.Contains(body, "write tests") {
		t.Errorf("new todo missing from fragment: %q", body)
	}
}

func TestRemoveTodoEvent(t *testing.T) {
	s := newTestServer(t)
	h := s.Routes()

	rec := postEvent(t, h, "remove", "watch the patch stream")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	body := get(t, h, "/fragment").Body.String()
	if strings.Contains(body, "watch the patch stream") {
		t.Errorf("removed todo still in fragment: %q", body)
	}
}

func TestUnknownActionNotFound(t *testing.T) {
	s := newTestServer(t)
	rec := postEvent(t, s.Routes(), "bogus", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s.Routes(), "/metrics")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "repaints_total") {
		t.Error("metrics output should include the repaint counter")
	}
}

func TestMetricsDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.Enabled = false
	s, err := NewServer(cfg, nil)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	rec := get(t, s.Routes(), "/metrics")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 when metrics are disabled", rec.Code)
	}
}

func TestPatchStreamBroadcast(t *testing.T) {
	stream := NewPatchStream()
	ts := httptest.NewServer(http.HandlerFunc(stream.HandleWebSocket))
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	// Registration happens on the server goroutine after the handshake.
	deadline := time.Now().Add(2 * time.Second)
	for stream.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	stream.Record(vdom.Patch{Op: vdom.PatchReplace, Index: 1, Tag: "#text"})

	var msg PatchMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if msg.Op != "Replace" || msg.Index != 1 || msg.Tag != "#text" {
		t.Errorf("msg = %+v, want Replace/#text/1", msg)
	}
}

func TestDemoAppIncrement(t *testing.T) {
	app := NewDemoApp()
	app.Increment()
	app.Increment()
	if got := app.count(); got != 2 {
		t.Errorf("count = %d, want 2", got)
	}
}
