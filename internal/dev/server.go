package dev

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/puerro-dev/puerro/internal/config"
	"github.com/puerro-dev/puerro/pkg/dom"
	"github.com/puerro-dev/puerro/pkg/metrics"
	"github.com/puerro-dev/puerro/pkg/mount"
	"github.com/puerro-dev/puerro/pkg/render"
)

// Server is the development server. It owns the demo app's live tree and
// mount controller; browser events arrive over HTTP, mutate state, and the
// resulting patches stream back over WebSocket.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	app    *DemoApp
	root   *dom.Node
	ctrl   *mount.Controller
	stream *PatchStream
	reg    *prometheus.Registry

	httpServer *http.Server

	// mu serializes event handling: the reconciler model has one logical
	// thread of control, and HTTP gives us many.
	mu sync.Mutex
}

// NewServer creates the development server and mounts the demo app.
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default().With("component", "dev")
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
		app:    NewDemoApp(),
		root:   dom.NewElement("body"),
		stream: NewPatchStream(),
	}

	opts := []mount.Option{
		mount.WithLogger(logger),
		mount.WithRecorder(s.stream),
	}
	if cfg.Metrics.Enabled {
		s.reg = prometheus.NewRegistry()
		collector := metrics.NewCollector(
			metrics.WithNamespace(cfg.Metrics.Namespace),
			metrics.WithRegistry(s.reg),
		)
		opts = append(opts, mount.WithMetrics(collector))
	}

	ctrl, err := mount.Mount(s.root, s.app.View, s.app.State, opts...)
	if err != nil {
		return nil, err
	}
	mount.ObserveList(ctrl, s.app.Todos)
	s.ctrl = ctrl

	return s, nil
}

// Routes builds the dev server's HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/fragment", s.handleFragment)
	r.Get("/ws", s.stream.HandleWebSocket)
	r.Post("/event/{action}", s.handleEvent)
	if s.reg != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{}))
	}
	return r
}

// Start runs the HTTP server until ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	s.logger.Info("dev server listening", "addr", s.cfg.Addr())

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// handleIndex serves the demo page shell around the current live tree.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	body, err := render.RenderLiveToString(s.root)
	s.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, s.cfg.Name, body)
}

// handleFragment serves the current live tree as an HTML fragment.
func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	body, err := render.RenderLiveToString(s.root)
	s.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, body)
}

// handleEvent dispatches a browser event to the live tree. The event is
// routed to the element carrying the matching data-action (or data-todo)
// attribute, so the exact listeners the renderer registered fire.
func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")
	value := r.FormValue("value")

	s.mu.Lock()
	defer s.mu.Unlock()

	var target *dom.Node
	eventType := "click"
	switch action {
	case "add":
		target = findByAttr(s.root, "data-action", "add")
		eventType = "submit"
	case "remove":
		target = findByAttr(s.root, "data-todo", value)
	default:
		target = findByAttr(s.root, "data-action", action)
	}

	if target == nil {
		http.Error(w, "no element for action "+action, http.StatusNotFound)
		return
	}

	target.DispatchEvent(dom.Event{Type: eventType, Value: value})
	w.WriteHeader(http.StatusNoContent)
}

// findByAttr walks the live tree looking for the first element whose
// attribute key equals want.
func findByAttr(n *dom.Node, key, want string) *dom.Node {
	if n == nil {
		return nil
	}
	if v, ok := n.Attr(key); ok && v == want {
		return n
	}
	for _, child := range n.Children() {
		if found := findByAttr(child, key, want); found != nil {
			return found
		}
	}
	return nil
}

// pageShell wraps the server-rendered demo in a minimal page with the
// WebSocket client. On every patch message the fragment is refetched.
const pageShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s · puerro dev</title>
</head>
<body>
<div id="app-container">%s</div>
<script>
(function () {
  var container = document.getElementById("app-container");
  var ws = new WebSocket("ws://" + location.host + "/ws");
  ws.onmessage = function () {
    fetch("/fragment").then(function (r) { return r.text(); }).then(function (html) {
      container.innerHTML = html;
    });
  };
  function post(action, value) {
    var body = new URLSearchParams();
    body.set("value", value || "");
    fetch("/event/" + action, { method: "POST", body: body });
  }
  container.addEventListener("click", function (e) {
    var el = e.target.closest("[data-action]");
    if (!el || el.getAttribute("data-action") === "add") return;
    e.preventDefault();
    post(el.getAttribute("data-action"), el.getAttribute("data-todo") || "");
  });
  container.addEventListener("submit", function (e) {
    e.preventDefault();
    var input = e.target.querySelector("input[name=todo]");
    post("add", input ? input.value : "");
    if (input) input.value = "";
  });
})();
</script>
</body>
</html>
`
