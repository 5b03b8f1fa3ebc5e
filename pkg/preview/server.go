// Package preview serves a rendered view tree over HTTP for local
// development: the document at /, live reload over a websocket, health and
// Prometheus metrics endpoints.
package preview

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RenderFunc produces the current document HTML. The server calls it on
// every page request so the response always reflects the live tree.
type RenderFunc func() (string, error)

// Options configures the preview server.
type Options struct {
	// Host and Port to bind to.
	Host string
	Port int

	// Render produces the page body. Required.
	Render RenderFunc

	// Hub is the live-reload hub; nil disables the reload socket.
	Hub *Hub

	// Logger receives request and lifecycle logs. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// Gatherer serves /metrics. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// Server is the preview HTTP server.
type Server struct {
	opts   Options
	router chi.Router
	http   *http.Server
	log    *slog.Logger
}

// NewServer builds a preview server; Start runs it.
func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	s := &Server{opts: opts, log: opts.Logger}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	if opts.Hub != nil {
		r.Get("/_live/reload", opts.Hub.HandleSocket)
	}

	s.router = r
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.opts.Host, s.opts.Port)
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()
	s.log.Info("preview server listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html, err := s.opts.Render()
	if err != nil {
		s.log.Error("render failed", "err", err)
		if s.opts.Hub != nil {
			s.opts.Hub.NotifyError(err.Error())
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if s.opts.Hub != nil {
		s.opts.Hub.ClearError()
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, injectReloadScript(html, s.opts.Hub != nil))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

const reloadScript = `<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/_live/reload");
  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === "reload") location.reload();
  };
})();
</script>`

// injectReloadScript appends the reload client before </body> when live
// reload is enabled.
func injectReloadScript(html string, live bool) string {
	if !live {
		return html
	}
	if i := strings.LastIndex(html, "</body>"); i >= 0 {
		return html[:i] + reloadScript + html[i:]
	}
	return html + reloadScript
}
