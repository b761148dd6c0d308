// SPDX-License-Identifier: MIT

// Package server is the local preview server: it serves the current theme as
// a stylesheet, a bootstrap script and a server-rendered swatch page.
package server

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/thatcatcamp/pte/internal/dom"
	"github.com/thatcatcamp/pte/internal/export"
	"github.com/thatcatcamp/pte/internal/inject"
	"github.com/thatcatcamp/pte/internal/middleware"
	"github.com/thatcatcamp/pte/internal/themes"
	"go.uber.org/zap"
)

// Options configure a Server
type Options struct {
	Inject     inject.Options
	AllowedIPs []string // nil allows every client
	Logger     *zap.Logger
	// Registry receives the server's collectors; a private one is created when nil.
	Registry *prometheus.Registry
}

// Server holds the theme being previewed
type Server struct {
	mu    sync.RWMutex
	theme *themes.Theme

	opts     Options
	logger   *zap.Logger
	registry *prometheus.Registry
	reloads  prometheus.Counter
	engine   *gin.Engine
}

// New creates a preview server for theme. A nil theme previews the default theme.
func New(theme *themes.Theme, opts Options) *Server {
	if theme == nil {
		theme = themes.DefaultTheme()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}

	s := &Server{
		theme:    theme,
		opts:     opts,
		logger:   opts.Logger,
		registry: opts.Registry,
		reloads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pte_theme_reloads_total",
			Help: "Number of times the previewed theme was replaced.",
		}),
	}
	s.registry.MustRegister(s.reloads)
	s.engine = s.routes(middleware.NewMetrics(s.registry))
	return s
}

// Theme returns the theme currently served
func (s *Server) Theme() *themes.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme swaps the served theme; requests in flight keep the old one
func (s *Server) SetTheme(theme *themes.Theme) {
	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
	s.reloads.Inc()
	s.logger.Info("theme replaced", zap.Int("variables", len(themes.Flatten(theme, s.opts.Inject.Prefix))))
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	// Create listener first to catch binding errors immediately
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind preview server to %s: %w", addr, err)
	}

	srv := &http.Server{Handler: s.engine, ReadHeaderTimeout: 10 * time.Second}
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(listener)
	}()
	s.logger.Info("preview server listening", zap.String("addr", listener.Addr().String()))

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-done; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) routes(metrics *middleware.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware(s.logger, metrics, "/health", "/metrics"))
	r.Use(middleware.AllowlistMiddleware(s.opts.AllowedIPs))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(s.themeMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "pte",
		})
	})
	r.GET("/pte.css", s.handleCSS)
	r.GET("/pte.js", s.handleScript)
	r.GET("/vars", s.handleVars)
	r.GET("/", s.handlePage)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	return r
}

// themeMiddleware pins one theme snapshot for the whole request
func (s *Server) themeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("theme", s.Theme())
		c.Next()
	}
}

func requestTheme(c *gin.Context) *themes.Theme {
	return c.MustGet("theme").(*themes.Theme)
}

func (s *Server) handleCSS(c *gin.Context) {
	css := export.Render(requestTheme(c), export.Options{
		Selector: s.opts.Inject.Selector,
		Prefix:   s.opts.Inject.Prefix,
	})
	c.Data(http.StatusOK, "text/css; charset=utf-8", css)
}

func (s *Server) handleScript(c *gin.Context) {
	script := inject.GenerateScript(requestTheme(c), s.opts.Inject)
	c.Data(http.StatusOK, "application/javascript; charset=utf-8", []byte(script))
}

type varEntry struct {
	Path  string `json:"path"`
	Name  string `json:"name"`
	Ref   string `json:"ref"`
	Value string `json:"value"`
}

// handleVars lists every variable, or resolves one path through the rendered page
func (s *Server) handleVars(c *gin.Context) {
	theme := requestTheme(c)
	kit := inject.NewKit(theme, s.opts.Inject)

	if path := c.Query("path"); path != "" {
		name, err := kit.Name(path)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		doc, err := s.render(theme, false)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		value, err := kit.Get(doc, path, c.Query("selector"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, varEntry{Path: path, Name: name, Ref: themes.Ref(name), Value: value})
		return
	}

	vars := themes.Flatten(theme, s.opts.Inject.Prefix)
	paths := themes.Paths(theme)
	entries := make([]varEntry, len(vars))
	for i, v := range vars {
		entries[i] = varEntry{Path: paths[i], Name: v.Name, Ref: themes.Ref(v.Name), Value: v.Value}
	}
	c.JSON(http.StatusOK, entries)
}

// handlePage renders the swatch page; ?mode=script ships the bootstrap
// script instead of a pre-injected style block
func (s *Server) handlePage(c *gin.Context) {
	doc, err := s.render(requestTheme(c), c.Query("mode") == "script")
	if err != nil {
		s.logger.Error("render preview", zap.Error(err), zap.String("request_id", middleware.RequestID(c)))
		c.String(http.StatusInternalServerError, "failed to render preview")
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := doc.Render(c.Writer); err != nil {
		s.logger.Error("write preview", zap.Error(err))
	}
}

const pageCSS = `body { margin: 0; padding: 2rem; font-family: system-ui, sans-serif; ` +
	`background: var(--%[1]s-colors-backgroundPrimary, #fff); color: var(--%[1]s-colors-text, #111); } ` +
	`table { border-collapse: collapse; } td { padding: .25rem .75rem; } ` +
	`.swatch { width: 2rem; height: 1.25rem; border: 1px solid #8884; }`

// render builds the preview document for theme
func (s *Server) render(theme *themes.Theme, script bool) (*dom.HTMLDocument, error) {
	opts := inject.NewKit(theme, s.opts.Inject).Options()
	doc := dom.NewDocument()

	title := doc.CreateElement("title")
	title.SetInnerHTML("pte preview")
	layout := doc.CreateElement("style")
	layout.SetID("pte-preview")
	layout.SetInnerHTML(fmt.Sprintf(pageCSS, opts.Prefix))
	for _, el := range []dom.Element{title, layout} {
		if err := doc.Head().AppendChild(el); err != nil {
			return nil, err
		}
	}

	doc.Body().SetInnerHTML(swatchTable(theme, opts.Prefix))

	if script {
		el := doc.CreateElement("script")
		el.SetID(inject.ScriptID)
		el.SetInnerHTML(inject.GenerateScript(theme, opts))
		return doc, doc.Head().AppendChild(el)
	}
	return doc, inject.Inject(doc, theme, opts)
}

func swatchTable(theme *themes.Theme, prefix string) string {
	var b strings.Builder
	b.WriteString("<h1>Theme variables</h1><table>")
	for _, v := range themes.Flatten(theme, prefix) {
		name := html.EscapeString(v.Name)
		fmt.Fprintf(&b, `<tr><td><div class="swatch" style="background: %s"></div></td><td><code>%s</code></td><td>%s</td></tr>`,
			html.EscapeString(themes.Ref(v.Name)), name, html.EscapeString(v.Value))
	}
	b.WriteString("</table>")
	return b.String()
}
