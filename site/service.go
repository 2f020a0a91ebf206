// Package site drives the documentation build: it walks the navigation tree,
// renders each source document, and writes the assembled pages into the
// output directory.
package site

import (
	"log/slog"

	"github.com/tdewolff/minify/v2"
	mhtml "github.com/tdewolff/minify/v2/html"

	"github.com/rotoclear/camdocs/config"
	"github.com/rotoclear/camdocs/nav"
	"github.com/rotoclear/camdocs/renderer"
	"github.com/rotoclear/camdocs/templatex"
)

// Service orchestrates document rendering and persistence for one site.
type Service struct {
	cfg       *config.Config
	tree      []nav.Node
	templates *templatex.Engine
	renderer  *renderer.Renderer
	minifier  *minify.M
	log       *slog.Logger
}

// NewService constructs a Service instance.
func NewService(cfg *config.Config, tree []nav.Node, templates *templatex.Engine, logger *slog.Logger) *Service {
	m := minify.New()
	m.AddFunc("text/html", mhtml.Minify)

	return &Service{
		cfg:       cfg,
		tree:      tree,
		templates: templates,
		renderer:  renderer.New(cfg.HighlightClassPrefix),
		minifier:  m,
		log:       logger,
	}
}
