package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/rotoclear/camdocs/fsutil"
	"github.com/rotoclear/camdocs/nav"
	"github.com/rotoclear/camdocs/templatex"
)

const (
	// markerFile disables the hosting platform's underscore-prefix ignore rule.
	markerFile = ".nojekyll"
	assetsDir  = "assets"
)

// Report summarizes one build run.
type Report struct {
	// Processed lists the docs-relative source paths that produced a page,
	// in traversal order.
	Processed []string
}

// Build renders the whole site into the configured output directory.
//
// Pages whose source file is missing are skipped without failing the build;
// any other I/O failure aborts it. Re-running with unchanged input rewrites
// identical output.
func (s *Service) Build(ctx context.Context) (*Report, error) {
	if err := os.MkdirAll(filepath.Join(s.cfg.OutputDir, assetsDir), 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	if err := fsutil.Touch(filepath.Join(s.cfg.OutputDir, markerFile)); err != nil {
		return nil, fmt.Errorf("write marker file: %w", err)
	}
	if err := s.copyAssets(); err != nil {
		return nil, err
	}

	report := &Report{}
	var walkErr error
	nav.Walk(s.tree, func(page nav.Node) {
		if walkErr != nil || ctx.Err() != nil {
			return
		}
		processed, err := s.buildPage(page)
		if err != nil {
			walkErr = err
			return
		}
		if processed {
			report.Processed = append(report.Processed, page.Path)
		}
	})
	if walkErr != nil {
		return nil, walkErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.log.Info("build complete", "processed", len(report.Processed), "output", s.cfg.OutputDir)
	return report, nil
}

func (s *Service) copyAssets() error {
	src := filepath.Join(s.cfg.DocsDir, assetsDir)
	if !fsutil.DirExists(src) {
		return nil
	}
	if err := fsutil.CopyTree(src, filepath.Join(s.cfg.OutputDir, assetsDir)); err != nil {
		return fmt.Errorf("copy assets: %w", err)
	}
	return nil
}

// buildPage renders one navigation page. It reports false without error when
// the declared source file does not exist.
func (s *Service) buildPage(page nav.Node) (bool, error) {
	source := filepath.Join(s.cfg.DocsDir, filepath.FromSlash(page.Path))
	if !fsutil.Exists(source) {
		s.log.Info("skipping, source missing", "path", page.Path)
		return false, nil
	}

	outputPath := OutputPath(page.Path)
	basePath := BasePath(outputPath)
	s.log.Info("processing", "source", page.Path, "output", outputPath)

	raw, err := os.ReadFile(source)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", page.Path, err)
	}

	rendered, err := s.renderer.Render(raw)
	if err != nil {
		return false, fmt.Errorf("render %s: %w", page.Path, err)
	}

	data := &templatex.PageData{
		Title:        page.Title,
		SiteTitle:    s.cfg.SiteTitle,
		SiteName:     s.cfg.SiteName,
		SiteSubtitle: s.cfg.SiteSubtitle,
		FooterText:   s.cfg.FooterText,
		BasePath:     basePath,
		Navigation:   template.HTML(renderNavigation(s.tree, outputPath, 0, basePath)),
		Content:      template.HTML(rendered.HTML),
	}

	var buf bytes.Buffer
	if err := s.templates.Render(&buf, data); err != nil {
		return false, fmt.Errorf("assemble %s: %w", page.Path, err)
	}

	pageBytes := buf.Bytes()
	if s.cfg.MinifyOutput {
		pageBytes, err = s.minifyHTML(pageBytes)
		if err != nil {
			return false, fmt.Errorf("minify %s: %w", page.Path, err)
		}
	}

	target := filepath.Join(s.cfg.OutputDir, filepath.FromSlash(outputPath))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return false, fmt.Errorf("create output parent: %w", err)
	}
	if err := os.WriteFile(target, pageBytes, 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", outputPath, err)
	}
	return true, nil
}
