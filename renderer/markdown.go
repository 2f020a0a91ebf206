// Package renderer converts Markdown documentation sources into HTML fragments.
package renderer

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	htmlRenderer "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	"golang.org/x/text/unicode/norm"
)

// Heading represents a heading entry used for anchor ids and [TOC] expansion.
type Heading struct {
	ID    string
	Text  string
	Level int
}

// RenderResult wraps the HTML fragment and extracted headings.
type RenderResult struct {
	HTML     []byte
	Headings []Heading
}

// Renderer transforms markdown sources into HTML fragments.
type Renderer struct {
	md goldmark.Markdown
}

// New constructs a renderer with the extensions the documentation relies on:
// GFM tables, fenced code with syntax-highlight classes, lenient line breaks,
// and YAML front matter stripping. classPrefix namespaces the highlighter's
// CSS classes.
func New(classPrefix string) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.DefinitionList,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
					chromahtml.WithAllClasses(true),
					chromahtml.ClassPrefix(classPrefix),
					chromahtml.PreventSurroundingPre(true),
				),
				highlighting.WithWrapperRenderer(codeWrapper(classPrefix)),
			),
			meta.Meta,
		),
		goldmark.WithParserOptions(
			parser.WithAttribute(),
		),
		goldmark.WithRendererOptions(
			htmlRenderer.WithUnsafe(),
			htmlRenderer.WithHardWraps(),
		),
	)

	return &Renderer{md: md}
}

// Render converts the provided markdown into an HTML fragment. Diagram fences
// are rewritten before parsing, heading ids are assigned during an AST walk,
// and a standalone [TOC] paragraph is expanded from the collected headings.
func (r *Renderer) Render(src []byte) (*RenderResult, error) {
	src = rewriteDiagrams(src)

	reader := text.NewReader(src)
	doc := r.md.Parser().Parse(reader)

	headings := make([]Heading, 0, 16)
	slugCounts := make(map[string]int)

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		node, ok := n.(*ast.Heading)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		attr, _ := node.AttributeString("id")
		text := extractText(node, src)
		id := attributeToString(attr)
		if id == "" {
			base := slugify(text)
			count := slugCounts[base]
			if count > 0 {
				id = fmt.Sprintf("%s-%d", base, count)
			} else {
				id = base
			}
			slugCounts[base] = count + 1
			node.SetAttributeString("id", []byte(id))
		} else {
			slugCounts[id]++
		}
		headings = append(headings, Heading{ID: id, Text: text, Level: node.Level})
		return ast.WalkContinue, nil
	})

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, src, doc); err != nil {
		return nil, err
	}

	fragment := expandTOCMarker(buf.Bytes(), headings)
	return &RenderResult{HTML: fragment, Headings: headings}, nil
}

const diagramClass = "mermaid"

var diagramFence = regexp.MustCompile("(?s)```" + diagramClass + "[ \t]*\r?\n(.*?)\r?\n[ \t]*```")

// rewriteDiagrams converts ```mermaid fences into container divs the
// client-side diagram library hydrates at page load. Runs before markdown
// parsing so the fence body passes through verbatim as a raw HTML block.
func rewriteDiagrams(src []byte) []byte {
	return diagramFence.ReplaceAllFunc(src, func(block []byte) []byte {
		body := bytes.TrimSpace(diagramFence.FindSubmatch(block)[1])
		var out bytes.Buffer
		out.Grow(len(body) + 32)
		out.WriteString(`<div class="` + diagramClass + "\">\n")
		out.Write(body)
		out.WriteString("\n</div>")
		return out.Bytes()
	})
}

var tocMarker = []byte("<p>[TOC]</p>")

// expandTOCMarker replaces the first paragraph consisting solely of [TOC]
// with a nested list of the document's headings.
func expandTOCMarker(fragment []byte, headings []Heading) []byte {
	if !bytes.Contains(fragment, tocMarker) {
		return fragment
	}
	return bytes.Replace(fragment, tocMarker, []byte(tocHTML(headings)), 1)
}

func tocHTML(headings []Heading) string {
	if len(headings) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(`<div class="toc">`)
	open := 0
	last := 0
	for _, h := range headings {
		switch {
		case open == 0:
			sb.WriteString("<ul>")
			open = 1
		case h.Level > last:
			sb.WriteString("<ul>")
			open++
		case h.Level < last:
			for lvl := last; lvl > h.Level && open > 1; lvl-- {
				sb.WriteString("</li></ul>")
				open--
			}
			sb.WriteString("</li>")
		default:
			sb.WriteString("</li>")
		}
		fmt.Fprintf(&sb, `<li><a href="#%s">%s</a>`, h.ID, html.EscapeString(h.Text))
		last = h.Level
	}
	for ; open > 0; open-- {
		sb.WriteString("</li></ul>")
	}
	sb.WriteString("</div>")
	return sb.String()
}

func extractText(root ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if n == root {
			return ast.WalkContinue, nil
		}
		if text, ok := n.(*ast.Text); ok && entering {
			sb.Write(text.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

func attributeToString(value interface{}) string {
	switch v := value.(type) {
	case []byte:
		return string(v)
	case string:
		return v
	default:
		return ""
	}
}

func slugify(input string) string {
	// NFD decomposition lets accented heading text reduce to plain ASCII
	// anchors; combining marks are dropped below.
	input = norm.NFD.String(strings.ToLower(strings.TrimSpace(input)))
	if input == "" {
		return "section"
	}
	var sb strings.Builder
	lastDash := false
	for _, r := range input {
		switch {
		case unicode.Is(unicode.Mn, r):
			// Combining mark left over from decomposition.
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '-' || r == '_' || r == '.':
			if sb.Len() == 0 || lastDash {
				continue
			}
			sb.WriteByte('-')
			lastDash = true
		default:
			// Skip other characters
		}
	}
	slug := strings.Trim(sb.String(), "-")
	if slug == "" {
		return "section"
	}
	return slug
}

func codeWrapper(classPrefix string) highlighting.WrapperRenderer {
	return func(w util.BufWriter, ctx highlighting.CodeBlockContext, entering bool) {
		lang := "text"
		if raw, ok := ctx.Language(); ok && len(raw) > 0 {
			lang = string(raw)
		}
		lang = string(util.EscapeHTML([]byte(lang)))
		if entering {
			_, _ = fmt.Fprintf(w, `<pre tabindex="0" class="%[1]schroma %[1]scode language-%[2]s" data-lang="%[2]s"><code class="language-%[2]s" data-lang="%[2]s">`, classPrefix, lang)
			return
		}
		_, _ = w.WriteString("</code></pre>\n")
	}
}
