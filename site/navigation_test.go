package site

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rotoclear/camdocs/nav"
)

func testTree() []nav.Node {
	return []nav.Node{
		{Title: "Home", Path: "index.md"},
		{
			Title: "API Reference",
			Children: []nav.Node{
				{Title: "WebSocket API", Path: "api/websocket-api.md"},
				{Title: "HTTP API", Path: "api/http-api.md"},
			},
		},
	}
}

func TestRenderNavigation_ExactlyOneActiveEntry(t *testing.T) {
	markup := renderNavigation(testTree(), "api/websocket-api.html", 0, "../")

	require.Equal(t, 1, strings.Count(markup, " active\""))
	require.Contains(t, markup, `<li class="nav-item depth-1 active">`)
	require.Contains(t, markup, `<a href="../api/websocket-api.html">WebSocket API</a>`)
	// The sibling stays unmarked.
	require.Contains(t, markup, `<li class="nav-item depth-1">`)
}

func TestRenderNavigation_NoActiveEntryForForeignPath(t *testing.T) {
	markup := renderNavigation(testTree(), "somewhere/else.html", 0, "./")
	require.NotContains(t, markup, " active\"")
}

func TestRenderNavigation_FolderRendersLabelAndSublist(t *testing.T) {
	markup := renderNavigation(testTree(), "index.html", 0, "./")

	require.Contains(t, markup, `<li class="nav-folder depth-0">`)
	require.Contains(t, markup, `<span class="folder-title">API Reference</span>`)
	require.Contains(t, markup, `<ul class="nav-submenu">`)
	require.NotContains(t, markup, `<a href="./API Reference`)
}

func TestRenderNavigation_LinksCarryBasePathPrefix(t *testing.T) {
	markup := renderNavigation(testTree(), "api/http-api.html", 0, "../")

	require.Contains(t, markup, `href="../index.html"`)
	require.Contains(t, markup, `href="../api/http-api.html"`)
}

func TestRenderNavigation_PreservesConfigurationOrder(t *testing.T) {
	markup := renderNavigation(testTree(), "index.html", 0, "./")

	home := strings.Index(markup, "Home")
	ws := strings.Index(markup, "WebSocket API")
	http := strings.Index(markup, "HTTP API")
	require.True(t, home < ws && ws < http, "entries out of order")
}

func TestRenderNavigation_EscapesTitles(t *testing.T) {
	tree := []nav.Node{
		{
			Title: "Storage & Backup",
			Children: []nav.Node{
				{Title: "a < b", Path: "misc/compare.md"},
			},
		},
	}

	markup := renderNavigation(tree, "index.html", 0, "./")
	require.Contains(t, markup, "Storage &amp; Backup")
	require.Contains(t, markup, "a &lt; b")
}
