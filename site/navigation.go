package site

import (
	"fmt"
	"html"
	"strings"

	"github.com/rotoclear/camdocs/nav"
)

// renderNavigation converts the navigation tree into the sidebar list markup.
// The page whose output path equals currentPath carries the active class;
// link targets are prefixed with basePath so nested pages resolve against the
// site root. Entries render in configuration order.
func renderNavigation(nodes []nav.Node, currentPath string, depth int, basePath string) string {
	var sb strings.Builder
	writeNavigation(&sb, nodes, currentPath, depth, basePath)
	return sb.String()
}

func writeNavigation(sb *strings.Builder, nodes []nav.Node, currentPath string, depth int, basePath string) {
	for _, node := range nodes {
		title := html.EscapeString(node.Title)
		if node.IsFolder() {
			fmt.Fprintf(sb, "<li class=\"nav-folder depth-%d\">\n", depth)
			fmt.Fprintf(sb, "<span class=\"folder-title\">%s</span>\n", title)
			sb.WriteString("<ul class=\"nav-submenu\">\n")
			writeNavigation(sb, node.Children, currentPath, depth+1, basePath)
			sb.WriteString("</ul>\n</li>\n")
			continue
		}

		outputPath := OutputPath(node.Path)
		active := ""
		if outputPath == currentPath {
			active = " active"
		}
		fmt.Fprintf(sb, "<li class=\"nav-item depth-%d%s\">\n", depth, active)
		fmt.Fprintf(sb, "<a href=\"%s%s\">%s</a>\n", basePath, outputPath, title)
		sb.WriteString("</li>\n")
	}
}
