package nav

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWalk_VisitsPagesDepthFirstInOrder(t *testing.T) {
	tree := []Node{
		{Title: "Home", Path: "index.md"},
		{
			Title: "Guide",
			Children: []Node{
				{Title: "Setup", Path: "guide/setup.md"},
				{
					Title: "Advanced",
					Children: []Node{
						{Title: "Tuning", Path: "guide/advanced/tuning.md"},
					},
				},
				{Title: "Usage", Path: "guide/usage.md"},
			},
		},
		{Title: "FAQ", Path: "faq.md"},
	}

	var visited []string
	Walk(tree, func(page Node) {
		visited = append(visited, page.Path)
	})

	require.Equal(t, []string{
		"index.md",
		"guide/setup.md",
		"guide/advanced/tuning.md",
		"guide/usage.md",
		"faq.md",
	}, visited)
}

func TestWalk_SkipsFolderNodesAndEmptyPaths(t *testing.T) {
	tree := []Node{
		{Title: "Group", Children: []Node{{Title: "Page", Path: "page.md"}}},
		{Title: "Dangling"},
	}

	count := 0
	Walk(tree, func(page Node) {
		count++
		require.Equal(t, "page.md", page.Path)
	})
	require.Equal(t, 1, count)
}

func TestNode_IsFolder(t *testing.T) {
	require.True(t, Node{Title: "Group", Children: []Node{{}}}.IsFolder())
	require.False(t, Node{Title: "Page", Path: "page.md"}.IsFolder())
}

func TestTree_PagePathsUniqueAndMarkdown(t *testing.T) {
	seen := map[string]struct{}{}
	Walk(Tree, func(page Node) {
		require.True(t, strings.HasSuffix(page.Path, ".md"), "path %q must be markdown", page.Path)
		_, dup := seen[page.Path]
		require.False(t, dup, "duplicate page path %q", page.Path)
		seen[page.Path] = struct{}{}
	})
	require.NotEmpty(t, seen)
}
