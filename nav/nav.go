// Package nav defines the static navigation tree that drives the site build.
//
// The tree is fixed at configuration time: a node with children is a folder
// grouping label, any other node is a page pointing at one Markdown source.
// Nothing mutates the tree after program start.
package nav

// Node is a single navigation entry.
type Node struct {
	Title    string
	Path     string // docs-relative Markdown path; empty for folders
	Children []Node
}

// IsFolder reports whether the node groups child entries instead of linking a page.
func (n Node) IsFolder() bool {
	return len(n.Children) > 0
}

// Walk visits every page node depth-first, in configuration order.
func Walk(nodes []Node, fn func(page Node)) {
	for _, node := range nodes {
		if node.IsFolder() {
			Walk(node.Children, fn)
			continue
		}
		if node.Path != "" {
			fn(node)
		}
	}
}
