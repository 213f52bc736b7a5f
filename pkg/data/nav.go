package data

// FrontMatter carries the display metadata attached to a navigation node.
// Weight drives sibling ordering, zero when absent.
type FrontMatter struct {
	Type        string  `json:"type,omitempty"`
	Title       string  `json:"title,omitempty"`
	LinkTitle   string  `json:"linkTitle,omitempty"`
	Weight      float64 `json:"weight,omitempty"`
	Description string  `json:"description,omitempty"`
}

// NavNode is one node of the side-menu tree written to side-menu.json.
// The root node is synthetic and has an empty path; paths are slash-joined
// and unique within the tree.
type NavNode struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Path        string      `json:"path"`
	Children    []*NavNode  `json:"children"`
	FrontMatter FrontMatter `json:"frontMatter"`
}
