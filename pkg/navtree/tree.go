package navtree

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fabric-jumpstart/jumpgen/pkg/data"
)

const (
	// CatalogBranch is the fixed branch holding one leaf per listed
	// scenario.
	CatalogBranch = "jumpstart"

	catalogTitle  = "Jumpstart Scenarios"
	catalogWeight = 2
)

// Build assembles the side-menu tree: a synthetic root with empty path,
// the fixed catalog branch, and one leaf per listed scenario weighted by
// its numeric id. Unlisted scenarios are skipped.
func Build(scenarios []data.Scenario) *data.NavNode {
	leaves := []*data.NavNode{}
	for _, sc := range scenarios {
		if !sc.IncludeInListing {
			continue
		}
		leaves = append(leaves, &data.NavNode{
			Name:     sc.LogicalID,
			Type:     "directory",
			Path:     CatalogBranch + "/" + sc.LogicalID,
			Children: []*data.NavNode{},
			FrontMatter: data.FrontMatter{
				Type:        "docs",
				Title:       sc.Name,
				LinkTitle:   sc.Name,
				Weight:      float64(sc.ID),
				Description: sc.Description,
			},
		})
	}

	return &data.NavNode{
		Name:        "docs",
		Type:        "directory",
		Path:        "",
		FrontMatter: data.FrontMatter{Type: "docs"},
		Children: []*data.NavNode{
			{
				Name: CatalogBranch,
				Type: "directory",
				Path: CatalogBranch,
				FrontMatter: data.FrontMatter{
					Type:      "docs",
					Title:     catalogTitle,
					LinkTitle: catalogTitle,
					Weight:    catalogWeight,
				},
				Children: leaves,
			},
		},
	}
}

// SortTree stable-sorts every node's children ascending by frontmatter
// weight, recursively. Absent weights count as zero; ties keep input
// order. Sorting an already sorted tree is a no-op.
func SortTree(node *data.NavNode) *data.NavNode {
	if node == nil {
		return nil
	}
	sort.SliceStable(node.Children, func(i, j int) bool {
		return node.Children[i].FrontMatter.Weight < node.Children[j].FrontMatter.Weight
	})
	for _, child := range node.Children {
		SortTree(child)
	}
	return node
}

// Filter rebuilds the tree keeping only leaves whose name is in slugs.
// Branches keep their place while any filtered descendant survives;
// branches left without children are dropped. A nil slug set means no
// filter and returns the tree untouched. The input tree is never mutated.
func Filter(node *data.NavNode, slugs map[string]bool) *data.NavNode {
	if slugs == nil {
		return node
	}
	return filterNode(node, slugs)
}

func filterNode(node *data.NavNode, slugs map[string]bool) *data.NavNode {
	if node == nil {
		return nil
	}

	if len(node.Children) == 0 {
		if slugs[node.Name] {
			leaf := *node
			return &leaf
		}
		return nil
	}

	children := []*data.NavNode{}
	for _, child := range node.Children {
		if filtered := filterNode(child, slugs); filtered != nil {
			children = append(children, filtered)
		}
	}
	if len(children) == 0 {
		return nil
	}

	branch := *node
	branch.Children = children
	return &branch
}

// FindNode walks the tree for the node with the given slash-joined path.
// Separators are normalised, so windows-style paths resolve too.
func FindNode(node *data.NavNode, path string) *data.NavNode {
	if node == nil {
		return nil
	}
	if normalizePath(node.Path) == normalizePath(path) {
		return node
	}
	for _, child := range node.Children {
		if found := FindNode(child, path); found != nil {
			return found
		}
	}
	return nil
}

// Route is one flattened navigation target used for static path
// generation.
type Route struct {
	Path  string
	Title string
}

// ExtractRoutes flattens the tree into path/title pairs, depth first.
func ExtractRoutes(node *data.NavNode) []Route {
	var routes []Route
	var walk func(n *data.NavNode)
	walk = func(n *data.NavNode) {
		routes = append(routes, Route{Path: normalizePath(n.Path), Title: NodeTitle(n)})
		for _, child := range n.Children {
			walk(child)
		}
	}
	if node != nil {
		walk(node)
	}
	return routes
}

// Breadcrumbs returns the root-to-node trail for the given path, or nil
// when the path is not in the tree.
func Breadcrumbs(node *data.NavNode, path string) []Route {
	if node == nil {
		return nil
	}
	if normalizePath(node.Path) == normalizePath(path) {
		return []Route{{Path: node.Path, Title: NodeTitle(node)}}
	}
	for _, child := range node.Children {
		if trail := Breadcrumbs(child, path); trail != nil {
			return append([]Route{{Path: node.Path, Title: NodeTitle(node)}}, trail...)
		}
	}
	return nil
}

// NodeTitle resolves the display title of a node: linkTitle wins over
// title, the path is the last resort.
func NodeTitle(node *data.NavNode) string {
	if node.FrontMatter.LinkTitle != "" {
		return node.FrontMatter.LinkTitle
	}
	if node.FrontMatter.Title != "" {
		return node.FrontMatter.Title
	}
	return node.Path
}

var frontmatterPattern = regexp.MustCompile(`(?s)---.*?---`)

// RemoveFrontmatter strips the leading frontmatter block from a markdown
// document.
func RemoveFrontmatter(text string) string {
	loc := frontmatterPattern.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[:loc[0]] + text[loc[1]:]
}

func normalizePath(path string) string {
	return strings.Trim(strings.ReplaceAll(path, "\\", "/"), "/")
}
