package library

import (
	"sort"
	"strings"
)

// Node IDs for the fixed tree nodes. Folder nodes use "asset:" followed by
// the slash-joined folder path; entry leaves use the entry's UUID string.
const (
	RootNodeID  = "root"
	LocalNodeID = "local"
)

// Node represents a folder or entry in the library tree.
type Node struct {
	// ID identifies the node: RootNodeID for the root, "asset:<path>"
	// for folders, LocalNodeID for the local group, and the entry UUID
	// for leaves.
	ID string

	// Name is the display name.
	Name string

	// IsDir marks folder nodes.
	IsDir bool

	// Size is the entry size in bytes (leaves only).
	Size int64

	// EntryCount and TotalSize aggregate the entries underneath a
	// folder node.
	EntryCount int
	TotalSize  int64

	// Tree structure
	Children []*Node
	Parent   *Node
}

// AddChild adds a child node and sets this node as the child's parent.
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Depth returns the depth of this node from the root (root = 0).
func (n *Node) Depth() int {
	depth := 0
	current := n.Parent
	for current != nil {
		depth++
		current = current.Parent
	}
	return depth
}

// Flatten returns the node and all descendants in depth-first display order.
func (n *Node) Flatten() []*Node {
	result := []*Node{n}
	for _, child := range n.Children {
		result = append(result, child.Flatten()...)
	}
	return result
}

// Tree arranges the library into a folder tree. Asset entries nest under
// one folder node per path segment; local entries group under a "Local"
// node. Children are sorted by name ascending at every level, and folder
// nodes carry recursive entry counts and sizes.
func (l *Library) Tree() *Node {
	return BuildTree(l.entries)
}

// BuildTree builds the folder tree for an arbitrary entry slice, such as
// a filtered view of the library.
func BuildTree(entries []Entry) *Node {
	root := &Node{ID: RootNodeID, Name: "Library", IsDir: true}

	// Map of node ID -> node for folder reuse
	nodes := map[string]*Node{RootNodeID: root}

	var locals []Entry
	for _, entry := range entries {
		if entry.Origin == OriginLocal {
			locals = append(locals, entry)
			continue
		}

		parent := root
		var folderPath strings.Builder
		for _, segment := range entry.Folder {
			if folderPath.Len() > 0 {
				folderPath.WriteByte('/')
			}
			folderPath.WriteString(segment)
			parent = ensureChild(nodes, parent, "asset:"+folderPath.String(), segment)
		}

		parent.AddChild(&Node{
			ID:   entry.ID.String(),
			Name: entry.Name,
			Size: entry.Size,
		})
	}

	if len(locals) > 0 {
		localNode := ensureChild(nodes, root, LocalNodeID, "Local")
		for _, entry := range locals {
			localNode.AddChild(&Node{
				ID:   entry.ID.String(),
				Name: entry.Name,
				Size: entry.Size,
			})
		}
	}

	aggregate(root)
	sortChildren(root)

	return root
}

// ensureChild returns the identified child of parent, creating it if needed.
func ensureChild(nodes map[string]*Node, parent *Node, id, name string) *Node {
	if n, ok := nodes[id]; ok {
		return n
	}

	n := &Node{ID: id, Name: name, IsDir: true}
	parent.AddChild(n)
	nodes[id] = n
	return n
}

// aggregate computes EntryCount and TotalSize for all folder nodes.
func aggregate(node *Node) (totalSize int64, totalCount int) {
	if !node.IsDir {
		return node.Size, 1
	}

	for _, child := range node.Children {
		size, count := aggregate(child)
		totalSize += size
		totalCount += count
	}

	node.TotalSize = totalSize
	node.EntryCount = totalCount

	return totalSize, totalCount
}

// sortChildren sorts all children recursively by name ascending.
// Folders come before entries on name ties.
func sortChildren(node *Node) {
	if len(node.Children) == 0 {
		return
	}

	sort.Slice(node.Children, func(i, j int) bool {
		a, b := node.Children[i], node.Children[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.IsDir && !b.IsDir
	})

	for _, child := range node.Children {
		sortChildren(child)
	}
}
