// Package skilltree holds skills in an arbitrary-branching tree. Nodes live in
// a slice and point at each other by index, so a node never owns its parent
// and the tree never owns the skills it references.
package skilltree

import (
	"github.com/KirkDiggler/skill-arena/internal/entities/skills"
	arenaerr "github.com/KirkDiggler/skill-arena/internal/errors"
)

// NodeID indexes a node in its tree
type NodeID int

// NoNode is returned when there is no node to return
const NoNode NodeID = -1

type node struct {
	skill    *skills.Skill
	parent   NodeID
	children []NodeID
	depth    int
}

// Tree is a skill tree with at most one root
type Tree struct {
	nodes []node
	root  NodeID
}

// Visitor is called for each node during traversal
type Visitor func(id NodeID, skill *skills.Skill)

// New creates an empty tree
func New() *Tree {
	return &Tree{root: NoNode}
}

// NewWithRoot creates a tree whose root references skill
func NewWithRoot(skill *skills.Skill) *Tree {
	t := New()
	t.root = t.add(skill, NoNode)
	return t
}

func (t *Tree) add(skill *skills.Skill, parent NodeID) NodeID {
	id := NodeID(len(t.nodes))
	depth := 0
	if parent != NoNode {
		depth = t.nodes[parent].depth + 1
		t.nodes[parent].children = append(t.nodes[parent].children, id)
	}
	t.nodes = append(t.nodes, node{skill: skill, parent: parent, depth: depth})
	return id
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Root returns the root node, or NoNode for an empty tree
func (t *Tree) Root() NodeID {
	return t.root
}

// IsEmpty reports whether the tree has no root
func (t *Tree) IsEmpty() bool {
	return t.root == NoNode
}

// Skill returns the skill referenced by id
func (t *Tree) Skill(id NodeID) *skills.Skill {
	if !t.valid(id) {
		return nil
	}
	return t.nodes[id].skill
}

// Parent returns the parent of id, NoNode for the root
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.valid(id) {
		return NoNode
	}
	return t.nodes[id].parent
}

// Children returns the children of id in insertion order
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.valid(id) {
		return nil
	}
	return append([]NodeID(nil), t.nodes[id].children...)
}

// Depth returns the number of edges between id and the root
func (t *Tree) Depth(id NodeID) int {
	if !t.valid(id) {
		return -1
	}
	return t.nodes[id].depth
}

// Len counts the nodes reachable from the root
func (t *Tree) Len() int {
	n := 0
	t.TraverseDFS(func(NodeID, *skills.Skill) { n++ })
	return n
}

// InsertUnder attaches skill below the first pre-order node whose skill is
// named parentName. On an empty tree the skill becomes the root whatever the name.
func (t *Tree) InsertUnder(parentName string, skill *skills.Skill) (NodeID, error) {
	if t.IsEmpty() {
		t.root = t.add(skill, NoNode)
		return t.root, nil
	}

	parent, found := t.FindByName(parentName)
	if !found {
		return NoNode, arenaerr.NotFoundf("no skill named %q in tree", parentName).
			WithMeta("parent", parentName)
	}

	return t.add(skill, parent), nil
}

// FindByName returns the first node in pre-order whose skill has the name
func (t *Tree) FindByName(name string) (NodeID, bool) {
	if t.IsEmpty() {
		return NoNode, false
	}
	return t.find(t.root, name)
}

func (t *Tree) find(id NodeID, name string) (NodeID, bool) {
	if sk := t.nodes[id].skill; sk != nil && sk.Name == name {
		return id, true
	}
	for _, child := range t.nodes[id].children {
		if found, ok := t.find(child, name); ok {
			return found, true
		}
	}
	return NoNode, false
}

// TraverseDFS visits every reachable node in pre-order, root first
func (t *Tree) TraverseDFS(visit Visitor) {
	if t.IsEmpty() {
		return
	}
	t.dfs(t.root, visit)
}

func (t *Tree) dfs(id NodeID, visit Visitor) {
	visit(id, t.nodes[id].skill)
	for _, child := range t.nodes[id].children {
		t.dfs(child, visit)
	}
}

// Descriptions collects skill descriptions in pre-order
func (t *Tree) Descriptions() []string {
	var out []string
	t.TraverseDFS(func(_ NodeID, sk *skills.Skill) {
		if sk != nil {
			out = append(out, sk.Description())
		}
	})
	return out
}

// RemoveChild detaches every direct child of parent whose skill has the name,
// together with its subtree. Detached nodes stay in the arena but are no
// longer reachable from the root.
func (t *Tree) RemoveChild(parent NodeID, name string) bool {
	if !t.valid(parent) {
		return false
	}

	p := &t.nodes[parent]
	kept := p.children[:0]
	for _, child := range p.children {
		if sk := t.nodes[child].skill; sk != nil && sk.Name == name {
			t.nodes[child].parent = NoNode
			continue
		}
		kept = append(kept, child)
	}

	removed := len(kept) != len(p.children)
	p.children = kept
	return removed
}
