package semantic

import (
	"fmt"
	"iter"

	"jsbind/internal/ast"
)

// SemanticNode mirrors one visited AST node.
type SemanticNode struct {
	Node   ast.Node
	Kind   ast.Kind
	Scope  ScopeID // scope that was current when the node was entered
	Flags  NodeFlags
	Parent NodeID
	// end is one past the last descendant; nodes are stored in preorder so
	// a subtree occupies [id, end).
	end NodeID
}

// Nodes is the append-only node store.
type Nodes struct {
	arena arena[SemanticNode]
	index map[ast.Node]NodeID
}

func newNodes(capacity int) *Nodes {
	return &Nodes{
		arena: newArena[SemanticNode]("nodes", capacity),
		index: make(map[ast.Node]NodeID, capacity),
	}
}

// add appends a child of parent. The cursor is owned by the builder.
func (n *Nodes) add(node ast.Node, parent NodeID, scope ScopeID, flags NodeFlags) NodeID {
	if parent.IsValid() && n.arena.at(uint32(parent)) == nil {
		panic(fmt.Errorf("node store: %w: parent %d of %s", errInvariant, parent, node.Kind()))
	}
	id := NodeID(n.arena.push(SemanticNode{
		Node:   node,
		Kind:   node.Kind(),
		Scope:  scope,
		Flags:  flags,
		Parent: parent,
	}))
	n.index[node] = id
	return id
}

// close records the end of the subtree rooted at id; called when the cursor
// leaves the node.
func (n *Nodes) close(id NodeID) {
	if sn := n.arena.at(uint32(id)); sn != nil {
		sn.end = NodeID(n.arena.last()) + 1
	}
}

// Len reports the number of nodes.
func (n *Nodes) Len() int { return n.arena.len() }

// Root returns the Program node id.
func (n *Nodes) Root() NodeID {
	if n.arena.len() == 0 {
		return NoNodeID
	}
	return 1
}

// Get returns the node or nil for an invalid id.
func (n *Nodes) Get(id NodeID) *SemanticNode { return n.arena.at(uint32(id)) }

// Kind returns the AST kind of a node.
func (n *Nodes) Kind(id NodeID) ast.Kind {
	if sn := n.Get(id); sn != nil {
		return sn.Kind
	}
	return ast.KindInvalid
}

// Parent returns the parent id; NoNodeID for the root.
func (n *Nodes) Parent(id NodeID) NodeID {
	if sn := n.Get(id); sn != nil {
		return sn.Parent
	}
	return NoNodeID
}

// ParentKind returns the kind of the parent node.
func (n *Nodes) ParentKind(id NodeID) ast.Kind {
	return n.Kind(n.Parent(id))
}

// Lookup finds the node id of an AST node visited by the builder.
func (n *Nodes) Lookup(node ast.Node) (NodeID, bool) {
	id, ok := n.index[node]
	return id, ok
}

// Ancestors yields the parent chain of id, nearest first, excluding id.
func (n *Nodes) Ancestors(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for p := n.Parent(id); p.IsValid(); p = n.Parent(p) {
			if !yield(p) {
				return
			}
		}
	}
}

// Children yields the direct children of id in source order.
func (n *Nodes) Children(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		sn := n.Get(id)
		if sn == nil {
			return
		}
		for c := id + 1; c < sn.end; {
			if !yield(c) {
				return
			}
			child := n.Get(c)
			if child == nil || child.end <= c {
				return
			}
			c = child.end
		}
	}
}

// Siblings yields the other children of id's parent, in source order.
func (n *Nodes) Siblings(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		parent := n.Parent(id)
		if !parent.IsValid() {
			return
		}
		for c := range n.Children(parent) {
			if c != id && !yield(c) {
				return
			}
		}
	}
}

// Contains reports whether id lies in the subtree rooted at ancestor.
func (n *Nodes) Contains(ancestor, id NodeID) bool {
	sn := n.Get(ancestor)
	return sn != nil && id >= ancestor && id < sn.end
}
