package grammar

import "strconv"

// Node is one element of the abstract system tree. Parent is a back-reference
// for traversal only.
type Node struct {
	Type     NodeType `json:"type"`
	Symbol   Symbol   `json:"symbol"`
	ID       string   `json:"id"`
	Index    int      `json:"index"`
	Depth    int      `json:"depth"`
	Parent   *Node    `json:"-"`
	Children []*Node  `json:"children,omitempty"`

	childCounts map[Symbol]int
}

// addChild creates the next child for a concrete symbol. The child's ID is the
// parent path extended with "<symbol>:<index>", where the index counts
// siblings of the same symbol.
func (n *Node) addChild(symbol Symbol) *Node {
	nodeType, _ := symbol.NodeType()
	if n.childCounts == nil {
		n.childCounts = make(map[Symbol]int)
	}
	index := n.childCounts[symbol]
	n.childCounts[symbol] = index + 1

	segment := string(symbol) + ":" + strconv.Itoa(index)
	id := segment
	if n.Parent != nil {
		id = n.ID + "/" + segment
	}

	child := &Node{
		Type:   nodeType,
		Symbol: symbol,
		ID:     id,
		Index:  index,
		Depth:  n.Depth + 1,
		Parent: n,
	}
	n.Children = append(n.Children, child)
	return child
}

// ChildrenOf returns the direct children of the given type, in creation order.
func (n *Node) ChildrenOf(nodeType NodeType) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Type == nodeType {
			out = append(out, c)
		}
	}
	return out
}

type Tree struct {
	Root     *Node `json:"root"`
	MaxDepth int   `json:"max_depth"`
}

// Walk visits every node in pre-order (parent before children, children in
// creation order). It stops at the first error returned by fn.
func (t *Tree) Walk(fn func(*Node) error) error {
	if t == nil || t.Root == nil {
		return nil
	}
	stack := []*Node{t.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := fn(n); err != nil {
			return err
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return nil
}

// Nodes returns every node in walk order.
func (t *Tree) Nodes() []*Node {
	var out []*Node
	_ = t.Walk(func(n *Node) error {
		out = append(out, n)
		return nil
	})
	return out
}

func (t *Tree) CountByType() map[NodeType]int {
	counts := make(map[NodeType]int)
	_ = t.Walk(func(n *Node) error {
		counts[n.Type]++
		return nil
	})
	return counts
}

// Depth returns the deepest node depth in the tree.
func (t *Tree) Depth() int {
	deepest := 0
	_ = t.Walk(func(n *Node) error {
		if n.Depth > deepest {
			deepest = n.Depth
		}
		return nil
	})
	return deepest
}
