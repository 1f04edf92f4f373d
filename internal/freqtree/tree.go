// Package freqtree counts occurrences of phone numbers in an ordered binary search tree.
//
// The tree is deliberately unbalanced: keys are placed by plain lexicographic
// descent and never rotated, so inserting keys in sorted order degrades it
// into a list with O(n) depth.
package freqtree

// Node holds one distinct key. Count is at least 1.
type Node struct {
	Key   string
	Count int
	Left  *Node
	Right *Node
}

// Tree is not safe for concurrent use.
type Tree struct {
	root *Node
	size int
}

func New() *Tree {
	return &Tree{}
}

// InsertOrIncrement adds key with a count of 1, or bumps the count of the
// existing node. It returns the node that now holds key.
func (t *Tree) InsertOrIncrement(key string) *Node {
	link := &t.root
	for *link != nil {
		n := *link
		switch {
		case key == n.Key:
			n.Count++
			return n
		case key < n.Key:
			link = &n.Left
		default:
			link = &n.Right
		}
	}

	*link = &Node{Key: key, Count: 1}
	t.size++
	return *link
}

// Search returns the node for key, if any.
func (t *Tree) Search(key string) (*Node, bool) {
	n := t.root
	for n != nil {
		switch {
		case key == n.Key:
			return n, true
		case key < n.Key:
			n = n.Left
		default:
			n = n.Right
		}
	}
	return nil, false
}

// Count is a shortcut for Search(key).Count, returning 0 for absent keys.
func (t *Tree) Count(key string) int {
	if n, ok := t.Search(key); ok {
		return n.Count
	}
	return 0
}

// InOrder visits nodes in ascending key order until fn returns false.
func (t *Tree) InOrder(fn func(n *Node) bool) {
	var stack []*Node
	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.Left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		n = n.Right
	}
}

// Len is the number of distinct keys.
func (t *Tree) Len() int {
	return t.size
}

// Height is the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	type frame struct {
		n     *Node
		depth int
	}

	if t.root == nil {
		return 0
	}

	maxDepth := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > maxDepth {
			maxDepth = f.depth
		}
		if f.n.Left != nil {
			stack = append(stack, frame{f.n.Left, f.depth + 1})
		}
		if f.n.Right != nil {
			stack = append(stack, frame{f.n.Right, f.depth + 1})
		}
	}
	return maxDepth
}
