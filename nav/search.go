package nav

// Step advances from one node to a related node, reporting false when the
// chain is exhausted. Navigator method values such as nv.Parent and
// nv.PrevSibling are Steps.
type Step func(Node) (Node, bool)

// Find walks a chain of nodes from start, applying step repeatedly, and
// returns the first node satisfying pred. The start node itself is tested
// first. Returns false when the chain ends with no match.
func (nv *Navigator) Find(start Node, step Step, pred func(Node) bool) (Node, bool) {
	for n, ok := start, true; ok; n, ok = step(n) {
		if pred(n) {
			return n, true
		}
	}
	return Node{}, false
}

// FindAncestor returns the nearest node on c's ancestor chain satisfying
// pred, testing c itself first.
func (nv *Navigator) FindAncestor(c Node, pred func(Node) bool) (Node, bool) {
	return nv.Find(c, nv.Parent, pred)
}

// FindPreceding returns the nearest node on c's preceding-sibling chain
// satisfying pred, testing c itself first.
func (nv *Navigator) FindPreceding(c Node, pred func(Node) bool) (Node, bool) {
	return nv.Find(c, nv.PrevSibling, pred)
}
