package dom

// FilterResult is the result of running a NodeFilter against a candidate
// node, mirroring the DOM Standard's NodeFilter.FILTER_* constants.
type FilterResult int

const (
	// FilterAccept includes the node in the traversal result.
	FilterAccept FilterResult = 1
	// FilterReject excludes the node. For TreeWalker this also prunes the
	// node's entire subtree from traversal; for NodeIterator (which has no
	// notion of "subtree" in its flat view) it behaves exactly like Skip.
	FilterReject FilterResult = 2
	// FilterSkip excludes the node but still visits its children.
	FilterSkip FilterResult = 3
)

// NodeFilter decides whether a candidate node is accepted, rejected, or
// skipped during NodeIterator/TreeWalker traversal (spec §4.9-§4.10). A nil
// NodeFilter accepts every node that whatToShow admits.
type NodeFilter func(*Node) FilterResult

// acceptNode applies whatToShow and then filter to n, per the DOM
// Standard's "filter" algorithm.
func acceptNode(n *Node, whatToShow uint32, filter NodeFilter) FilterResult {
	if showBitFor(n.nodeType)&ShowMask(whatToShow) == 0 {
		return FilterSkip
	}
	if filter == nil {
		return FilterAccept
	}
	return filter(n)
}
