package dom

import (
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/AYColumbia/viberowser/css"
)

// These tests exercise structural invariants the node graph, index maps,
// and traversal APIs are expected to hold under mutation, independent of
// any single example tree.

// P1: every child is reachable from its parent's first/last child by
// walking previous_sibling/next_sibling.
func TestInvariantSiblingChainReachesEveryChild(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("ul")
	doc.AsNode().AppendChild(parent.AsNode())

	var children []*Node
	for i := 0; i < 5; i++ {
		li := doc.CreateElement("li")
		parent.AsNode().AppendChild(li.AsNode())
		children = append(children, li.AsNode())
	}

	require.Equal(t, children[0], parent.AsNode().FirstChild())
	require.Equal(t, children[len(children)-1], parent.AsNode().LastChild())

	for _, child := range children {
		require.True(t, reachableBySiblingWalk(parent.AsNode().FirstChild(), child, true))
		require.True(t, reachableBySiblingWalk(parent.AsNode().LastChild(), child, false))
	}
}

func reachableBySiblingWalk(from, target *Node, forward bool) bool {
	for n := from; n != nil; {
		if n == target {
			return true
		}
		if forward {
			n = n.NextSibling()
		} else {
			n = n.PreviousSibling()
		}
	}
	return false
}

// P2: class_map agrees with each element's own class list in both
// directions.
func TestInvariantClassMapAgreesWithClassList(t *testing.T) {
	doc := NewDocument()
	body := doc.CreateElement("body")
	doc.AsNode().AppendChild(body.AsNode())

	a := doc.CreateElement("div")
	a.SetAttribute("class", "item active")
	b := doc.CreateElement("div")
	b.SetAttribute("class", "item")
	body.AsNode().AppendChild(a.AsNode())
	body.AsNode().AppendChild(b.AsNode())

	itemElements := doc.GetElementsByClassName("item").ToSlice()
	require.ElementsMatch(t, []*Element{a, b}, itemElements)

	activeElements := doc.GetElementsByClassName("active").ToSlice()
	require.ElementsMatch(t, []*Element{a}, activeElements)

	for _, el := range itemElements {
		require.True(t, el.ClassList().Contains("item"))
	}

	classMap := doc.AsNode().documentData.classMap
	require.Len(t, classMap["item"], 2)
	require.Contains(t, classMap["item"], a.AsNode())
	require.Contains(t, classMap["item"], b.AsNode())
	require.Len(t, classMap["active"], 1)
	require.Contains(t, classMap["active"], a.AsNode())
	for tok, set := range classMap {
		for n := range set {
			require.True(t, (*Element)(n).ClassList().Contains(tok))
		}
	}
}

// P3: id_map reflects the first document-order element carrying a given id
// among attached elements.
func TestInvariantIDMapTracksFirstDocumentOrderElement(t *testing.T) {
	doc := NewDocument()
	body := doc.CreateElement("body")
	doc.AsNode().AppendChild(body.AsNode())

	first := doc.CreateElement("div")
	first.SetAttribute("id", "dup")
	second := doc.CreateElement("div")
	second.SetAttribute("id", "dup")
	body.AsNode().AppendChild(first.AsNode())
	body.AsNode().AppendChild(second.AsNode())

	require.Equal(t, first, doc.GetElementById("dup"))

	body.AsNode().RemoveChild(first.AsNode())
	require.Equal(t, second, doc.GetElementById("dup"))
}

// P4: the class bloom filter never false-negatives a class actually on the
// element.
func TestInvariantClassBloomHasNoFalseNegatives(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	el.SetAttribute("class", "alpha beta gamma")

	for _, class := range []string{"alpha", "beta", "gamma"} {
		require.True(t, el.ClassList().Contains(class))
		require.True(t, el.AsNode().elementData.classBloom.mayContain(class))
	}
}

// P5: get_elements_by_tag_name returns document pre-order, no duplicates,
// and is stable across repeated calls on an unchanged tree.
func TestInvariantGetElementsByTagNameIsStableDocumentOrder(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	doc.AsNode().AppendChild(root.AsNode())

	a := doc.CreateElement("span")
	b := doc.CreateElement("span")
	c := doc.CreateElement("span")
	root.AsNode().AppendChild(a.AsNode())
	a.AsNode().AppendChild(b.AsNode())
	root.AsNode().AppendChild(c.AsNode())

	want := []*Element{a, b, c}
	require.Equal(t, want, doc.GetElementsByTagName("span").ToSlice())
	require.Equal(t, want, doc.GetElementsByTagName("span").ToSlice())

	seen := map[*Element]bool{}
	for _, el := range doc.GetElementsByTagName("*").ToSlice() {
		require.False(t, seen[el], "duplicate element in GetElementsByTagName(*)")
		seen[el] = true
	}
}

// P6: query_selector_all(s) is always a subset of query_selector_all("*"),
// in document order.
func TestInvariantQuerySelectorAllIsSubsetOfWildcard(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	doc.AsNode().AppendChild(root.AsNode())

	for i := 0; i < 6; i++ {
		child := doc.CreateElement("item")
		if i%2 == 0 {
			child.SetAttribute("class", "even")
		}
		root.AsNode().AppendChild(child.AsNode())
	}

	all := root.QuerySelectorAll("*").ToSlice()
	evens := root.QuerySelectorAll(".even").ToSlice()

	allSet := map[*Node]bool{}
	for _, n := range all {
		allSet[n] = true
	}
	for _, n := range evens {
		require.True(t, allSet[n], "QuerySelectorAll(.even) produced a node absent from QuerySelectorAll(*)")
	}
	require.True(t, len(evens) <= len(all))
}

// P7: element.query_selector(s) is non-nil iff query_selector_all(s) is
// non-empty.
func TestInvariantQuerySelectorAgreesWithQuerySelectorAll(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	doc.AsNode().AppendChild(root.AsNode())
	child := doc.CreateElement("span")
	child.SetAttribute("class", "tag")
	root.AsNode().AppendChild(child.AsNode())

	for _, selector := range []string{".tag", ".missing", "span", "p"} {
		first := root.QuerySelector(selector)
		all := root.QuerySelectorAll(selector)
		require.Equal(t, first != nil, all.Length() > 0, "selector %q", selector)
	}
}

// P8: clone_node(deep=true) reproduces structure, attributes, and text.
func TestInvariantCloneNodeDeepReproducesStructure(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	root.SetAttribute("id", "r")
	child := doc.CreateElement("span")
	child.SetAttribute("class", "leaf")
	text := doc.CreateTextNode("hello")

	root.AsNode().AppendChild(child.AsNode())
	child.AsNode().AppendChild(text)

	clone := (*Element)(root.AsNode().CloneNode(true))

	require.Equal(t, root.TagName(), clone.TagName())
	require.Equal(t, root.GetAttribute("id"), clone.GetAttribute("id"))
	require.Equal(t, 1, clone.AsNode().ChildNodes().Length())

	clonedChild := (*Element)(clone.AsNode().FirstChild())
	require.Equal(t, child.TagName(), clonedChild.TagName())
	require.Equal(t, child.GetAttribute("class"), clonedChild.GetAttribute("class"))
	require.Equal(t, 1, clonedChild.AsNode().ChildNodes().Length())
	require.Equal(t, text.TextContent(), clonedChild.AsNode().FirstChild().TextContent())

	require.NotEqual(t, root.AsNode(), clone.AsNode())
	require.NotEqual(t, child.AsNode(), clonedChild.AsNode())
}

// P9: a NodeIterator whose reference sits inside a removed subtree keeps a
// reference within root and keeps producing defined next_node/previous_node
// results that eventually reach nil.
func TestInvariantNodeIteratorSurvivesSubtreeRemoval(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	doc.AsNode().AppendChild(root.AsNode())

	branch := doc.CreateElement("branch")
	leaf := doc.CreateElement("leaf")
	branch.AsNode().AppendChild(leaf.AsNode())
	root.AsNode().AppendChild(branch.AsNode())

	tail := doc.CreateElement("tail")
	root.AsNode().AppendChild(tail.AsNode())

	it := doc.CreateNodeIterator(root.AsNode(), uint32(ShowAll), nil)
	require.Equal(t, root.AsNode(), it.NextNode())
	require.Equal(t, branch.AsNode(), it.NextNode())
	require.Equal(t, leaf.AsNode(), it.NextNode())

	root.AsNode().RemoveChild(branch.AsNode())

	require.True(t, isInclusiveAncestor(root.AsNode(), it.ReferenceNode()) || it.ReferenceNode() == root.AsNode())

	var visited []*Node
	for n := it.ReferenceNode(); ; {
		n = it.NextNode()
		if n == nil {
			break
		}
		visited = append(visited, n)
	}
	require.Nil(t, it.NextNode())
	require.Equal(t, []*Node{tail.AsNode()}, visited)
}

// P10: append_child then remove_child restores node count, id_map
// membership, and the node's attribute set to their pre-operation values.
func TestInvariantAppendThenRemoveRoundTrips(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	doc.AsNode().AppendChild(root.AsNode())

	before := countNodes(root.AsNode())
	idBefore := doc.GetElementById("roundtrip")

	child := doc.CreateElement("div")
	child.SetAttribute("id", "roundtrip")
	child.SetAttribute("data-x", "1")
	attrsBefore := map[string]string{"id": "roundtrip", "data-x": "1"}

	root.AsNode().AppendChild(child.AsNode())
	require.Equal(t, child, doc.GetElementById("roundtrip"))

	root.AsNode().RemoveChild(child.AsNode())

	require.Equal(t, before, countNodes(root.AsNode()))
	require.Equal(t, idBefore, doc.GetElementById("roundtrip"))
	for name, value := range attrsBefore {
		require.Equal(t, value, child.GetAttribute(name))
	}
}

func countNodes(n *Node) int {
	count := 1
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		count += countNodes(c)
	}
	return count
}
