package dom

import (
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/AYColumbia/viberowser/css"
)

// S1: query_selector("#target") finds the first matching item; after that
// item is removed, the same query returns nil.
func TestScenarioS1QuerySelectorAfterRemoval(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	doc.AsNode().AppendChild(root.AsNode())

	target := doc.CreateElement("item")
	target.SetAttribute("id", "target")
	other := doc.CreateElement("item")
	root.AsNode().AppendChild(target.AsNode())
	root.AsNode().AppendChild(other.AsNode())

	found := root.QuerySelector("#target")
	require.Equal(t, target, found)

	root.AsNode().RemoveChild(target.AsNode())
	require.Nil(t, root.QuerySelector("#target"))
}

// S2: get_element_by_id finds an id assigned deep in a large sibling run,
// and query_selector("#t") reuses the same element via the compiled
// selector cache rather than reparsing on a second call.
func TestScenarioS2LargeSiblingRunIDLookupAndCache(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	doc.AsNode().AppendChild(root.AsNode())

	const n = 10000
	var target *Element
	for i := 0; i < n; i++ {
		span := doc.CreateElement("span")
		if i == 5000 {
			span.SetAttribute("id", "t")
			target = span
		}
		root.AsNode().AppendChild(span.AsNode())
	}

	require.Equal(t, target, doc.GetElementById("t"))

	first := doc.QuerySelector("#t")
	require.Equal(t, target, first)

	second := doc.QuerySelector("#t")
	require.Equal(t, target, second)
}

// S4: a subtree-scoped childList observer on root records one childList
// mutation when a node is appended to a grandchild.
func TestScenarioS4MutationObserverSubtreeChildList(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	doc.AsNode().AppendChild(root.AsNode())

	child := doc.CreateElement("child")
	root.AsNode().AppendChild(child.AsNode())
	grandchild := doc.CreateElement("grandchild")
	child.AsNode().AppendChild(grandchild.AsNode())

	mo := NewMutationObserver(nil)
	err := mo.Observe(root.AsNode(), MutationObserverInit{ChildList: true, Subtree: true})
	require.NoError(t, err)

	leaf := doc.CreateElement("leaf")
	grandchild.AsNode().AppendChild(leaf.AsNode())

	records := mo.TakeRecords()
	require.Len(t, records, 1)
	require.Equal(t, MutationChildList, records[0].Type)
	require.Equal(t, grandchild.AsNode(), records[0].Target)
	require.Len(t, records[0].AddedNodes, 1)
	require.Equal(t, leaf.AsNode(), records[0].AddedNodes[0])
}

// S6: a TreeWalker(root, SHOW_ELEMENT) whose filter rejects B1 hides B1's
// entire subtree (including C1); first_child() from root yields A1, and
// first_child() from A1 skips straight to B2.
func TestScenarioS6TreeWalkerFilterPrunesRejectedSubtree(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	doc.AsNode().AppendChild(root.AsNode())

	a1 := doc.CreateElement("a1")
	b1 := doc.CreateElement("b1")
	c1 := doc.CreateElement("c1")
	b2 := doc.CreateElement("b2")

	root.AsNode().AppendChild(a1.AsNode())
	a1.AsNode().AppendChild(b1.AsNode())
	b1.AsNode().AppendChild(c1.AsNode())
	a1.AsNode().AppendChild(b2.AsNode())

	rejectB1 := func(n *Node) FilterResult {
		if n == b1.AsNode() {
			return FilterReject
		}
		return FilterAccept
	}

	tw := doc.CreateTreeWalker(root.AsNode(), uint32(ShowElement), rejectB1)

	require.Equal(t, a1.AsNode(), tw.FirstChild())
	require.Equal(t, b2.AsNode(), tw.FirstChild())
}

// S8: get_elements_by_class_name("") and ("   ") both return empty
// collections rather than matching every element.
func TestScenarioS8EmptyClassNameQueryReturnsNothing(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	doc.AsNode().AppendChild(root.AsNode())
	child := doc.CreateElement("div")
	child.SetAttribute("class", "anything")
	root.AsNode().AppendChild(child.AsNode())

	require.Equal(t, 0, doc.GetElementsByClassName("").Length())
	require.Equal(t, 0, doc.GetElementsByClassName("   ").Length())
}

// S9: toggle_attribute flips presence on each call, and force pins the
// outcome regardless of the attribute's prior state.
func TestScenarioS9ToggleAttribute(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("button")

	require.True(t, el.ToggleAttribute("disabled"))
	require.True(t, el.HasAttribute("disabled"))
	require.Equal(t, "", el.GetAttribute("disabled"))

	require.False(t, el.ToggleAttribute("disabled"))
	require.False(t, el.HasAttribute("disabled"))

	require.True(t, el.ToggleAttribute("disabled", true))
	require.True(t, el.HasAttribute("disabled"))

	require.True(t, el.ToggleAttribute("disabled", true))
	require.True(t, el.HasAttribute("disabled"))
}
