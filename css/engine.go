package css

import (
	"github.com/AYColumbia/viberowser/dom"
	"github.com/AYColumbia/viberowser/internal/lru"
)

func init() {
	dom.SetSelectorEngine(selectorEngine{})
}

// selectorCacheSize bounds how many distinct selector strings each document
// keeps compiled. Documents with larger, more repetitive selector traffic
// (a templating layer re-running the same handful of selectors) benefit
// most; this is a cache, not a correctness requirement, so a miss just costs
// a reparse.
const selectorCacheSize = 128

var caches = map[*dom.Document]*lru.Cache[string, *CSSSelector]{}

// cacheFor returns doc's selector cache, creating and registering it for
// teardown on first use. doc may be nil (matching against a detached
// subtree), in which case there is nothing to key a cache on.
func cacheFor(doc *dom.Document) *lru.Cache[string, *CSSSelector] {
	if doc == nil {
		return nil
	}
	c, ok := caches[doc]
	if ok {
		return c
	}
	c = lru.New[string, *CSSSelector](selectorCacheSize)
	caches[doc] = c
	dom.RegisterTeardown(doc, func() { delete(caches, doc) })
	return c
}

// compile parses selectorStr, consulting and populating doc's cache when
// doc is non-nil. Parse failures are reported as a SyntaxError, per
// selectors-4 and the DOMException thrown by Element.matches/closest and
// (ParentNode) querySelector/querySelectorAll.
func compile(doc *dom.Document, selectorStr string) (*CSSSelector, error) {
	cache := cacheFor(doc)
	if cache != nil {
		if sel, ok := cache.Get(selectorStr); ok {
			return sel, nil
		}
	}
	sel, err := ParseSelector(selectorStr)
	if err != nil {
		return nil, dom.ErrSyntax(err.Error())
	}
	if cache != nil {
		cache.Add(selectorStr, sel)
	}
	return sel, nil
}

// selectorEngine implements dom.SelectorEngine on top of this package's
// tokenizer/parser/matcher, registered with the dom package's registry so
// dom itself never needs to import css (see dom/engine.go).
type selectorEngine struct{}

// documentOf returns the Document that owns n, or n itself reinterpreted as
// a Document when n is already one (Node.OwnerDocument returns nil for
// Document nodes, which would otherwise disable caching and the fast path
// for the common Document.querySelector(All) call).
func documentOf(n *dom.Node) *dom.Document {
	if n.NodeType() == dom.DocumentNode {
		return (*dom.Document)(n)
	}
	return n.OwnerDocument()
}

func (selectorEngine) Matches(el *dom.Element, selectorStr string) (bool, error) {
	sel, err := compile(documentOf(el.AsNode()), selectorStr)
	if err != nil {
		return false, err
	}
	return sel.MatchElement(el), nil
}

func (selectorEngine) Closest(el *dom.Element, selectorStr string) (*dom.Element, error) {
	sel, err := compile(documentOf(el.AsNode()), selectorStr)
	if err != nil {
		return nil, err
	}
	ctx := &MatchContext{ScopeElement: el}
	for cur := el; cur != nil; cur = cur.AsNode().ParentElement() {
		if sel.MatchElementWithContext(cur, ctx) {
			return cur, nil
		}
	}
	return nil, nil
}

func (selectorEngine) QueryFirst(scope *dom.Node, selectorStr string) (*dom.Element, error) {
	sel, err := compile(documentOf(scope), selectorStr)
	if err != nil {
		return nil, err
	}
	if el, ok := fastPathFirst(scope, sel); ok {
		return el, nil
	}
	return querySelectorInternal(scope, sel, true), nil
}

func (selectorEngine) QueryAll(scope *dom.Node, selectorStr string) ([]*dom.Element, error) {
	sel, err := compile(documentOf(scope), selectorStr)
	if err != nil {
		return nil, err
	}
	if els, ok := fastPathAll(scope, sel); ok {
		return els, nil
	}
	return querySelectorAllInternal(scope, sel), nil
}

// singleSimpleCompound reports whether sel is exactly one complex selector
// made of exactly one compound carrying exactly one of an ID, a class, or a
// type name — the shapes selectors-4's "fast path" can route straight
// through the document's id/class/tag index maps instead of a tree walk.
func singleSimpleCompound(sel *CSSSelector) (compound *CompoundSelector, ok bool) {
	if len(sel.ComplexSelectors) != 1 {
		return nil, false
	}
	cs := sel.ComplexSelectors[0]
	if cs.LeadingCombinator != CombinatorNone || len(cs.Compounds) != 1 {
		return nil, false
	}
	c := cs.Compounds[0]
	if c.Combinator != CombinatorNone || len(c.PseudoClasses) != 0 || c.PseudoElement != nil || len(c.AttributeMatchers) != 0 {
		return nil, false
	}
	switch {
	case len(c.IDSelectors) == 1 && len(c.ClassSelectors) == 0 && (c.TypeSelector == nil || c.TypeSelector.Name == "*"):
		return c, true
	case len(c.ClassSelectors) == 1 && len(c.IDSelectors) == 0 && (c.TypeSelector == nil || c.TypeSelector.Name == "*"):
		return c, true
	case c.TypeSelector != nil && c.TypeSelector.Name != "*" && len(c.IDSelectors) == 0 && len(c.ClassSelectors) == 0:
		return c, true
	}
	return nil, false
}

// fastPathFirst attempts spec §4.6's index-map shortcut for the common
// #id / .class / tag shapes of selector, falling back (ok=false) to the
// general depth-first matcher for anything more complex.
func fastPathFirst(scope *dom.Node, sel *CSSSelector) (*dom.Element, bool) {
	c, isSimple := singleSimpleCompound(sel)
	if !isSimple {
		return nil, false
	}
	doc := documentOf(scope)
	if doc == nil {
		return nil, false
	}
	switch {
	case len(c.IDSelectors) == 1:
		el := doc.GetElementById(c.IDSelectors[0])
		if el != nil && scope.Contains(el.AsNode()) && el.AsNode() != scope {
			return el, true
		}
		return nil, true
	case len(c.ClassSelectors) == 1:
		for _, el := range doc.GetElementsByClassName(c.ClassSelectors[0]).ToSlice() {
			if el.AsNode() != scope && scope.Contains(el.AsNode()) {
				return el, true
			}
		}
		return nil, true
	default:
		for _, el := range doc.GetElementsByTagName(c.TypeSelector.Name).ToSlice() {
			if el.AsNode() != scope && scope.Contains(el.AsNode()) {
				return el, true
			}
		}
		return nil, true
	}
}

// fastPathAll is fastPathFirst's querySelectorAll counterpart.
func fastPathAll(scope *dom.Node, sel *CSSSelector) ([]*dom.Element, bool) {
	c, isSimple := singleSimpleCompound(sel)
	if !isSimple {
		return nil, false
	}
	doc := documentOf(scope)
	if doc == nil {
		return nil, false
	}
	var candidates []*dom.Element
	switch {
	case len(c.IDSelectors) == 1:
		if el := doc.GetElementById(c.IDSelectors[0]); el != nil {
			candidates = []*dom.Element{el}
		}
	case len(c.ClassSelectors) == 1:
		candidates = doc.GetElementsByClassName(c.ClassSelectors[0]).ToSlice()
	default:
		candidates = doc.GetElementsByTagName(c.TypeSelector.Name).ToSlice()
	}
	var results []*dom.Element
	for _, el := range candidates {
		if el.AsNode() != scope && scope.Contains(el.AsNode()) {
			results = append(results, el)
		}
	}
	return results, true
}
