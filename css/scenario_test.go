package css

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AYColumbia/viberowser/dom"
)

// S3: "div.active > a[href]:not(.disabled)" parses into a 2-compound
// complex selector joined by a child combinator; the right compound has
// type=a, one attribute presence matcher, and one :not(.disabled)
// pseudo-class.
func TestScenarioS3ComplexSelectorShape(t *testing.T) {
	sel, err := ParseSelector("div.active > a[href]:not(.disabled)")
	require.NoError(t, err)
	require.Len(t, sel.ComplexSelectors, 1)

	complex := sel.ComplexSelectors[0]
	require.Len(t, complex.Compounds, 2)

	left := complex.Compounds[0]
	require.Equal(t, "div", left.TypeSelector.Name)
	require.Equal(t, []string{"active"}, left.ClassSelectors)
	require.Equal(t, CombinatorChild, left.Combinator)

	right := complex.Compounds[1]
	require.Equal(t, "a", right.TypeSelector.Name)
	require.Len(t, right.AttributeMatchers, 1)
	require.Equal(t, "href", right.AttributeMatchers[0].Name)
	require.Equal(t, AttrExists, right.AttributeMatchers[0].Operator)

	require.Len(t, right.PseudoClasses, 1)
	notClass := right.PseudoClasses[0]
	require.Equal(t, "not", notClass.Name)
	require.NotNil(t, notClass.Selector)
	require.Len(t, notClass.Selector.ComplexSelectors, 1)
	require.Equal(t, []string{"disabled"}, notClass.Selector.ComplexSelectors[0].Compounds[0].ClassSelectors)
}

// S5: tokenizing `[attr*="val"]` yields open-square, ident("attr"), a
// substring-match operator (expressed as the delimiters '*' then '='),
// string("val"), close-square, eof — whitespace-insensitive.
func TestScenarioS5TokenizeSubstringAttribute(t *testing.T) {
	tok := NewTokenizer(`[attr*="val"]`)

	want := []struct {
		typ   TokenType
		value string
		delim rune
	}{
		{typ: TokenOpenSquare},
		{typ: TokenIdent, value: "attr"},
		{typ: TokenDelim, delim: '*'},
		{typ: TokenDelim, delim: '='},
		{typ: TokenString, value: "val"},
		{typ: TokenCloseSquare},
		{typ: TokenEOF},
	}

	for i, w := range want {
		got := tok.NextToken()
		require.Equal(t, w.typ, got.Type, "token %d", i)
		if w.value != "" {
			require.Equal(t, w.value, got.Value, "token %d value", i)
		}
		if w.delim != 0 {
			require.Equal(t, w.delim, got.Delim, "token %d delim", i)
		}
	}
}

// S7: :lang(en) matches lang="en-US" (prefix match on a hyphen boundary);
// :lang(en-US) does not match lang="en" (more specific than the attribute);
// :lang(en-GB) does not match lang="en-US" (sibling subtags never match).
func TestScenarioS7LangPseudoClass(t *testing.T) {
	doc := dom.NewDocument()

	makeDiv := func(lang string) *dom.Element {
		el := doc.CreateElement("div")
		el.SetAttribute("lang", lang)
		return el
	}

	enUS := makeDiv("en-US")
	require.True(t, matchesSelector(t, enUS, ":lang(en)"))

	en := makeDiv("en")
	require.False(t, matchesSelector(t, en, ":lang(en-US)"))

	enUS2 := makeDiv("en-US")
	require.False(t, matchesSelector(t, enUS2, ":lang(en-GB)"))
}

func matchesSelector(t *testing.T, el *dom.Element, selector string) bool {
	t.Helper()
	sel, err := ParseSelector(selector)
	require.NoError(t, err)
	return sel.MatchElement(el)
}
