package dom

// SelectorEngine is implemented by the sibling css package and registered
// with SetSelectorEngine from that package's init(). Indirecting through an
// interface lets dom expose QuerySelector/QuerySelectorAll/Matches/Closest
// without importing css, which in turn needs to import dom to match against
// *Element — the same registry pattern database/sql uses for drivers and
// image uses for format decoders.
type SelectorEngine interface {
	// Matches reports whether el matches selector.
	Matches(el *Element, selector string) (bool, error)

	// Closest returns the nearest inclusive ancestor of el matching
	// selector, or nil if none does.
	Closest(el *Element, selector string) (*Element, error)

	// QueryFirst returns the first descendant of scope (in document order)
	// matching selector, or nil.
	QueryFirst(scope *Node, selector string) (*Element, error)

	// QueryAll returns every descendant of scope (in document order)
	// matching selector.
	QueryAll(scope *Node, selector string) ([]*Element, error)
}

var selectorEngine SelectorEngine

// SetSelectorEngine installs the active selector engine. Called once from
// the css package's init().
func SetSelectorEngine(e SelectorEngine) {
	selectorEngine = e
}

// noSelectorEngine answers every query with NotSupportedError, per spec.md
// §6.4: a caller that never imported css (for its side-effecting init) still
// gets a well-typed error instead of a crash.
type noSelectorEngine struct{}

func (noSelectorEngine) Matches(*Element, string) (bool, error) {
	return false, ErrNotSupported("no selector engine registered; import the css package")
}

func (noSelectorEngine) Closest(*Element, string) (*Element, error) {
	return nil, ErrNotSupported("no selector engine registered; import the css package")
}

func (noSelectorEngine) QueryFirst(*Node, string) (*Element, error) {
	return nil, ErrNotSupported("no selector engine registered; import the css package")
}

func (noSelectorEngine) QueryAll(*Node, string) ([]*Element, error) {
	return nil, ErrNotSupported("no selector engine registered; import the css package")
}

func requireSelectorEngine() SelectorEngine {
	if selectorEngine == nil {
		return noSelectorEngine{}
	}
	return selectorEngine
}
