package dom

import "golang.org/x/net/html/atom"

// stringPool deduplicates tag names, attribute names, and class tokens for a
// single Document, so that semantic equality of these strings coincides with
// pointer equality of their interned handle (spec §2.1, §3.6). Attribute and
// text *values* are not interned — only the small, highly repetitive
// vocabulary of names and class tokens benefits from this.
//
// handle is the Go string itself: Go interns nothing for us across distinct
// byte slices, so the pool's job is to hand back the *same* string header
// (same underlying array pointer) for repeated requests of the same content.
// Nothing compares these handles by pointer: the selector matcher's tag test
// compares local names by value (strings.EqualFold).
type stringPool struct {
	entries map[string]string
}

func newStringPool() *stringPool {
	p := &stringPool{entries: make(map[string]string, 64)}
	// Pre-seed with the well-known HTML atom vocabulary (tag and attribute
	// names alike share one atom table) so that pointer equality holds for
	// common names even before any element or attribute using them has been
	// created. golang.org/x/net/html/atom is used here purely as a string
	// table, never for parsing; no other file in this package uses it.
	for _, name := range commonAtomNames {
		p.entries[name] = name
	}
	return p
}

// intern returns the pool's canonical copy of s, registering s as canonical
// if this is the first time it has been seen.
func (p *stringPool) intern(s string) string {
	if canonical, ok := p.entries[s]; ok {
		return canonical
	}
	p.entries[s] = s
	return s
}

// commonAtomNames lists a representative slice of the HTML living standard's
// well-known element and attribute names, recovered from the x/net/html/atom
// table via Lookup round-tripping over a fixed candidate list (the atom
// package does not export an enumerator, only Lookup/String).
var commonAtomNames = func() []string {
	candidates := []string{
		"a", "abbr", "address", "area", "article", "aside", "audio", "b",
		"base", "bdi", "bdo", "blockquote", "body", "br", "button", "canvas",
		"caption", "cite", "code", "col", "colgroup", "data", "datalist",
		"dd", "del", "details", "dfn", "dialog", "div", "dl", "dt", "em",
		"embed", "fieldset", "figcaption", "figure", "footer", "form", "h1",
		"h2", "h3", "h4", "h5", "h6", "head", "header", "hgroup", "hr",
		"html", "i", "iframe", "img", "input", "ins", "kbd", "label",
		"legend", "li", "link", "main", "map", "mark", "menu", "meta",
		"meter", "nav", "noscript", "object", "ol", "optgroup", "option",
		"output", "p", "param", "picture", "pre", "progress", "q", "rp",
		"rt", "ruby", "s", "samp", "script", "section", "select", "slot",
		"small", "source", "span", "strong", "style", "sub", "summary",
		"sup", "table", "tbody", "td", "template", "textarea", "tfoot",
		"th", "thead", "time", "title", "tr", "track", "u", "ul", "var",
		"video", "wbr",
		"id", "class", "name", "href", "src", "type", "value", "style",
		"title", "lang", "dir", "for", "disabled", "checked", "selected",
		"placeholder", "alt", "width", "height", "rel", "target",
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if atom.Lookup([]byte(c)) != 0 {
			out = append(out, c)
		}
	}
	return out
}()
