package css

import "fmt"

// UnexpectedTokenError reports a token the parser has no production for at
// the point it was encountered.
type UnexpectedTokenError struct {
	Token   Token
	Context string
	Offset  int
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token %s in %s at offset %d", e.Token, e.Context, e.Offset)
}

// UnexpectedEOFError reports input that ended before a construct (an
// attribute selector, a functional pseudo-class argument, a combinator's
// right-hand side) was closed.
type UnexpectedEOFError struct {
	Context string
	Offset  int
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("unexpected end of input in %s at offset %d", e.Context, e.Offset)
}

// InvalidSelectorError reports a selector that tokenized cleanly but is
// not well-formed as a whole, e.g. an empty selector list.
type InvalidSelectorError struct {
	Reason string
}

func (e *InvalidSelectorError) Error() string {
	return "invalid selector: " + e.Reason
}
