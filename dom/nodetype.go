// Package dom provides an in-memory, WHATWG-conformant DOM tree: nodes,
// documents, attribute maps, document-order indices, a ref-counted ownership
// graph, live collections, and traversal iterators. Selector matching is
// provided by the sibling css package and reached through SelectorEngine
// (see engine.go) to avoid an import cycle between the two packages.
package dom

// NodeType represents the type of a Node as defined in the DOM specification.
type NodeType uint16

const (
	// ElementNode represents an Element node.
	ElementNode NodeType = 1
	// AttributeNode represents an Attr node. Attr values are never tree
	// children (spec §3.1); this constant exists for NodeType() reporting.
	AttributeNode NodeType = 2
	// TextNode represents a Text node.
	TextNode NodeType = 3
	// CDATASectionNode represents a CDATASection node.
	CDATASectionNode NodeType = 4
	// EntityReferenceNode is obsolete.
	EntityReferenceNode NodeType = 5
	// EntityNode is obsolete.
	EntityNode NodeType = 6
	// ProcessingInstructionNode represents a ProcessingInstruction node.
	ProcessingInstructionNode NodeType = 7
	// CommentNode represents a Comment node.
	CommentNode NodeType = 8
	// DocumentNode represents a Document node.
	DocumentNode NodeType = 9
	// DocumentTypeNode represents a DocumentType node.
	DocumentTypeNode NodeType = 10
	// DocumentFragmentNode represents a DocumentFragment node.
	DocumentFragmentNode NodeType = 11
	// NotationNode is obsolete.
	NotationNode NodeType = 12
)

// String returns the string representation of the NodeType.
func (nt NodeType) String() string {
	switch nt {
	case ElementNode:
		return "ELEMENT_NODE"
	case AttributeNode:
		return "ATTRIBUTE_NODE"
	case TextNode:
		return "TEXT_NODE"
	case CDATASectionNode:
		return "CDATA_SECTION_NODE"
	case ProcessingInstructionNode:
		return "PROCESSING_INSTRUCTION_NODE"
	case CommentNode:
		return "COMMENT_NODE"
	case DocumentNode:
		return "DOCUMENT_NODE"
	case DocumentTypeNode:
		return "DOCUMENT_TYPE_NODE"
	case DocumentFragmentNode:
		return "DOCUMENT_FRAGMENT_NODE"
	default:
		return "UNKNOWN_NODE"
	}
}

// ShowMask is a bitmask of NodeType bits, used by NodeIterator and
// TreeWalker's whatToShow filter (spec §4.9-§4.10). Bit (1 << (nodeType-1))
// corresponds to each NodeType constant above, per the DOM Standard's
// NodeFilter.SHOW_* constants.
type ShowMask uint32

const (
	ShowElement               ShowMask = 1 << (ElementNode - 1)
	ShowText                  ShowMask = 1 << (TextNode - 1)
	ShowCDATASection          ShowMask = 1 << (CDATASectionNode - 1)
	ShowProcessingInstruction ShowMask = 1 << (ProcessingInstructionNode - 1)
	ShowComment               ShowMask = 1 << (CommentNode - 1)
	ShowDocument              ShowMask = 1 << (DocumentNode - 1)
	ShowDocumentType          ShowMask = 1 << (DocumentTypeNode - 1)
	ShowDocumentFragment      ShowMask = 1 << (DocumentFragmentNode - 1)

	// ShowAll matches every node type.
	ShowAll ShowMask = 0xFFFFFFFF
)

func showBitFor(nt NodeType) ShowMask {
	if nt == 0 || nt > 12 {
		return 0
	}
	return 1 << (nt - 1)
}
