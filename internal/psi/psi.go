// Package psi models the structural elements of parsed markup source that
// refactoring features operate on.
//
// The markup grammar and parser live in the host; this package only
// defines the element kinds the extension cares about and structural
// patterns for matching them.
package psi

// Kind identifies a structural element kind.
type Kind string

// Element kinds referenced by refactoring features.
const (
	// KindAttributeDeclarationName is the name part of a document
	// attribute declaration, e.g. the "author" in ":author: Jane".
	KindAttributeDeclarationName Kind = "attribute_declaration_name"

	// KindIncludeTagInDocument is a tag referenced by an include
	// directive's tags filter.
	KindIncludeTagInDocument Kind = "include_tag_in_document"
)

// Element is a structural node of parsed markup source.
type Element interface {
	// Kind returns the element kind.
	Kind() Kind

	// Text returns the source text covered by the element.
	Text() string

	// Parent returns the enclosing element, or nil at the root.
	Parent() Element
}

// Node is a plain Element implementation.
type Node struct {
	kind   Kind
	text   string
	parent Element
}

// NewNode creates an element node.
func NewNode(kind Kind, text string, parent Element) *Node {
	return &Node{kind: kind, text: text, parent: parent}
}

// Kind returns the element kind.
func (n *Node) Kind() Kind {
	return n.kind
}

// Text returns the source text covered by the element.
func (n *Node) Text() string {
	return n.text
}

// Parent returns the enclosing element, or nil at the root.
func (n *Node) Parent() Element {
	return n.parent
}
