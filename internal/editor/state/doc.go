// Package state models the persisted form of editor session state.
//
// Editor state is stored as a tree of named elements. An element carries
// string attributes and named child elements. Providers serialize their
// state into an element they own and read it back from the same element;
// a missing child or attribute is legitimate absence, never an error.
//
// The tree round-trips through XML. Attribute and child order is preserved
// so that writing a tree and parsing it back yields an equal tree.
package state
