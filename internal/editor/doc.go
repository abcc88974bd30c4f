// Package editor defines the provider abstraction for opening files in
// editors and the registry that selects among providers.
//
// A Provider is a factory recognized by the host: it decides whether it can
// open a given file, constructs an editor view for it, and serializes the
// editor's state to and from a persisted state element. Providers that can
// defer construction implement AsyncProvider; BuilderFor wraps any provider
// into the deferred form so composites can treat both uniformly.
//
// # Policies
//
// Each provider declares a Policy controlling where its editor is placed
// relative to the host's default editor. PolicyHideDefault replaces the
// default editor entirely; the registry orders candidate providers by
// policy precedence.
package editor
