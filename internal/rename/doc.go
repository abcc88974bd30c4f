// Package rename provides input validation for rename refactorings on
// markup elements.
//
// A validator owns a structural pattern selecting the element kinds it
// applies to and a predicate over proposed new names. The registry asks
// the first validator whose pattern matches the renamed element; elements
// no validator claims are left to the host's default rules.
//
// Invalid input is rejected by returning false, never by an error: the
// host surfaces rejection as a disabled rename action, not a failure.
package rename
