package rename

import (
	"regexp"

	"github.com/dshills/markview/internal/psi"
)

// InputValidator restricts which new names are acceptable when renaming
// elements matched by its pattern.
type InputValidator interface {
	// Pattern returns the structural pattern selecting the elements
	// this validator applies to.
	Pattern() psi.Pattern

	// IsInputValid reports whether newName is acceptable for el.
	IsInputValid(newName string, el psi.Element) bool
}

// identifierPattern accepts ASCII letters, digits, underscore, and hyphen.
// The empty string is a valid (if useless) name; the host rejects empty
// input before validation.
var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]*$`)

// IsValidIdentifier reports whether name is a well-formed markup
// identifier: any run of ASCII letters, digits, underscores, or hyphens.
func IsValidIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// MarkupNameValidator validates new names for attribute declaration names
// and include tags: both must stay within the identifier character set so
// that references to them keep parsing.
type MarkupNameValidator struct {
	pattern psi.Pattern
}

// NewMarkupNameValidator creates the validator for markup name elements.
func NewMarkupNameValidator() *MarkupNameValidator {
	return &MarkupNameValidator{
		pattern: psi.Or(
			psi.OfKind(psi.KindIncludeTagInDocument),
			psi.OfKind(psi.KindAttributeDeclarationName),
		),
	}
}

// Pattern returns the pattern selecting name-bearing markup elements.
func (v *MarkupNameValidator) Pattern() psi.Pattern {
	return v.pattern
}

// IsInputValid reports whether newName is a valid markup identifier.
func (v *MarkupNameValidator) IsInputValid(newName string, _ psi.Element) bool {
	return IsValidIdentifier(newName)
}
