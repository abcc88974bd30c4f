package script_test

import (
	"errors"
	"testing"

	"github.com/dshills/markview/internal/psi"
	"github.com/dshills/markview/internal/rename"
	"github.com/dshills/markview/internal/rename/script"
)

const lengthValidator = `
function matches(kind)
    return kind == "attribute_declaration_name"
end

function is_valid(name)
    return #name > 0 and #name <= 8
end
`

func TestScriptValidator(t *testing.T) {
	v, err := script.New(lengthValidator)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer v.Close()

	attr := psi.NewNode(psi.KindAttributeDeclarationName, "author", nil)
	tag := psi.NewNode(psi.KindIncludeTagInDocument, "snippet", nil)

	if !v.Pattern().Matches(attr) {
		t.Error("expected pattern to match attribute declaration name")
	}
	if v.Pattern().Matches(tag) {
		t.Error("expected pattern to not match include tag")
	}
	if v.Pattern().Matches(nil) {
		t.Error("expected pattern to not match nil element")
	}

	if !v.IsInputValid("author", attr) {
		t.Error("expected short name to be accepted")
	}
	if v.IsInputValid("a-very-long-attribute-name", attr) {
		t.Error("expected long name to be rejected")
	}
	if v.IsInputValid("", attr) {
		t.Error("expected empty name to be rejected by this script")
	}
}

func TestScriptValidatorInRegistry(t *testing.T) {
	v, err := script.New(lengthValidator)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer v.Close()

	reg := rename.NewRegistry()
	reg.Register(v)
	reg.Register(rename.NewMarkupNameValidator())

	attr := psi.NewNode(psi.KindAttributeDeclarationName, "author", nil)

	// The script validator registered first claims the element, so the
	// markup identifier rules never see the name.
	valid, claimed := reg.Validate("has spaces", attr)
	if !claimed {
		t.Error("expected script validator to claim the element")
	}
	if !valid {
		t.Error("expected script validator to accept a short name with spaces")
	}
}

func TestScriptMissingFunction(t *testing.T) {
	_, err := script.New(`function matches(kind) return true end`)
	if !errors.Is(err, script.ErrMissingFunction) {
		t.Errorf("expected ErrMissingFunction, got %v", err)
	}
}

func TestScriptLoadError(t *testing.T) {
	if _, err := script.New(`function (`); err == nil {
		t.Error("expected load error for invalid Lua")
	}
}

func TestScriptRuntimeErrorRejects(t *testing.T) {
	v, err := script.New(`
function matches(kind) return true end
function is_valid(name) error("broken validator") end
`)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer v.Close()

	el := psi.NewNode(psi.KindAttributeDeclarationName, "author", nil)
	if v.IsInputValid("anything", el) {
		t.Error("expected erroring script to reject input")
	}
}

func TestScriptTimeoutRejects(t *testing.T) {
	v, err := script.New(`
function matches(kind) return true end
function is_valid(name)
    while true do end
end
`)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer v.Close()

	el := psi.NewNode(psi.KindAttributeDeclarationName, "author", nil)
	if v.IsInputValid("anything", el) {
		t.Error("expected looping script to time out and reject input")
	}
}

func TestScriptSandboxBlocksIO(t *testing.T) {
	v, err := script.New(`
function matches(kind) return true end
function is_valid(name)
    return io ~= nil or os ~= nil
end
`)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer v.Close()

	el := psi.NewNode(psi.KindAttributeDeclarationName, "author", nil)
	if v.IsInputValid("anything", el) {
		t.Error("expected io and os to be unavailable in the sandbox")
	}
}

func TestScriptClosedRejects(t *testing.T) {
	v, err := script.New(lengthValidator)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	v.Close()
	v.Close() // double close is safe

	el := psi.NewNode(psi.KindAttributeDeclarationName, "author", nil)
	if v.IsInputValid("author", el) {
		t.Error("expected closed validator to reject input")
	}
	if v.Pattern().Matches(el) {
		t.Error("expected closed validator pattern to not match")
	}
}
