package rename

import (
	"sync"

	"github.com/dshills/markview/internal/psi"
)

// Registry holds rename input validators in registration order.
type Registry struct {
	mu         sync.RWMutex
	validators []InputValidator
}

// NewRegistry creates an empty validator registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a validator. Earlier registrations take precedence.
func (r *Registry) Register(v InputValidator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validators = append(r.validators, v)
}

// Validators returns the registered validators in order.
func (r *Registry) Validators() []InputValidator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]InputValidator, len(r.validators))
	copy(out, r.validators)
	return out
}

// Validate checks newName for el. The first validator whose pattern
// matches el decides; if no validator claims the element, the name is
// accepted and claimed reports false.
func (r *Registry) Validate(newName string, el psi.Element) (valid, claimed bool) {
	r.mu.RLock()
	validators := make([]InputValidator, len(r.validators))
	copy(validators, r.validators)
	r.mu.RUnlock()

	for _, v := range validators {
		if v.Pattern().Matches(el) {
			return v.IsInputValid(newName, el), true
		}
	}
	return true, false
}
