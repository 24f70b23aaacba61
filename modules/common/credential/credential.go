package credential

import "log"

// Selector is the host-provided interactive key selection capability.
// Both methods are optional in spirit: a host that cannot offer an
// interactive picker simply injects no Selector at all.
type Selector interface {
	// HasSelectedKey reports whether a usable API key is currently selected.
	HasSelectedKey() (bool, error)
	// OpenSelector opens the host's interactive key selection flow and
	// returns once the user has finished (or dismissed) it.
	OpenSelector() error
}

// Gate tracks whether a usable access credential is selected and owns
// the user-driven reselection flow. The key itself lives with the host
// (usually the process environment); keyFunc reads the current value so
// that a reselection is visible to the next client construction.
type Gate struct {
	selector Selector
	keyFunc  func() string
}

// NewGate builds a gate around an optional selector. A nil selector
// degrades gracefully: IsReady assumes out-of-band configuration and
// RequestSelection is a no-op.
func NewGate(selector Selector, keyFunc func() string) *Gate {
	return &Gate{selector: selector, keyFunc: keyFunc}
}

// IsReady reports whether a usable credential is currently selected.
func (g *Gate) IsReady() bool {
	if g.selector == nil {
		return true
	}
	ok, err := g.selector.HasSelectedKey()
	if err != nil {
		log.Printf("⚠️  Credential check failed: %v", err)
		return false
	}
	return ok
}

// CanSelect reports whether an interactive reselection flow exists.
func (g *Gate) CanSelect() bool {
	return g.selector != nil
}

// RequestSelection runs the host's key selection flow if one exists.
func (g *Gate) RequestSelection() error {
	if g.selector == nil {
		return nil
	}
	log.Println("🔑 Prompting for API key re-selection...")
	return g.selector.OpenSelector()
}

// APIKey returns the currently active key. Called fresh before every
// client construction so a reselection takes effect on the next call.
func (g *Gate) APIKey() string {
	return g.keyFunc()
}
