package credential

import (
	"errors"
	"testing"
)

type stubSelector struct {
	selected  bool
	checkErr  error
	openCalls int
}

func (s *stubSelector) HasSelectedKey() (bool, error) { return s.selected, s.checkErr }
func (s *stubSelector) OpenSelector() error {
	s.openCalls++
	return nil
}

func TestGateWithoutSelectorAssumesReady(t *testing.T) {
	gate := NewGate(nil, func() string { return "env-key" })

	if !gate.IsReady() {
		t.Error("gate without a selector should assume out-of-band configuration")
	}
	if gate.CanSelect() {
		t.Error("gate without a selector cannot offer reselection")
	}
	if err := gate.RequestSelection(); err != nil {
		t.Errorf("RequestSelection should no-op, got %v", err)
	}
	if gate.APIKey() != "env-key" {
		t.Errorf("APIKey = %q, want env-key", gate.APIKey())
	}
}

func TestGateConsultsSelector(t *testing.T) {
	selector := &stubSelector{selected: false}
	gate := NewGate(selector, func() string { return "k" })

	if gate.IsReady() {
		t.Error("gate should report not ready when no key is selected")
	}

	selector.selected = true
	if !gate.IsReady() {
		t.Error("gate should report ready once a key is selected")
	}

	if err := gate.RequestSelection(); err != nil {
		t.Fatalf("RequestSelection failed: %v", err)
	}
	if selector.openCalls != 1 {
		t.Errorf("selector opened %d times, want 1", selector.openCalls)
	}
}

func TestGateCheckFailureMeansNotReady(t *testing.T) {
	selector := &stubSelector{selected: true, checkErr: errors.New("host gone")}
	gate := NewGate(selector, func() string { return "k" })

	if gate.IsReady() {
		t.Error("gate should report not ready when the host check fails")
	}
}

func TestGateReflectsRotatedKey(t *testing.T) {
	key := "before"
	gate := NewGate(&stubSelector{selected: true}, func() string { return key })

	if gate.APIKey() != "before" {
		t.Fatalf("APIKey = %q, want before", gate.APIKey())
	}
	key = "after"
	if gate.APIKey() != "after" {
		t.Errorf("APIKey = %q, want the refreshed value", gate.APIKey())
	}
}
