package core

import "testing"

func TestNewHubStateSeedsLastObserved(t *testing.T) {
	h := NewHubState(true)
	if !h.Read() {
		t.Fatalf("expected initial read to reflect seed value")
	}
	if !h.LastObserved() {
		t.Fatalf("expected lastObserved seeded from initial value")
	}
}

func TestHubStateOnEdgeUpdatesRead(t *testing.T) {
	h := NewHubState(false)
	h.OnEdge(true)
	if !h.Read() {
		t.Fatalf("expected Read to reflect the edge just delivered")
	}
}

func TestObserveEdgeDetectsFallingTransitionOnly(t *testing.T) {
	h := NewHubState(true)
	h.OnEdge(true)
	if h.ObserveEdge() {
		t.Fatalf("no transition occurred, ObserveEdge should report false")
	}

	h.OnEdge(false)
	if !h.ObserveEdge() {
		t.Fatalf("expected HIGH-to-LOW transition to report true")
	}
	if h.ObserveEdge() {
		t.Fatalf("second call without a new edge should report false")
	}

	h.OnEdge(true)
	if h.ObserveEdge() {
		t.Fatalf("LOW-to-HIGH transition should not report true")
	}
}

func TestHubStateStalledFlag(t *testing.T) {
	h := NewHubState(false)
	if h.Stalled() {
		t.Fatalf("expected stall flag clear initially")
	}
	h.SetStalled(true)
	if !h.Stalled() {
		t.Fatalf("expected stall flag set after SetStalled(true)")
	}
}
