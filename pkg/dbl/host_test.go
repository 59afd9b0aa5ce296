package dbl

import "testing"

func TestStaticHostReadyImmediately(t *testing.T) {
	h := &StaticHost{ID: "1"}
	select {
	case <-h.Ready():
	default:
		t.Fatalf("static host should be ready from the start")
	}
}

func TestStaticHostCount(t *testing.T) {
	h := &StaticHost{ID: "1"}
	if got := h.ServerCount(); got != 0 {
		t.Fatalf("nil count func should report 0, got %d", got)
	}
	h.Count = func() int { return 12 }
	if got := h.ServerCount(); got != 12 {
		t.Fatalf("unexpected count: %d", got)
	}
}
