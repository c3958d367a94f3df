package observability

import (
	"testing"
	"time"
)

type recordingRenderHooks struct {
	renders int
	misses  []string
}

func (h *recordingRenderHooks) OnRender(string, bool, time.Duration) { h.renders++ }
func (h *recordingRenderHooks) OnLookupMiss(kind, code string)       { h.misses = append(h.misses, kind+":"+code) }

type recordingServerHooks struct {
	requests int
}

func (h *recordingServerHooks) OnRequest(string, int, time.Duration) { h.requests++ }

func TestDefaultHooksAreNoop(t *testing.T) {
	SetRenderHooks(nil)
	SetServerHooks(nil)

	// Must not panic.
	Render().OnRender("v_x_p", false, time.Millisecond)
	Render().OnLookupMiss("measurement", "zeta")
	Server().OnRequest("/v1/label", 200, time.Millisecond)
}

func TestSetRenderHooks(t *testing.T) {
	h := &recordingRenderHooks{}
	SetRenderHooks(h)
	defer SetRenderHooks(nil)

	Render().OnRender("v_x_p", true, time.Millisecond)
	Render().OnLookupMiss("units", "zeta")

	if h.renders != 1 {
		t.Errorf("renders = %d, want 1", h.renders)
	}
	if len(h.misses) != 1 || h.misses[0] != "units:zeta" {
		t.Errorf("misses = %v", h.misses)
	}
}

func TestSetServerHooks(t *testing.T) {
	h := &recordingServerHooks{}
	SetServerHooks(h)
	defer SetServerHooks(nil)

	Server().OnRequest("/v1/label", 200, time.Millisecond)
	if h.requests != 1 {
		t.Errorf("requests = %d, want 1", h.requests)
	}
}

func TestSetNilRestoresNoop(t *testing.T) {
	h := &recordingRenderHooks{}
	SetRenderHooks(h)
	SetRenderHooks(nil)

	Render().OnRender("v_x_p", false, 0)
	if h.renders != 0 {
		t.Error("nil registration did not restore the no-op hooks")
	}
}
