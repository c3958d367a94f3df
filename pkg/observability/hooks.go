// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about label rendering and preview-server requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, plain logs, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnLookupMiss("measurement", code)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the label-rendering engine.
//
// OnLookupMiss fires whenever a dictionary lookup falls back to verbatim
// passthrough (or the unknown-units sentinel). Misses are not errors; the
// engine stays total over uncatalogued codes. The hook exists so deployments
// can discover which codes are worth cataloguing.
type RenderHooks interface {
	// OnRender records a completed label render.
	OnRender(path string, ratio bool, duration time.Duration)

	// OnLookupMiss records a dictionary passthrough.
	// kind is "measurement", "component", "species", "units", or "template".
	OnLookupMiss(kind, code string)
}

// =============================================================================
// Server Hooks
// =============================================================================

// ServerHooks receives events from the preview server.
type ServerHooks interface {
	// OnRequest records a completed HTTP request.
	OnRequest(route string, status int, duration time.Duration)
}

// =============================================================================
// No-op Defaults
// =============================================================================

type noopRenderHooks struct{}

func (noopRenderHooks) OnRender(string, bool, time.Duration) {}
func (noopRenderHooks) OnLookupMiss(string, string)          {}

type noopServerHooks struct{}

func (noopServerHooks) OnRequest(string, int, time.Duration) {}

// =============================================================================
// Registration
// =============================================================================

var (
	mu          sync.RWMutex
	renderHooks RenderHooks = noopRenderHooks{}
	serverHooks ServerHooks = noopServerHooks{}
)

// SetRenderHooks registers hooks for label-rendering events.
// Passing nil restores the no-op default.
func SetRenderHooks(h RenderHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		renderHooks = noopRenderHooks{}
		return
	}
	renderHooks = h
}

// SetServerHooks registers hooks for preview-server events.
// Passing nil restores the no-op default.
func SetServerHooks(h ServerHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		serverHooks = noopServerHooks{}
		return
	}
	serverHooks = h
}

// Render returns the currently registered render hooks.
func Render() RenderHooks {
	mu.RLock()
	defer mu.RUnlock()
	return renderHooks
}

// Server returns the currently registered server hooks.
func Server() ServerHooks {
	mu.RLock()
	defer mu.RUnlock()
	return serverHooks
}
