// Package observability provides hooks for instrumenting icon exports.
//
// The export driver reports run and per-file events through [ExportHooks].
// Nothing is recorded by default; a binary registers its own implementation
// at startup (the CLI registers one that writes debug log lines).
//
//	func main() {
//	    observability.SetExportHooks(&myHooks{})
//	    // ... run exports
//	}
//
// Libraries emit events through the registry:
//
//	observability.Export().OnFileWritten(ctx, "icon.png", 512, n, took)
package observability

import (
	"context"
	"sync"
	"time"
)

// ExportHooks receives events from the export driver.
type ExportHooks interface {
	// OnExportStart fires before the first file of a run is produced.
	OnExportStart(ctx context.Context, source string, files int)

	// OnFileWritten fires after each output file is on disk.
	// pixels is the square dimension, or 0 for multi-frame containers.
	OnFileWritten(ctx context.Context, name string, pixels, bytes int, duration time.Duration)

	// OnExportComplete fires once per run, with the error that stopped it if any.
	OnExportComplete(ctx context.Context, source string, files int, duration time.Duration, err error)
}

// NoopExportHooks is a no-op implementation of ExportHooks.
type NoopExportHooks struct{}

func (NoopExportHooks) OnExportStart(context.Context, string, int)                         {}
func (NoopExportHooks) OnFileWritten(context.Context, string, int, int, time.Duration)      {}
func (NoopExportHooks) OnExportComplete(context.Context, string, int, time.Duration, error) {}

var (
	exportHooks ExportHooks = NoopExportHooks{}
	hooksMu     sync.RWMutex
)

// SetExportHooks registers custom export hooks. A nil h is ignored.
func SetExportHooks(h ExportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		exportHooks = h
	}
}

// Export returns the registered export hooks.
func Export() ExportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return exportHooks
}

// Reset restores the no-op hooks. Tests use it to isolate registrations.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	exportHooks = NoopExportHooks{}
}
