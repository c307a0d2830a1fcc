package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/iconforge/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Exported 6 files (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ExportHooks returns hooks that write export events to the CLI logger at
// debug level. main registers them with observability.SetExportHooks.
func (c *CLI) ExportHooks() observability.ExportHooks {
	return logHooks{logger: c.Logger}
}

type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnExportStart(_ context.Context, source string, files int) {
	h.logger.Debug("Export started", "source", source, "files", files)
}

func (h logHooks) OnFileWritten(_ context.Context, name string, pixels, bytes int, d time.Duration) {
	h.logger.Debug("Wrote file", "name", name, "pixels", pixels, "bytes", bytes, "took", d.Round(time.Microsecond))
}

func (h logHooks) OnExportComplete(_ context.Context, source string, files int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Export stopped", "source", source, "files", files, "err", err)
		return
	}
	h.logger.Debug("Export finished", "source", source, "files", files, "took", d.Round(time.Millisecond))
}
