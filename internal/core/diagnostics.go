package core

import (
	"log/slog"

	"github.com/comalice/storetree/internal/primitives"
)

// WarningKind classifies non-fatal diagnostics.
type WarningKind string

const (
	// WarnUnregisterMissing: Unregister was called for a path with no module.
	WarnUnregisterMissing WarningKind = "unregister-missing"
	// WarnHotUpdateNewModule: a hot update declared a module the tree does not have.
	WarnHotUpdateNewModule WarningKind = "hot-update-new-module"
)

// Warning is a non-fatal diagnostic. It never interrupts the operation that raised it.
type Warning struct {
	Kind    WarningKind
	Path    primitives.Path
	Message string
}

// Reporter receives warnings.
type Reporter interface {
	Report(w Warning)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(w Warning)

func (f ReporterFunc) Report(w Warning) { f(w) }

// LogReporter logs warnings at warn level with structured attributes.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter creates a LogReporter. A nil logger means slog.Default().
func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogReporter{logger: logger}
}

func (r *LogReporter) Report(w Warning) {
	r.logger.Warn(w.Message, "kind", string(w.Kind), "path", w.Path.String())
}
