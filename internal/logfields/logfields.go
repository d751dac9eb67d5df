package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyPage       = "page"
	KeyPath       = "path"
	KeyObject     = "object"
	KeySection    = "section"
	KeyComponent  = "component"
	KeyDurationMS = "duration_ms"
	KeyFiles      = "files"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Page(name string) slog.Attr      { return slog.String(KeyPage, name) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Object(name string) slog.Attr    { return slog.String(KeyObject, name) }
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func Component(c string) slog.Attr    { return slog.String(KeyComponent, c) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Files(n int) slog.Attr           { return slog.Int(KeyFiles, n) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
