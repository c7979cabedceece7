// Package logfields centralizes slog attribute construction so that log
// field names stay identical across packages.
package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyVersion = "version"
	KeyOrigin  = "origin"
	KeyGuide   = "guide"
	KeyURL     = "url"
	KeyPath    = "path"
	KeyBranch  = "branch"
	KeyCount   = "count"
	KeyRunID   = "run_id"
	KeyError   = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Version(v string) slog.Attr { return slog.String(KeyVersion, v) }
func Origin(o string) slog.Attr  { return slog.String(KeyOrigin, o) }
func Guide(name string) slog.Attr {
	return slog.String(KeyGuide, name)
}
func URL(u string) slog.Attr    { return slog.String(KeyURL, u) }
func Path(p string) slog.Attr   { return slog.String(KeyPath, p) }
func Branch(b string) slog.Attr { return slog.String(KeyBranch, b) }
func Count(n int) slog.Attr     { return slog.Int(KeyCount, n) }
func RunID(id string) slog.Attr { return slog.String(KeyRunID, id) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
