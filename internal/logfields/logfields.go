package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyStage   = "stage"
	KeyPath    = "path"
	KeyTarget  = "target"
	KeyDest    = "destination"
	KeySiteDir = "site_dir"
	KeyBuildID = "build_id"
	KeyCount   = "count"
	KeyError   = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Stage(name string) slog.Attr { return slog.String(KeyStage, name) }
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func Target(t string) slog.Attr   { return slog.String(KeyTarget, t) }
func Dest(d string) slog.Attr     { return slog.String(KeyDest, d) }
func SiteDir(d string) slog.Attr  { return slog.String(KeySiteDir, d) }
func BuildID(id string) slog.Attr { return slog.String(KeyBuildID, id) }
func Count(n int) slog.Attr       { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
