package redirect

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/redirects/internal/logfields"
)

// htmlTemplate is the fixed redirect stub document. The canonical link and
// no-index directive keep crawlers pointed at the destination, the script
// carries the URL fragment across, and the meta refresh is the no-JS fallback.
const htmlTemplate = `
<!doctype html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>Redirecting...</title>
    <link rel="canonical" href="{url}">
    <meta name="robots" content="noindex">
    <script>var anchor=window.location.hash.substr(1);location.href="{url}"+(anchor?"#"+anchor:"")</script>
    <meta http-equiv="refresh" content="0; url={url}">
</head>
<body>
Redirecting...
</body>
</html>
`

// WriteHTML writes a redirect stub at oldPath (relative, URL form) under
// siteDir, pointing at destURL. Missing parent directories are created.
// Filesystem failures propagate to the caller; the host decides whether the
// build continues.
func WriteHTML(siteDir, oldPath, destURL string) error {
	oldPathAbs := filepath.Join(siteDir, filepath.FromSlash(oldPath))
	oldDirAbs := filepath.Dir(oldPathAbs)

	if _, err := os.Stat(oldDirAbs); os.IsNotExist(err) {
		slog.Debug("Creating directory", logfields.Path(filepath.Dir(oldPath)))
		if err := os.MkdirAll(oldDirAbs, 0o755); err != nil {
			return fmt.Errorf("failed to create redirect directory %s: %w", oldDirAbs, err)
		}
	}

	slog.Debug("Creating redirect", logfields.Path(oldPath), logfields.Dest(destURL))
	content := strings.ReplaceAll(htmlTemplate, "{url}", destURL)
	if err := os.WriteFile(oldPathAbs, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write redirect file %s: %w", oldPathAbs, err)
	}
	return nil
}
