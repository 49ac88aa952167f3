package version

// Version contains the plugin version information.
// This should be set via build-time ldflags in production:
// go build -ldflags "-X git.home.luguber.info/inful/redirects/internal/version.Version=v1.2.0".
var Version = "unknown"
