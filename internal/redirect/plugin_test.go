package redirect

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/redirects/internal/config"
	"git.home.luguber.info/inful/redirects/internal/diag"
	"git.home.luguber.info/inful/redirects/internal/docmodel"
	"git.home.luguber.info/inful/redirects/internal/plugin"
)

func newTestContext(t *testing.T, host *config.HostConfig) *plugin.Context {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return plugin.NewContext(context.Background(), logger, host)
}

func runBuild(t *testing.T, cfg *config.PluginConfig, host *config.HostConfig, files docmodel.Files) *plugin.Context {
	t.Helper()
	p := New(cfg)
	pctx := newTestContext(t, host)
	require.NoError(t, p.OnFiles(pctx, files))
	require.NoError(t, p.OnPostBuild(pctx))
	return pctx
}

func TestPlugin_InternalRedirect_FlatMode(t *testing.T) {
	siteDir := t.TempDir()
	host := &config.HostConfig{SiteDir: siteDir, UseDirectoryURLs: false}
	cfg := &config.PluginConfig{RedirectMaps: map[string]string{"old.md": "new.md"}}
	files := docmodel.Files{{SrcPath: "new.md"}}

	pctx := runBuild(t, cfg, host, files)

	data, err := os.ReadFile(filepath.Join(siteDir, "old.html"))
	require.NoError(t, err)
	require.Contains(t, string(data), `href="new.html"`)
	require.Contains(t, string(data), `url=new.html`)
	require.Equal(t, 1, pctx.Report.Written)
	require.Empty(t, pctx.Report.Warnings())
}

func TestPlugin_InternalRedirect_DirectoryURLs(t *testing.T) {
	siteDir := t.TempDir()
	host := &config.HostConfig{SiteDir: siteDir, UseDirectoryURLs: true}
	cfg := &config.PluginConfig{RedirectMaps: map[string]string{"old.md": "new.md"}}
	files := docmodel.Files{{SrcPath: "new.md"}}

	runBuild(t, cfg, host, files)

	data, err := os.ReadFile(filepath.Join(siteDir, "old", "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(data), `url=../new/`)
}

func TestPlugin_ExternalRedirect(t *testing.T) {
	siteDir := t.TempDir()
	host := &config.HostConfig{SiteDir: siteDir}
	cfg := &config.PluginConfig{RedirectMaps: map[string]string{"old.md": "https://example.com"}}

	pctx := runBuild(t, cfg, host, nil)

	data, err := os.ReadFile(filepath.Join(siteDir, "old.html"))
	require.NoError(t, err)
	require.Contains(t, string(data), `url=https://example.com`)
	require.Equal(t, 1, pctx.Report.Written)
}

func TestPlugin_ExternalRedirect_CaseInsensitiveScheme(t *testing.T) {
	siteDir := t.TempDir()
	host := &config.HostConfig{SiteDir: siteDir}
	cfg := &config.PluginConfig{RedirectMaps: map[string]string{"old.md": "HTTPS://Example.com/Page"}}

	runBuild(t, cfg, host, nil)

	data, err := os.ReadFile(filepath.Join(siteDir, "old.html"))
	require.NoError(t, err)
	require.Contains(t, string(data), `url=HTTPS://Example.com/Page`)
}

func TestPlugin_MissingTarget_SkippedWithWarning(t *testing.T) {
	siteDir := t.TempDir()
	host := &config.HostConfig{SiteDir: siteDir}
	cfg := &config.PluginConfig{RedirectMaps: map[string]string{"old.md": "missing.md"}}

	pctx := runBuild(t, cfg, host, docmodel.Files{})

	_, err := os.Stat(filepath.Join(siteDir, "old.html"))
	require.True(t, os.IsNotExist(err), "no stub should be written for a missing target")

	warnings := pctx.Report.Warnings()
	require.Len(t, warnings, 1)
	require.Equal(t, diag.IssueMissingTarget, warnings[0].Code)
	require.Equal(t, 1, pctx.Report.Skipped)
	require.Equal(t, 0, pctx.Report.Written)
}

func TestPlugin_NonMarkdownSource_WarnsButStillProcesses(t *testing.T) {
	siteDir := t.TempDir()
	host := &config.HostConfig{SiteDir: siteDir}
	cfg := &config.PluginConfig{RedirectMaps: map[string]string{"old.txt": "https://example.com"}}

	pctx := runBuild(t, cfg, host, nil)

	warnings := pctx.Report.Warnings()
	require.Len(t, warnings, 1)
	require.Equal(t, diag.IssueNonMarkdownSource, warnings[0].Code)
	require.Equal(t, "old.txt", warnings[0].Path)

	// The entry is still emitted at post-build time.
	_, err := os.Stat(filepath.Join(siteDir, "old.html"))
	require.NoError(t, err)
}

func TestPlugin_LegacyConfigKey_Warns(t *testing.T) {
	siteDir := t.TempDir()
	host := &config.HostConfig{
		SiteDir: siteDir,
		Extra:   map[string]any{"redirects": map[string]any{"old.md": "new.md"}},
	}
	cfg := &config.PluginConfig{RedirectMaps: map[string]string{}}

	pctx := runBuild(t, cfg, host, nil)

	warnings := pctx.Report.Warnings()
	require.Len(t, warnings, 1)
	require.Equal(t, diag.IssueLegacyConfigKey, warnings[0].Code)
}

func TestPlugin_TargetFragment_PreservedOnRelativeLink(t *testing.T) {
	siteDir := t.TempDir()
	host := &config.HostConfig{SiteDir: siteDir, UseDirectoryURLs: true}
	cfg := &config.PluginConfig{RedirectMaps: map[string]string{"old.md": "new.md#install"}}
	files := docmodel.Files{{SrcPath: "new.md"}}

	pctx := runBuild(t, cfg, host, files)

	data, err := os.ReadFile(filepath.Join(siteDir, "old", "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(data), `url=../new/#install`)
	require.Empty(t, pctx.Report.Warnings())
}

func TestPlugin_WindowsStylePageSeparatorsNormalized(t *testing.T) {
	siteDir := t.TempDir()
	host := &config.HostConfig{SiteDir: siteDir}
	cfg := &config.PluginConfig{RedirectMaps: map[string]string{"old.md": "dir/new.md"}}
	files := docmodel.Files{{SrcPath: `dir\new.md`}}

	pctx := runBuild(t, cfg, host, files)

	require.Equal(t, 1, pctx.Report.Written)
	data, err := os.ReadFile(filepath.Join(siteDir, "old.html"))
	require.NoError(t, err)
	require.Contains(t, string(data), `url=dir/new.html`)
}

func TestPlugin_NonMarkdownTargetsIgnoredInPageSet(t *testing.T) {
	siteDir := t.TempDir()
	host := &config.HostConfig{SiteDir: siteDir}
	cfg := &config.PluginConfig{RedirectMaps: map[string]string{"old.md": "image.png"}}
	files := docmodel.Files{{SrcPath: "image.png"}}

	pctx := runBuild(t, cfg, host, files)

	// Assets are not documentation pages, so the target is unknown.
	require.Equal(t, 1, pctx.Report.Skipped)
	require.Equal(t, 0, pctx.Report.Written)
}

func TestPlugin_Metadata(t *testing.T) {
	p := New(nil)
	md := p.Metadata()
	require.Equal(t, PluginName, md.Name)
	require.NoError(t, md.Validate())
}
