// Package redirect implements the redirects build plugin: it collects the
// configured redirect table when the host enumerates site files, validates
// each target after the site is rendered, and writes one static HTML stub per
// resolvable entry.
package redirect

import (
	"strings"
	"time"

	"git.home.luguber.info/inful/redirects/internal/config"
	"git.home.luguber.info/inful/redirects/internal/diag"
	"git.home.luguber.info/inful/redirects/internal/docmodel"
	"git.home.luguber.info/inful/redirects/internal/logfields"
	"git.home.luguber.info/inful/redirects/internal/metrics"
	"git.home.luguber.info/inful/redirects/internal/paths"
	"git.home.luguber.info/inful/redirects/internal/plugin"
	"git.home.luguber.info/inful/redirects/internal/version"
)

// PluginName is the identifier the plugin registers under.
const PluginName = "redirects"

// Plugin generates static HTML redirect stubs for moved or removed pages.
// State collected during OnFiles is read during OnPostBuild; the host invokes
// the hooks sequentially, so no locking is needed.
type Plugin struct {
	cfg *config.PluginConfig

	// redirects is the old-path -> target table for the current build.
	redirects map[string]string
	// docPages indexes known documentation pages by normalized source path,
	// used only for membership testing of redirect targets.
	docPages map[string]docmodel.Page
}

var _ plugin.BuildHooks = (*Plugin)(nil)

// New creates the redirects plugin from its configuration block.
func New(cfg *config.PluginConfig) *Plugin {
	if cfg == nil {
		cfg = &config.PluginConfig{RedirectMaps: map[string]string{}}
	}
	return &Plugin{cfg: cfg}
}

// Metadata implements plugin.Plugin.
func (p *Plugin) Metadata() plugin.Metadata {
	return plugin.Metadata{
		Name:        PluginName,
		Version:     version.Version,
		Type:        plugin.TypePostBuild,
		Description: "Generates static HTML redirect pages for moved documentation",
	}
}

// Validate implements plugin.Plugin. The redirect table is a free-form string
// mapping; anything that decoded is acceptable, bad entries surface as
// warnings during the build rather than hard failures.
func (p *Plugin) Validate(raw map[string]any) error {
	return nil
}

// OnFiles collects the redirect table and the set of known documentation
// pages. All anomalies are warnings; a bad entry never aborts the build.
func (p *Plugin) OnFiles(pctx *plugin.Context, files docmodel.Files) error {
	p.redirects = p.cfg.RedirectMaps

	// The root-level 'redirects' key was replaced by the plugin-level
	// redirect_maps in 1.0; keep warning until hosts have migrated.
	if pctx.Host.HasLegacyRedirects() {
		msg := "the root-level 'redirects:' setting is not valid and has been replaced by the plugin-level 'redirect_maps'"
		pctx.Logger.Warn(msg, logfields.Stage(string(diag.StageCollect)))
		pctx.Report.AddIssue(diag.IssueLegacyConfigKey, diag.StageCollect, diag.SeverityWarning, msg, "")
	}

	for pageOld := range p.redirects {
		if !docmodel.IsMarkdownFile(pageOld) {
			pctx.Logger.Warn("redirect source is not a valid markdown file",
				logfields.Stage(string(diag.StageCollect)), logfields.Path(pageOld))
			pctx.Report.AddIssue(diag.IssueNonMarkdownSource, diag.StageCollect, diag.SeverityWarning,
				"redirect source is not a valid markdown file", pageOld)
		}
	}

	p.docPages = make(map[string]docmodel.Page)
	for _, page := range files.DocumentationPages() {
		p.docPages[docmodel.NormalizeSrcPath(page.SrcPath)] = page
	}

	pctx.Logger.Debug("Collected redirect table",
		logfields.BuildID(pctx.BuildID), logfields.Count(len(p.redirects)))
	return nil
}

// OnPostBuild resolves every redirect entry and writes its stub into the site
// output directory. Unresolvable targets are skipped with a warning;
// filesystem errors propagate to the host.
func (p *Plugin) OnPostBuild(pctx *plugin.Context) error {
	start := time.Now()
	defer func() { pctx.Metrics.ObserveEmitDuration(time.Since(start)) }()

	directoryURLs := pctx.Host.UseDirectoryURLs

	for pageOld, pageNew := range p.redirects {
		dest, kind, ok := p.resolve(pageOld, pageNew, directoryURLs)
		if !ok {
			pctx.Logger.Warn("redirect target does not exist",
				logfields.Stage(string(diag.StageEmit)), logfields.Path(pageOld), logfields.Target(pageNew))
			pctx.Report.AddIssue(diag.IssueMissingTarget, diag.StageEmit, diag.SeverityWarning,
				"redirect target '"+pageNew+"' does not exist", pageOld)
			pctx.Report.Skipped++
			pctx.Metrics.IncRedirectSkipped("missing_target")
			continue
		}

		oldHTML := paths.HTMLPath(pageOld, directoryURLs)
		if err := WriteHTML(pctx.Host.SiteDir, oldHTML, dest); err != nil {
			return err
		}
		pctx.Report.Written++
		pctx.Metrics.IncRedirectWritten(kind)
	}

	pctx.Report.Finish()
	pctx.Logger.Info("Redirect stubs written",
		logfields.BuildID(pctx.BuildID),
		logfields.SiteDir(pctx.Host.SiteDir),
		logfields.Count(pctx.Report.Written))
	return nil
}

// resolve turns a redirect target into the destination URL for the stub.
// External URLs pass through verbatim. Internal targets may carry a fragment
// ("page.md#section"); membership is tested on the path part and the fragment
// re-appended to the computed relative link.
func (p *Plugin) resolve(pageOld, pageNew string, directoryURLs bool) (string, metrics.KindLabel, bool) {
	lower := strings.ToLower(pageNew)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return pageNew, metrics.KindExternal, true
	}

	pathPart, fragment, _ := strings.Cut(pageNew, "#")
	if _, known := p.docPages[pathPart]; !known {
		return "", "", false
	}

	dest := paths.RelativeHTMLPath(pageOld, pathPart, directoryURLs)
	if fragment != "" {
		dest += "#" + fragment
	}
	return dest, metrics.KindInternal, true
}
