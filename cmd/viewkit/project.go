package main

import (
	"fmt"
	"os"

	"github.com/viewkit-go/viewkit/internal/config"
	"github.com/viewkit-go/viewkit/internal/errors"
	"github.com/viewkit-go/viewkit/internal/manifest"
	"github.com/viewkit-go/viewkit/pkg/dom"
	"github.com/viewkit-go/viewkit/pkg/metrics"
	"github.com/viewkit-go/viewkit/pkg/template"
	"github.com/viewkit-go/viewkit/pkg/view"
)

// project bundles the loaded configuration and manifest for one render.
type project struct {
	cfg  *config.Config
	man  *manifest.File
	mets *metrics.Lifecycle
}

// loadProject reads viewkit.json and the manifest from the working
// directory.
func loadProject() (*project, error) {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return nil, err
	}
	man, err := manifest.Load(cfg.ManifestPath())
	if err != nil {
		return nil, err
	}
	return &project{cfg: cfg, man: man}, nil
}

// buildDocument renders the manifest's root tree into a fresh document and
// returns the serialized HTML. Each call builds a new tree, so template and
// manifest edits on disk are picked up by re-loading before calling.
func (p *project) buildDocument() (string, error) {
	doc, err := p.shell()
	if err != nil {
		return "", err
	}

	store := template.NewStore()
	if dir := p.cfg.TemplatesPath(); dir != "" {
		if _, statErr := os.Stat(dir); statErr == nil {
			if err := store.LoadDir(dir); err != nil {
				return "", err
			}
		}
	}

	env := &view.Env{
		Doc:       doc,
		Templates: store,
		Metrics:   p.mets,
	}
	p.man.Apply(env)

	root := p.man.BuildRoot(env)
	p.ensureAnchor(doc, root)

	if res := root.Init(); res.Failed() {
		return "", res.Err()
	}
	if !root.Rendered() {
		if res := root.Render(); res.Failed() {
			return "", res.Err()
		}
	}

	return doc.HTML()
}

// shell parses the configured document shell, or builds a blank one.
func (p *project) shell() (*dom.Document, error) {
	path := p.cfg.ShellPath()
	if path == "" {
		return dom.NewDocument(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E061").
			WithDetail("shell %s: %v", path, err)
	}
	return dom.ParseDocument(string(data))
}

// ensureAnchor injects the root anchor into the shell body when the
// manifest roots on an id selector the shell does not carry. This keeps
// blank-shell projects from having to hand-write a host page.
func (p *project) ensureAnchor(doc *dom.Document, root *view.Node) {
	path := p.man.Root.Element
	if len(path) < 2 || path[0] != '#' {
		return
	}
	if len(doc.Query(path)) > 0 {
		return
	}
	if body := doc.Body(); body != nil {
		body.AppendHTML(fmt.Sprintf(`<div id=%q></div>`, path[1:]))
	}
}
