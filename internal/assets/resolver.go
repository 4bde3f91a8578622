// Package assets turns a markup file and a script file into a single
// self-contained document.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/pterm/pterm"
)

const (
	// DefaultMarkup is the markup file name expected next to each app's entry point.
	DefaultMarkup = "index.html"
	// DefaultScript is the script file name expected next to each app's entry point.
	DefaultScript = "index.js"
)

// Resolver reads payload files from a file system.
type Resolver struct {
	fsys fs.FS
}

// NewResolver creates a Resolver reading from fsys.
func NewResolver(fsys fs.FS) *Resolver {
	return &Resolver{fsys: fsys}
}

// Resolve reads the script and markup and inlines the script into the
// markup's placeholder tag.
func (r *Resolver) Resolve(scriptPath, markupPath string) (Document, error) {
	script, err := fs.ReadFile(r.fsys, scriptPath)
	if err != nil {
		return Document{}, &ReadError{Path: scriptPath, Err: err}
	}
	markup, err := fs.ReadFile(r.fsys, markupPath)
	if err != nil {
		return Document{}, &ReadError{Path: markupPath, Err: err}
	}

	html, err := Inline(string(markup), string(script), path.Base(scriptPath))
	if err != nil {
		var te *TemplateError
		if errors.As(err, &te) {
			te.Path = markupPath
		}
		return Document{}, err
	}

	pterm.Debug.Printf("Inlined %s into %s (%d bytes)\n", scriptPath, markupPath, len(html))
	return Document{Address: DataURI(html), Payload: []byte(html)}, nil
}

// Placeholders lists the empty module script tags accepted as the inlining
// point for a script named scriptName.
func Placeholders(scriptName string) []string {
	markers := []string{`<script type="module"></script>`}
	if scriptName == "" {
		return markers
	}
	for _, src := range []string{scriptName, "./" + scriptName, "/" + scriptName} {
		markers = append(markers,
			fmt.Sprintf(`<script type="module" src="%s"></script>`, src),
			fmt.Sprintf(`<script src="%s" type="module"></script>`, src),
		)
	}
	return markers
}

// Inline replaces the single placeholder in markup with a module script
// element holding script verbatim.
func Inline(markup, script, scriptName string) (string, error) {
	var found string
	matches := 0
	for _, marker := range Placeholders(scriptName) {
		if n := strings.Count(markup, marker); n > 0 {
			matches += n
			found = marker
		}
	}
	if matches != 1 {
		return "", &TemplateError{Matches: matches}
	}

	i := strings.Index(markup, found)
	var b strings.Builder
	b.Grow(len(markup) + len(script))
	b.WriteString(markup[:i])
	b.WriteString(`<script type="module">`)
	b.WriteString(script)
	b.WriteString(`</script>`)
	b.WriteString(markup[i+len(found):])
	return b.String(), nil
}
