// Package render turns code models into formatted source text. Renderers are
// stateless after construction and never modify the model they are given.
package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/zigbeenet/zcl-gen/internal/codemodel"
)

// ErrUnknownLanguage is returned by Lookup for unregistered languages.
var ErrUnknownLanguage = errors.New("unknown target language")

// Renderer renders one namespace into the text of one file.
type Renderer interface {
	// Language is the registry name, e.g. "csharp".
	Language() string
	// Extension is the file extension without the dot.
	Extension() string
	Render(ns *codemodel.Namespace) ([]byte, error)
}

// Options controls layout shared by all renderers.
type Options struct {
	// Indent is one indentation level for renderers that do not delegate to a
	// formatter. Defaults to four spaces.
	Indent string
	// LineEnding is "\n" or "\r\n". Defaults to "\n".
	LineEnding string
	// GoPackage overrides the package clause of the Go renderer.
	GoPackage string
}

// DefaultOptions returns four-space indentation and LF line endings.
func DefaultOptions() Options {
	return Options{Indent: "    ", LineEnding: "\n"}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Indent == "" {
		o.Indent = d.Indent
	}
	if o.LineEnding == "" {
		o.LineEnding = d.LineEnding
	}
	return o
}

var registry = map[string]func(Options) Renderer{
	"csharp": func(o Options) Renderer { return NewCSharp(o) },
	"go":     func(o Options) Renderer { return NewGo(o) },
}

// Lookup returns the renderer registered for lang.
func Lookup(lang string, opts Options) (Renderer, error) {
	ctor, ok := registry[strings.ToLower(lang)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownLanguage, lang, strings.Join(Languages(), ", "))
	}
	return ctor(opts.withDefaults()), nil
}

// Languages lists the registered languages in sorted order.
func Languages() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// mustValidate panics on a malformed model. Builders only hand over validated
// trees, so a failure here is a bug in the pipeline.
func mustValidate(ns *codemodel.Namespace) {
	if err := codemodel.Validate(ns); err != nil {
		panic(fmt.Sprintf("render: invalid code model: %v", err))
	}
}

// docText keeps the non-blank documentation lines, trimmed.
func docText(lines []string) []string {
	var out []string
	for _, l := range lines {
		if t := strings.TrimSpace(l); t != "" {
			out = append(out, t)
		}
	}
	return out
}
