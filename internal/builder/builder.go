// Package builder turns schema entities into code models. Every method is a
// pure function of its arguments and the injected catalog and options, so a
// single Builder can serve any number of goroutines.
package builder

import (
	"fmt"
	"strings"

	"github.com/zigbeenet/zcl-gen/internal/naming"
	"github.com/zigbeenet/zcl-gen/internal/schema"
	"github.com/zigbeenet/zcl-gen/internal/types"
)

// AutoGeneratedNotice is the final documentation line of generated commands.
const AutoGeneratedNotice = "Code is auto-generated. Modifications may be overwritten!"

// Builder builds code models from schema entities.
type Builder struct {
	catalog *types.Catalog
	opts    Options
}

// New creates a Builder. Empty option fields take their DefaultOptions value.
func New(catalog *types.Catalog, opts Options) *Builder {
	return &Builder{catalog: catalog, opts: opts.withDefaults()}
}

// Options returns the effective options.
func (b *Builder) Options() Options {
	return b.opts
}

// ClusterNamespace returns the namespace commands and enums of c live in.
func (b *Builder) ClusterNamespace(c *schema.Cluster) string {
	return b.opts.ClusterNamespace + "." + naming.Sanitize(c.Name)
}

// ClusterClassName returns the name of the class generated for c.
func (b *Builder) ClusterClassName(c *schema.Cluster) string {
	return b.opts.ClusterClassPrefix + naming.Sanitize(c.Name) + b.opts.ClusterClassSuffix
}

func (b *Builder) resolve(tag, what string) (types.TypeInfo, error) {
	info, err := b.catalog.Resolve(tag)
	if err != nil {
		return types.TypeInfo{}, fmt.Errorf("%w: %s: %w", ErrUnresolvedType, what, err)
	}
	return info, nil
}

// identifier sanitizes raw and rejects names that cannot be identifiers.
func identifier(raw, what string) (string, error) {
	name := naming.Sanitize(raw)
	if !naming.IsIdentifier(name) {
		return "", fmt.Errorf("%w: %s %q sanitizes to %q", ErrInvalidIdentifier, what, raw, name)
	}
	return name, nil
}

// scope tracks identifiers declared inside one type so collisions can be
// reported with both source entries.
type scope map[string]string

func (s scope) declare(name, source string) error {
	if prev, ok := s[name]; ok {
		return fmt.Errorf("%w: %q and %q both become %s", ErrDuplicateIdentifier, prev, source, name)
	}
	s[name] = source
	return nil
}

// docLines drops whitespace-only lines and trims the rest, keeping order and
// repeats.
func docLines(lines ...string) []string {
	var out []string
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, strings.TrimSpace(l))
	}
	return out
}

func lastSegment(namespace string) string {
	if i := strings.LastIndex(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
