package generator

import (
	"fmt"
	"path"

	"github.com/zigbeenet/zcl-gen/internal/builder"
	"github.com/zigbeenet/zcl-gen/internal/codemodel"
	"github.com/zigbeenet/zcl-gen/internal/naming"
	"github.com/zigbeenet/zcl-gen/internal/schema"
)

// Output directories below the generation root.
const (
	ClusterDir  = "Cluster"
	ConstantDir = "Constant"
)

// Unit is one independent generation pass producing one file.
type Unit struct {
	ID builder.UnitID
	// Source is the schema file the unit came from.
	Source string
	// Path is the slash-separated output path relative to the output root.
	Path  string
	build func(*builder.Builder) (*codemodel.Namespace, error)
	// conflict is set when an earlier unit already claimed Path.
	conflict error
}

// Build runs the unit's builder step.
func (u Unit) Build(b *builder.Builder) (*codemodel.Namespace, error) {
	if u.conflict != nil {
		return nil, &builder.UnitError{Unit: u.ID, Err: u.conflict}
	}
	return u.build(b)
}

// Plan expands decoded documents into units in document order: for every
// cluster its commands, its constant sets and the cluster class; for the
// constants document one unit per set. Units whose output path collides with
// an earlier unit are kept but fail when built.
func Plan(docs []*schema.Document, b *builder.Builder, ext string) []Unit {
	var units []Unit
	for _, doc := range docs {
		if c := doc.Cluster; c != nil {
			dir := path.Join(ClusterDir, naming.Sanitize(c.Name))
			ns := b.ClusterNamespace(c)
			for _, cmd := range c.Commands {
				units = append(units, Unit{
					ID:     builder.UnitID{Kind: builder.KindCommand, Scope: c.Name, Name: cmd.Name},
					Source: doc.Path,
					Path:   path.Join(dir, naming.Sanitize(cmd.Name)+"."+ext),
					build:  func(b *builder.Builder) (*codemodel.Namespace, error) { return b.Command(c, cmd) },
				})
			}
			for _, set := range c.Constants {
				units = append(units, Unit{
					ID:     builder.UnitID{Kind: builder.KindConstant, Scope: c.Name, Name: set.Class},
					Source: doc.Path,
					Path:   path.Join(dir, builder.EnumName(ns, set.Class)+"."+ext),
					build:  func(b *builder.Builder) (*codemodel.Namespace, error) { return b.ClusterConstants(c, set) },
				})
			}
			units = append(units, Unit{
				ID:     builder.UnitID{Kind: builder.KindCluster, Scope: c.Name, Name: c.Name},
				Source: doc.Path,
				Path:   path.Join(ClusterDir, b.ClusterClassName(c)+"."+ext),
				build:  func(b *builder.Builder) (*codemodel.Namespace, error) { return b.Cluster(c) },
			})
		}

		root := b.Options().RootNamespace
		for _, set := range doc.Constants {
			units = append(units, Unit{
				ID:     builder.UnitID{Kind: builder.KindConstant, Scope: root, Name: set.Class},
				Source: doc.Path,
				Path:   path.Join(ConstantDir, builder.EnumName(root, set.Class)+"."+ext),
				build:  func(b *builder.Builder) (*codemodel.Namespace, error) { return b.ConstantSet(root, set) },
			})
		}
	}

	claimed := make(map[string]builder.UnitID, len(units))
	for i := range units {
		if prev, ok := claimed[units[i].Path]; ok {
			units[i].conflict = fmt.Errorf("%w: output %s already produced by %s", builder.ErrDuplicateIdentifier, units[i].Path, prev)
			continue
		}
		claimed[units[i].Path] = units[i].ID
	}
	return units
}
