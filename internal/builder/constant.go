package builder

import (
	"github.com/zigbeenet/zcl-gen/internal/codemodel"
	"github.com/zigbeenet/zcl-gen/internal/naming"
	"github.com/zigbeenet/zcl-gen/internal/schema"
	"github.com/zigbeenet/zcl-gen/internal/types"
)

const enumSuffix = "Enum"

// ConstantSet builds the enum for a constant set declared at namespace
// level, such as the sets of the global constants document.
func (b *Builder) ConstantSet(namespace string, set schema.ConstantSet) (*codemodel.Namespace, error) {
	return b.constantSet(namespace, UnitID{Kind: KindConstant, Scope: namespace, Name: set.Class}, set)
}

// ClusterConstants builds the enum for a constant set declared inside c.
func (b *Builder) ClusterConstants(c *schema.Cluster, set schema.ConstantSet) (*codemodel.Namespace, error) {
	return b.constantSet(b.ClusterNamespace(c), UnitID{Kind: KindConstant, Scope: c.Name, Name: set.Class}, set)
}

func (b *Builder) constantSet(namespace string, id UnitID, set schema.ConstantSet) (*codemodel.Namespace, error) {
	enum, err := b.enum(namespace, set)
	if err != nil {
		return nil, unitErr(id, err)
	}
	return &codemodel.Namespace{
		Path:  namespace,
		Types: []codemodel.TypeDecl{enum},
	}, nil
}

// EnumName derives the enum identifier from a constant set class name:
// sanitize, drop everything up to the namespace's last segment, drop the
// trailing "Enum".
func EnumName(namespace, class string) string {
	name := naming.Sanitize(class)
	name = naming.TrimPrefix(name, lastSegment(namespace))
	return naming.TrimSuffix(name, enumSuffix)
}

func (b *Builder) enum(namespace string, set schema.ConstantSet) (*codemodel.Enum, error) {
	name, err := identifier(EnumName(namespace, set.Class), "enum")
	if err != nil {
		return nil, err
	}
	if len(set.Values) == 0 && !b.opts.AllowEmpty {
		return nil, ErrEmptyUnit
	}

	enum := &codemodel.Enum{
		Name: name,
		Docs: docLines(set.Description...),
	}

	var underlying types.TypeInfo
	if set.Type != "" {
		underlying, err = b.resolve(set.Type, "enum "+name)
		if err != nil {
			return nil, err
		}
		ref := codemodel.Resolved(underlying)
		enum.Underlying = &ref
	}

	declared := scope{}
	for _, v := range set.Values {
		member, err := identifier(v.Name, "enum member")
		if err != nil {
			return nil, err
		}
		if err := declared.declare(member, v.Name); err != nil {
			return nil, err
		}
		if err := b.checkLiteral(underlying, "value "+member, v.Code); err != nil {
			return nil, err
		}
		enum.Members = append(enum.Members, codemodel.EnumValue{
			Name:  member,
			Value: codemodel.Verbatim(v.Code),
		})
	}
	return enum, nil
}
