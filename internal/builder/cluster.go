package builder

import (
	"fmt"

	"github.com/zigbeenet/zcl-gen/internal/codemodel"
	"github.com/zigbeenet/zcl-gen/internal/schema"
)

const (
	clusterIDTag   = "UNSIGNED_16_BIT_INTEGER"
	commandIDTag   = "UNSIGNED_8_BIT_INTEGER"
	clusterNameTag = "CHARACTER_STRING"

	clusterIDConst   = "ClusterId"
	clusterNameConst = "ClusterName"
)

// Cluster builds the cluster class: identity constants, one constant per
// read-only attribute and one property per writable attribute.
func (b *Builder) Cluster(c *schema.Cluster) (*codemodel.Namespace, error) {
	id := UnitID{Kind: KindCluster, Scope: c.Name, Name: c.Name}
	class, err := b.cluster(c)
	if err != nil {
		return nil, unitErr(id, err)
	}
	return &codemodel.Namespace{
		Path:    b.opts.ClusterNamespace,
		Imports: b.opts.Imports,
		Types:   []codemodel.TypeDecl{class},
	}, nil
}

func (b *Builder) cluster(c *schema.Cluster) (*codemodel.Class, error) {
	if len(c.Attributes) == 0 && !b.opts.AllowEmpty {
		return nil, ErrEmptyUnit
	}

	name, err := identifier(b.ClusterClassName(c), "cluster")
	if err != nil {
		return nil, err
	}

	u16, err := b.resolve(clusterIDTag, "cluster id")
	if err != nil {
		return nil, err
	}
	str, err := b.resolve(clusterNameTag, "cluster name")
	if err != nil {
		return nil, err
	}
	if err := b.checkLiteral(u16, "cluster code", c.Code); err != nil {
		return nil, err
	}

	class := &codemodel.Class{
		Name: name,
		Docs: docLines(c.Description...),
		Members: []codemodel.Member{
			&codemodel.Field{Name: clusterIDConst, Type: codemodel.Resolved(u16), Value: codemodel.Verbatim(c.Code), Const: true},
			&codemodel.Field{Name: clusterNameConst, Type: codemodel.Resolved(str), Value: codemodel.String(c.Name), Const: true},
		},
	}

	declared := scope{clusterIDConst: clusterIDConst, clusterNameConst: clusterNameConst}
	for _, attr := range c.Attributes {
		member, err := b.attribute(declared, attr)
		if err != nil {
			return nil, err
		}
		class.Members = append(class.Members, member)
	}
	return class, nil
}

// attribute maps a read-only attribute to a constant initialized from its
// code and a writable one to a property.
func (b *Builder) attribute(declared scope, attr schema.Attribute) (codemodel.Member, error) {
	name, err := identifier(attr.Name, "attribute")
	if err != nil {
		return nil, err
	}
	if err := declared.declare(name, attr.Name); err != nil {
		return nil, err
	}
	info, err := b.resolve(attr.Type, "attribute "+name)
	if err != nil {
		return nil, err
	}

	if attr.Writable {
		return &codemodel.Property{
			Name: name,
			Type: codemodel.Resolved(info),
			Docs: docLines(attr.Description...),
		}, nil
	}

	if err := b.checkLiteral(info, "attribute "+name, attr.Code); err != nil {
		return nil, err
	}
	return &codemodel.Field{
		Name:  name,
		Type:  codemodel.Resolved(info),
		Value: codemodel.Verbatim(attr.Code),
		Const: true,
		Docs:  docLines(attr.Description...),
	}, nil
}

// ReadOnlyConstant builds the constant field for a single read-only
// attribute. It is the standalone form of what Cluster does per attribute.
func (b *Builder) ReadOnlyConstant(attr schema.Attribute) (*codemodel.Field, error) {
	id := UnitID{Kind: KindCluster, Name: attr.Name}
	if attr.Writable {
		return nil, unitErr(id, fmt.Errorf("attribute %q is writable", attr.Name))
	}
	m, err := b.attribute(scope{}, attr)
	if err != nil {
		return nil, unitErr(id, err)
	}
	return m.(*codemodel.Field), nil
}
