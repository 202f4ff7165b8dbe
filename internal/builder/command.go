package builder

import (
	"fmt"

	"github.com/zigbeenet/zcl-gen/internal/codemodel"
	"github.com/zigbeenet/zcl-gen/internal/schema"
)

// Command builds the class for one command of cluster c.
//
// Parameters:
//   - c: the owning cluster
//   - cmd: the command, normally one of c.Commands
//
// Returns:
//   - *codemodel.Namespace: the namespace holding the command class
//   - error: a *UnitError identifying the command on failure
func (b *Builder) Command(c *schema.Cluster, cmd schema.Command) (*codemodel.Namespace, error) {
	id := UnitID{Kind: KindCommand, Scope: c.Name, Name: cmd.Name}
	ns, err := b.command(c, cmd)
	if err != nil {
		return nil, unitErr(id, err)
	}
	return ns, nil
}

func (b *Builder) command(c *schema.Cluster, cmd schema.Command) (*codemodel.Namespace, error) {
	className, err := identifier(cmd.Name, "command")
	if err != nil {
		return nil, err
	}

	source, err := b.source(cmd.Source)
	if err != nil {
		return nil, err
	}
	generic := c.Name == b.opts.GeneralCluster

	class := &codemodel.Class{
		Name: className,
		Base: b.opts.BaseType,
		Docs: b.commandDocs(c, cmd, source, generic),
	}

	props, err := b.commandProperties(c, cmd)
	if err != nil {
		return nil, err
	}
	class.Members = append(class.Members, props...)

	ctor, err := b.constructor(c, cmd, source, generic)
	if err != nil {
		return nil, err
	}
	class.Members = append(class.Members, ctor, toString(className))

	return &codemodel.Namespace{
		Path:    b.ClusterNamespace(c),
		Imports: b.opts.Imports,
		Types:   []codemodel.TypeDecl{class},
	}, nil
}

func (b *Builder) source(raw string) (schema.Source, error) {
	src, err := schema.ParseSource(raw)
	if err != nil {
		if b.opts.LenientSource {
			return schema.SourceClient, nil
		}
		return 0, err
	}
	return src, nil
}

// commandDocs returns the class documentation in its fixed order: origin
// line, schema description, generic/specific line, generated notice.
func (b *Builder) commandDocs(c *schema.Cluster, cmd schema.Command, src schema.Source, generic bool) []string {
	from, to := "client", "server"
	if src == schema.SourceServer {
		from, to = "server", "client"
	}
	lead := fmt.Sprintf("Cluster: %s. Command ID %s is sent from the %s to the %s.", c.Name, cmd.Code, from, to)

	kind := "This command is a specific command used for the " + c.Name + " cluster."
	if generic {
		kind = "This command is a generic command used across the profile."
	}

	lines := []string{lead}
	lines = append(lines, cmd.Description...)
	lines = append(lines, kind, AutoGeneratedNotice)
	return docLines(lines...)
}

func (b *Builder) commandProperties(c *schema.Cluster, cmd schema.Command) ([]codemodel.Member, error) {
	type entry struct {
		name, tag string
		docs      []string
	}
	var entries []entry
	switch b.opts.CommandProperties {
	case PropertiesFromFields:
		for _, f := range cmd.Fields {
			entries = append(entries, entry{f.Name, f.Type, f.Description})
		}
	default:
		for _, a := range c.Attributes {
			entries = append(entries, entry{a.Name, a.Type, a.Description})
		}
	}

	declared := scope{}
	members := make([]codemodel.Member, 0, len(entries))
	for _, e := range entries {
		name, err := identifier(e.name, "property")
		if err != nil {
			return nil, err
		}
		if err := declared.declare(name, e.name); err != nil {
			return nil, err
		}
		info, err := b.resolve(e.tag, "property "+name)
		if err != nil {
			return nil, err
		}
		members = append(members, &codemodel.Property{
			Name: name,
			Type: codemodel.Resolved(info),
			Docs: docLines(e.docs...),
		})
	}
	return members, nil
}

// constructor sets, in order: generic flag, cluster id (specific commands
// only), command id, direction.
func (b *Builder) constructor(c *schema.Cluster, cmd schema.Command, src schema.Source, generic bool) (*codemodel.Constructor, error) {
	body := []codemodel.Stmt{
		codemodel.Assign{Target: b.opts.GenericFlag, Value: codemodel.Bool(generic)},
	}

	if !generic {
		u16, err := b.resolve(clusterIDTag, "cluster id")
		if err != nil {
			return nil, err
		}
		if err := b.checkLiteral(u16, "cluster code", c.Code); err != nil {
			return nil, err
		}
		body = append(body, codemodel.Assign{Target: b.opts.ClusterIDProperty, Value: codemodel.Verbatim(c.Code)})
	}

	u8, err := b.resolve(commandIDTag, "command id")
	if err != nil {
		return nil, err
	}
	if err := b.checkLiteral(u8, "command code", cmd.Code); err != nil {
		return nil, err
	}
	body = append(body, codemodel.Assign{Target: b.opts.CommandIDProperty, Value: codemodel.Verbatim(cmd.Code)})

	direction := b.opts.ClientToServer
	if src == schema.SourceServer {
		direction = b.opts.ServerToClient
	}
	body = append(body, codemodel.Assign{
		Target: b.opts.DirectionProperty,
		Value:  codemodel.EnumMember{Type: b.opts.DirectionType, Member: direction},
	})

	return &codemodel.Constructor{
		Docs: []string{"Default constructor."},
		Body: body,
	}, nil
}

// toString renders "<Name> [<base>]".
func toString(className string) *codemodel.Method {
	return &codemodel.Method{
		Name:     "ToString",
		Returns:  codemodel.Named("string"),
		Override: true,
		Body: []codemodel.Stmt{
			codemodel.ReturnConcat{Parts: []codemodel.Expr{
				codemodel.String(className),
				codemodel.String(" ["),
				codemodel.BaseCall{Method: "ToString"},
				codemodel.Char(']'),
			}},
		},
	}
}
