package builder

// PropertySource selects what a command class exposes as properties.
type PropertySource string

const (
	// PropertiesFromAttributes emits one property per attribute of the owning
	// cluster.
	PropertiesFromAttributes PropertySource = "attributes"
	// PropertiesFromFields emits one property per command payload field.
	PropertiesFromFields PropertySource = "fields"
)

// Options is the configuration the builder needs from its caller. Nothing in
// the builder hard-codes target library names; they all come from here.
type Options struct {
	// RootNamespace holds the global constant enums.
	RootNamespace string
	// ClusterNamespace holds cluster classes; commands and cluster enums go
	// into ClusterNamespace.<Cluster>.
	ClusterNamespace string
	// Imports are prepended to class units in this order.
	Imports []string

	// BaseType is the base class of generated commands.
	BaseType string
	// ClusterClassPrefix and ClusterClassSuffix wrap the sanitized cluster
	// name to form the cluster class name.
	ClusterClassPrefix string
	ClusterClassSuffix string

	DirectionType  string
	ServerToClient string
	ClientToServer string

	GenericFlag       string
	ClusterIDProperty string
	CommandIDProperty string
	DirectionProperty string

	// GeneralCluster names the pseudo cluster whose commands are generic.
	GeneralCluster string

	CommandProperties PropertySource
	// LenientSource maps any source other than "server" to client-to-server
	// instead of failing the unit.
	LenientSource bool
	// LiteralValidator, when set, checks every verbatim code expression.
	LiteralValidator LiteralValidator
	// AllowEmpty builds enums without values and cluster classes without
	// attributes instead of returning ErrEmptyUnit.
	AllowEmpty bool
}

// DefaultOptions returns options matching the ZigBeeNet library layout.
func DefaultOptions() Options {
	return Options{
		RootNamespace:    "ZigBeeNet",
		ClusterNamespace: "ZigBeeNet.ZCL.Clusters",
		Imports: []string{
			"System",
			"System.Collections.Generic",
			"System.Linq",
			"System.Text",
			"ZigBeeNet.ZCL.Protocol",
			"ZigBeeNet.ZCL.Field",
		},
		BaseType:           "ZclCommand",
		ClusterClassPrefix: "Zcl",
		ClusterClassSuffix: "Cluster",
		DirectionType:      "ZclCommandDirection",
		ServerToClient:     "SERVER_TO_CLIENT",
		ClientToServer:     "CLIENT_TO_SERVER",
		GenericFlag:        "GenericCommand",
		ClusterIDProperty:  "ClusterId",
		CommandIDProperty:  "CommandId",
		DirectionProperty:  "CommandDirection",
		GeneralCluster:     "GENERAL",
		CommandProperties:  PropertiesFromAttributes,
	}
}

// withDefaults fills every empty field from DefaultOptions. Imports are only
// defaulted when nil so callers can ask for none with an empty slice.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&o.RootNamespace, d.RootNamespace)
	fill(&o.ClusterNamespace, d.ClusterNamespace)
	fill(&o.BaseType, d.BaseType)
	fill(&o.DirectionType, d.DirectionType)
	fill(&o.ServerToClient, d.ServerToClient)
	fill(&o.ClientToServer, d.ClientToServer)
	fill(&o.GenericFlag, d.GenericFlag)
	fill(&o.ClusterIDProperty, d.ClusterIDProperty)
	fill(&o.CommandIDProperty, d.CommandIDProperty)
	fill(&o.DirectionProperty, d.DirectionProperty)
	fill(&o.GeneralCluster, d.GeneralCluster)
	if o.ClusterClassPrefix == "" && o.ClusterClassSuffix == "" {
		o.ClusterClassPrefix = d.ClusterClassPrefix
		o.ClusterClassSuffix = d.ClusterClassSuffix
	}
	if o.CommandProperties == "" {
		o.CommandProperties = d.CommandProperties
	}
	if o.Imports == nil {
		o.Imports = d.Imports
	}
	return o
}
