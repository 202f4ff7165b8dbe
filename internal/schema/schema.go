// Package schema holds the ZCL schema entities decoded from the XML cluster
// descriptions. Values are created once per document and treated as read-only
// by everything downstream.
package schema

import (
	"errors"
	"fmt"
)

// Cluster is one <cluster> document.
type Cluster struct {
	// Name is the human readable cluster name, e.g. "Basic".
	Name string
	// Code is the cluster identifier as written in the schema, e.g. "0x0000".
	Code        string
	Description []string
	Attributes  []Attribute
	Commands    []Command
	// Constants are the constant sets declared inside the cluster.
	Constants []ConstantSet
}

// Attribute is a cluster attribute.
type Attribute struct {
	Name string
	// Type is the schema type tag, resolved through the type catalog.
	Type string
	// Code is a literal expression carried verbatim into generated code.
	Code        string
	Writable    bool
	Description []string
}

// Command is a cluster command.
type Command struct {
	Name string
	Code string
	// Source is the raw source attribute; see ParseSource.
	Source      string
	Description []string
	Fields      []Field
}

// Field is a command payload field.
type Field struct {
	Name        string
	Type        string
	Description []string
}

// ConstantSet is a named set of constants that becomes an enumeration.
type ConstantSet struct {
	// Class is the generated class name, conventionally suffixed with "Enum".
	Class       string
	Name        string
	Type        string
	Description []string
	Values      []ConstantValue
}

// ConstantValue is a single member of a ConstantSet.
type ConstantValue struct {
	Name string
	// Code is a literal expression carried verbatim into generated code.
	Code string
}

// Source is the side of the link a command originates from.
type Source int

const (
	// SourceClient marks commands sent from the client to the server.
	SourceClient Source = iota
	// SourceServer marks commands sent from the server to the client.
	SourceServer
)

// ErrUnrecognizedSource is returned by ParseSource for values other than
// "client" and "server".
var ErrUnrecognizedSource = errors.New("unrecognized command source")

// ParseSource maps the schema's source attribute onto a Source.
func ParseSource(s string) (Source, error) {
	switch s {
	case "client":
		return SourceClient, nil
	case "server":
		return SourceServer, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedSource, s)
	}
}

func (s Source) String() string {
	switch s {
	case SourceClient:
		return "client"
	case SourceServer:
		return "server"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Validate checks the invariants the decoder cannot express in struct tags.
func (c *Cluster) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("cluster missing name")
	}
	if c.Code == "" {
		return fmt.Errorf("cluster %s: missing code", c.Name)
	}
	for _, cmd := range c.Commands {
		if cmd.Name == "" {
			return fmt.Errorf("cluster %s: command %s missing name", c.Name, cmd.Code)
		}
	}
	for _, attr := range c.Attributes {
		if attr.Name == "" {
			return fmt.Errorf("cluster %s: attribute %s missing name", c.Name, attr.Code)
		}
	}
	return nil
}
