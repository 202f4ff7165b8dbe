// Package codemodel is the language-agnostic tree the builder produces and the
// renderers consume: Namespace -> type declarations -> members. Nodes are
// built once per generated unit and never mutated after construction.
package codemodel

import (
	"github.com/zigbeenet/zcl-gen/internal/types"
)

// Namespace is the root of one generated unit.
type Namespace struct {
	// Path is the dotted namespace, e.g. "ZigBeeNet.ZCL.Clusters.Basic".
	Path string
	// Imports are emitted in the given order.
	Imports []string
	Types   []TypeDecl
}

// TypeDecl is either a *Class or an *Enum.
type TypeDecl interface {
	DeclName() string
	typeDecl()
}

// Class is a class declaration.
type Class struct {
	Name string
	// Base is the base type name; empty for none.
	Base    string
	Docs    []string
	Members []Member
}

// Enum is an enumeration declaration.
type Enum struct {
	Name string
	// Underlying is the optional backing integer type.
	Underlying *TypeRef
	Docs       []string
	Members    []EnumValue
}

func (c *Class) DeclName() string { return c.Name }
func (e *Enum) DeclName() string  { return e.Name }

func (*Class) typeDecl() {}
func (*Enum) typeDecl()  {}

// Member is one of *Field, *Property, *Constructor or *Method.
type Member interface {
	member()
}

// Field is a data member. Const fields are compile-time constants and must
// carry a Value.
type Field struct {
	Name  string
	Type  TypeRef
	Value Expr
	Const bool
	Docs  []string
}

// Property is an auto-implemented read/write property.
type Property struct {
	Name string
	Type TypeRef
	Docs []string
}

// Constructor is a parameterless constructor of the enclosing class.
type Constructor struct {
	Docs []string
	Body []Stmt
}

// Method is an instance method.
type Method struct {
	Name     string
	Returns  TypeRef
	Override bool
	Docs     []string
	Body     []Stmt
}

// EnumValue is one enumeration member.
type EnumValue struct {
	Name  string
	Value Expr
	Docs  []string
}

func (*Field) member()       {}
func (*Property) member()    {}
func (*Constructor) member() {}
func (*Method) member()      {}

// TypeRef names a type either through a resolved catalog entry or by name.
// Renderers pick the column for their target language.
type TypeRef struct {
	Info *types.TypeInfo
	Name string
}

// Resolved wraps a catalog entry.
func Resolved(info types.TypeInfo) TypeRef {
	return TypeRef{Info: &info}
}

// Named refers to a type by its name in every target language.
func Named(name string) TypeRef {
	return TypeRef{Name: name}
}

// Host returns the C# spelling of the type.
func (t TypeRef) Host() string {
	if t.Info != nil {
		return t.Info.HostType
	}
	return t.Name
}

// Go returns the Go spelling of the type.
func (t TypeRef) Go() string {
	if t.Info != nil {
		return t.Info.GoType
	}
	return t.Name
}

// IsZero reports whether the reference names no type.
func (t TypeRef) IsZero() bool {
	return t.Info == nil && t.Name == ""
}
