package codemodel

// Expr is a value expression: Verbatim, Bool, String, Char, EnumMember or
// BaseCall.
type Expr interface {
	expr()
}

// Verbatim is an opaque literal copied from the schema into generated code.
// Nothing evaluates or range-checks it.
type Verbatim string

// Bool is a boolean literal.
type Bool bool

// String is a string literal; renderers quote and escape it.
type String string

// Char is a character literal.
type Char rune

// EnumMember selects a member of a named enumeration.
type EnumMember struct {
	Type   string
	Member string
}

// BaseCall invokes a method on the base type with no arguments.
type BaseCall struct {
	Method string
}

func (Verbatim) expr()   {}
func (Bool) expr()       {}
func (String) expr()     {}
func (Char) expr()       {}
func (EnumMember) expr() {}
func (BaseCall) expr()   {}

// Stmt is a statement inside a constructor or method body.
type Stmt interface {
	stmt()
}

// Assign sets a member of the current instance.
type Assign struct {
	Target string
	Value  Expr
}

// ReturnConcat returns the string concatenation of Parts.
type ReturnConcat struct {
	Parts []Expr
}

func (Assign) stmt()       {}
func (ReturnConcat) stmt() {}
