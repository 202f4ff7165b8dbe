package builder

import (
	"errors"
	"fmt"

	"github.com/zigbeenet/zcl-gen/internal/schema"
)

var (
	// ErrUnresolvedType is returned when a schema type tag has no catalog entry.
	ErrUnresolvedType = errors.New("unresolved type")
	// ErrInvalidLiteral is returned for a blank code and when the configured
	// LiteralValidator rejects a code expression.
	ErrInvalidLiteral = errors.New("invalid literal")
	// ErrUnrecognizedSource is returned for command sources other than
	// "client" and "server".
	ErrUnrecognizedSource = schema.ErrUnrecognizedSource
	// ErrDuplicateIdentifier is returned when two schema entries sanitize to
	// the same identifier within one declaration.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	// ErrInvalidIdentifier is returned when a schema name sanitizes to
	// something that cannot be an identifier (empty, or leading digit).
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrEmptyUnit is returned for units with nothing to emit.
	ErrEmptyUnit = errors.New("empty unit")
)

// UnitKind identifies the schema element a unit was generated from.
type UnitKind string

const (
	KindCommand  UnitKind = "command"
	KindConstant UnitKind = "constant"
	KindCluster  UnitKind = "cluster"
)

// UnitID is the schema identity of one generation unit.
type UnitID struct {
	Kind UnitKind
	// Scope is the owning cluster name, or the namespace for global constants.
	Scope string
	Name  string
}

func (u UnitID) String() string {
	if u.Scope == "" {
		return fmt.Sprintf("%s %q", u.Kind, u.Name)
	}
	return fmt.Sprintf("%s %q in %s", u.Kind, u.Name, u.Scope)
}

// UnitError ties a generation failure to the unit that produced it.
type UnitError struct {
	Unit UnitID
	Err  error
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("%s: %v", e.Unit, e.Err)
}

func (e *UnitError) Unwrap() error { return e.Err }

func unitErr(id UnitID, err error) error {
	return &UnitError{Unit: id, Err: err}
}
