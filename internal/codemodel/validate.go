package codemodel

import (
	"fmt"

	"github.com/zigbeenet/zcl-gen/internal/naming"
)

// Validate checks the structural contract renderers rely on: every identifier
// is non-empty and sanitized, const fields carry a value and statements are
// well formed. A failure is a builder bug, not a schema problem.
func Validate(ns *Namespace) error {
	if ns == nil {
		return fmt.Errorf("nil namespace")
	}
	if ns.Path == "" {
		return fmt.Errorf("namespace has no path")
	}
	if len(ns.Types) == 0 {
		return fmt.Errorf("namespace %s declares no types", ns.Path)
	}

	for _, decl := range ns.Types {
		if err := checkIdent("type", decl.DeclName()); err != nil {
			return fmt.Errorf("%s: %w", ns.Path, err)
		}
		var err error
		switch d := decl.(type) {
		case *Class:
			err = validateClass(d)
		case *Enum:
			err = validateEnum(d)
		default:
			err = fmt.Errorf("unsupported declaration %T", decl)
		}
		if err != nil {
			return fmt.Errorf("%s.%s: %w", ns.Path, decl.DeclName(), err)
		}
	}
	return nil
}

func validateClass(c *Class) error {
	for i, m := range c.Members {
		switch m := m.(type) {
		case *Field:
			if err := checkIdent("field", m.Name); err != nil {
				return err
			}
			if m.Type.IsZero() {
				return fmt.Errorf("field %s has no type", m.Name)
			}
			if m.Const && m.Value == nil {
				return fmt.Errorf("const field %s has no value", m.Name)
			}
		case *Property:
			if err := checkIdent("property", m.Name); err != nil {
				return err
			}
			if m.Type.IsZero() {
				return fmt.Errorf("property %s has no type", m.Name)
			}
		case *Constructor:
			if err := validateBody(m.Body); err != nil {
				return fmt.Errorf("constructor: %w", err)
			}
		case *Method:
			if err := checkIdent("method", m.Name); err != nil {
				return err
			}
			if m.Returns.IsZero() {
				return fmt.Errorf("method %s has no return type", m.Name)
			}
			if err := validateBody(m.Body); err != nil {
				return fmt.Errorf("method %s: %w", m.Name, err)
			}
		default:
			return fmt.Errorf("member %d: unsupported member %T", i, m)
		}
	}
	return nil
}

func validateEnum(e *Enum) error {
	seen := make(map[string]bool, len(e.Members))
	for _, v := range e.Members {
		if err := checkIdent("enum member", v.Name); err != nil {
			return err
		}
		if seen[v.Name] {
			return fmt.Errorf("duplicate enum member %s", v.Name)
		}
		seen[v.Name] = true
		if v.Value == nil {
			return fmt.Errorf("enum member %s has no value", v.Name)
		}
	}
	return nil
}

func validateBody(body []Stmt) error {
	for _, s := range body {
		switch s := s.(type) {
		case Assign:
			if err := checkIdent("assignment target", s.Target); err != nil {
				return err
			}
			if s.Value == nil {
				return fmt.Errorf("assignment to %s has no value", s.Target)
			}
		case ReturnConcat:
			if len(s.Parts) == 0 {
				return fmt.Errorf("empty concatenation")
			}
		default:
			return fmt.Errorf("unsupported statement %T", s)
		}
	}
	return nil
}

func checkIdent(kind, name string) error {
	if !naming.IsIdentifier(name) {
		return fmt.Errorf("invalid %s identifier %q", kind, name)
	}
	return nil
}
