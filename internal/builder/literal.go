package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zigbeenet/zcl-gen/internal/types"
)

// LiteralValidator inspects a verbatim code expression before it is placed
// into the model. info is the zero TypeInfo when the target type is unknown.
// A nil validator accepts everything.
type LiteralValidator func(info types.TypeInfo, literal string) error

type intKind struct {
	bits   int
	signed bool
}

var integerHostTypes = map[string]intKind{
	"byte":   {8, false},
	"sbyte":  {8, true},
	"short":  {16, true},
	"ushort": {16, false},
	"int":    {32, true},
	"uint":   {32, false},
	"long":   {64, true},
	"ulong":  {64, false},
}

// IntegerLiterals accepts decimal, hex, octal and binary integer literals
// that fit the host type. Non-integer host types are rejected.
func IntegerLiterals(info types.TypeInfo, literal string) error {
	lit := strings.TrimSpace(literal)
	if lit == "" {
		return fmt.Errorf("empty literal")
	}

	if info.HostType == "" {
		if _, err := strconv.ParseInt(lit, 0, 64); err == nil {
			return nil
		}
		if _, err := strconv.ParseUint(lit, 0, 64); err != nil {
			return fmt.Errorf("not an integer literal")
		}
		return nil
	}

	kind, ok := integerHostTypes[info.HostType]
	if !ok {
		return fmt.Errorf("host type %s cannot hold an integer literal", info.HostType)
	}
	var err error
	if kind.signed {
		_, err = strconv.ParseInt(lit, 0, kind.bits)
	} else {
		_, err = strconv.ParseUint(lit, 0, kind.bits)
	}
	if err != nil {
		return fmt.Errorf("does not fit %s", info.HostType)
	}
	return nil
}

// checkLiteral rejects blank literals unconditionally and runs the
// configured LiteralValidator on everything else.
func (b *Builder) checkLiteral(info types.TypeInfo, what, literal string) error {
	if strings.TrimSpace(literal) == "" {
		return fmt.Errorf("%w: %s has no code", ErrInvalidLiteral, what)
	}
	if b.opts.LiteralValidator == nil {
		return nil
	}
	if err := b.opts.LiteralValidator(info, literal); err != nil {
		return fmt.Errorf("%w: %s %q: %w", ErrInvalidLiteral, what, literal, err)
	}
	return nil
}
