package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/zigbeenet/zcl-gen/internal/codemodel"
)

// CSharp renders code models as C# with Allman braces and XML doc comments.
type CSharp struct {
	opts Options
}

// NewCSharp creates a C# renderer.
func NewCSharp(opts Options) *CSharp {
	return &CSharp{opts: opts.withDefaults()}
}

func (r *CSharp) Language() string  { return "csharp" }
func (r *CSharp) Extension() string { return "cs" }

// Render emits usings in model order, then the namespace block holding each
// declaration separated by a blank line.
func (r *CSharp) Render(ns *codemodel.Namespace) ([]byte, error) {
	mustValidate(ns)

	w := &codeWriter{indent: r.opts.Indent}
	for _, imp := range ns.Imports {
		w.line("using %s;", imp)
	}
	if len(ns.Imports) > 0 {
		w.blank()
	}

	w.line("namespace %s", ns.Path)
	w.open()
	for i, decl := range ns.Types {
		if i > 0 {
			w.blank()
		}
		switch d := decl.(type) {
		case *codemodel.Class:
			r.class(w, d)
		case *codemodel.Enum:
			r.enum(w, d)
		}
	}
	w.close()

	return Normalize(w.buf.Bytes(), r.opts.LineEnding), nil
}

func (r *CSharp) class(w *codeWriter, c *codemodel.Class) {
	r.docs(w, c.Docs)
	if c.Base != "" {
		w.line("public class %s : %s", c.Name, c.Base)
	} else {
		w.line("public class %s", c.Name)
	}
	w.open()
	for i, m := range c.Members {
		if i > 0 {
			w.blank()
		}
		r.member(w, c, m)
	}
	w.close()
}

func (r *CSharp) member(w *codeWriter, c *codemodel.Class, m codemodel.Member) {
	switch m := m.(type) {
	case *codemodel.Field:
		r.docs(w, m.Docs)
		switch {
		case m.Const:
			w.line("public const %s %s = %s;", m.Type.Host(), m.Name, csExpr(m.Value))
		case m.Value != nil:
			w.line("public %s %s = %s;", m.Type.Host(), m.Name, csExpr(m.Value))
		default:
			w.line("public %s %s;", m.Type.Host(), m.Name)
		}
	case *codemodel.Property:
		r.docs(w, m.Docs)
		w.line("public %s %s { get; set; }", m.Type.Host(), m.Name)
	case *codemodel.Constructor:
		r.docs(w, m.Docs)
		w.line("public %s()", c.Name)
		r.body(w, m.Body)
	case *codemodel.Method:
		r.docs(w, m.Docs)
		modifier := "public"
		if m.Override {
			modifier = "public override"
		}
		w.line("%s %s %s()", modifier, m.Returns.Host(), m.Name)
		r.body(w, m.Body)
	}
}

func (r *CSharp) body(w *codeWriter, body []codemodel.Stmt) {
	w.open()
	for _, s := range body {
		switch s := s.(type) {
		case codemodel.Assign:
			w.line("%s = %s;", s.Target, csExpr(s.Value))
		case codemodel.ReturnConcat:
			w.line("var builder = new StringBuilder();")
			w.blank()
			for _, part := range s.Parts {
				w.line("builder.Append(%s);", csExpr(part))
			}
			w.blank()
			w.line("return builder.ToString();")
		}
	}
	w.close()
}

// csIntegral lists the types C# accepts as an enum base.
var csIntegral = map[string]bool{
	"byte": true, "sbyte": true,
	"short": true, "ushort": true,
	"int": true, "uint": true,
	"long": true, "ulong": true,
}

func (r *CSharp) enum(w *codeWriter, e *codemodel.Enum) {
	r.docs(w, e.Docs)
	if e.Underlying != nil && csIntegral[e.Underlying.Host()] {
		w.line("public enum %s : %s", e.Name, e.Underlying.Host())
	} else {
		w.line("public enum %s", e.Name)
	}
	w.open()
	for i, v := range e.Members {
		r.docs(w, v.Docs)
		sep := ","
		if i == len(e.Members)-1 {
			sep = ""
		}
		w.line("%s = %s%s", v.Name, csExpr(v.Value), sep)
	}
	w.close()
}

// docs writes a <summary> block; nothing when every line is blank.
func (r *CSharp) docs(w *codeWriter, lines []string) {
	text := docText(lines)
	if len(text) == 0 {
		return
	}
	w.line("/// <summary>")
	for _, l := range text {
		w.line("/// %s", xmlEscaper.Replace(l))
	}
	w.line("/// </summary>")
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func csExpr(e codemodel.Expr) string {
	switch e := e.(type) {
	case codemodel.Verbatim:
		return string(e)
	case codemodel.Bool:
		if e {
			return "true"
		}
		return "false"
	case codemodel.String:
		return `"` + csStringEscaper.Replace(string(e)) + `"`
	case codemodel.Char:
		return "'" + csCharEscape(rune(e)) + "'"
	case codemodel.EnumMember:
		return e.Type + "." + e.Member
	case codemodel.BaseCall:
		return "base." + e.Method + "()"
	default:
		panic(fmt.Sprintf("render: unsupported expression %T", e))
	}
}

var csStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\x00", `\0`,
)

func csCharEscape(r rune) string {
	switch r {
	case '\'':
		return `\'`
	case '\\':
		return `\\`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case 0:
		return `\0`
	default:
		return string(r)
	}
}

// codeWriter accumulates indented lines for brace-block languages.
type codeWriter struct {
	buf    bytes.Buffer
	indent string
	depth  int
}

func (w *codeWriter) line(format string, args ...any) {
	w.buf.WriteString(strings.Repeat(w.indent, w.depth))
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteByte('\n')
}

func (w *codeWriter) blank() {
	w.buf.WriteByte('\n')
}

func (w *codeWriter) open() {
	w.line("{")
	w.depth++
}

func (w *codeWriter) close() {
	w.depth--
	w.line("}")
}
