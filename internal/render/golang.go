package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/tools/imports"

	"github.com/zigbeenet/zcl-gen/internal/codemodel"
	"github.com/zigbeenet/zcl-gen/internal/naming"
)

// Go renders code models as Go source:
//   - classes become structs embedding their base type
//   - constructors become New<Name> functions
//   - ToString overrides become String methods
//   - const fields become package constants prefixed with the type name
//   - enums become typed integer constants
//
// Output is formatted with goimports.
type Go struct {
	opts Options
}

// NewGo creates a Go renderer.
func NewGo(opts Options) *Go {
	return &Go{opts: opts.withDefaults()}
}

func (r *Go) Language() string  { return "go" }
func (r *Go) Extension() string { return "go" }

func (r *Go) Render(ns *codemodel.Namespace) ([]byte, error) {
	mustValidate(ns)

	pkg := r.packageName(ns.Path)
	f := &goFile{w: &codeWriter{indent: "\t"}, imports: map[string]bool{}}
	for _, decl := range ns.Types {
		f.w.blank()
		switch d := decl.(type) {
		case *codemodel.Class:
			f.class(d)
		case *codemodel.Enum:
			f.enum(d)
		}
	}

	head := &codeWriter{indent: "\t"}
	head.line("// Code generated by zcl-gen. DO NOT EDIT.")
	head.blank()
	head.line("package %s", pkg)
	if len(f.imports) > 0 {
		paths := make([]string, 0, len(f.imports))
		for p := range f.imports {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		head.blank()
		if len(paths) == 1 {
			head.line("import %s", strconv.Quote(paths[0]))
		} else {
			head.line("import (")
			for _, p := range paths {
				head.line("\t%s", strconv.Quote(p))
			}
			head.line(")")
		}
	}
	head.buf.Write(f.w.buf.Bytes())

	formatted, err := imports.Process(pkg+".go", head.buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting go source for %s: %w", ns.Path, err)
	}
	return Normalize(formatted, r.opts.LineEnding), nil
}

// packageName is the configured package or the lowercased last namespace
// segment.
func (r *Go) packageName(path string) string {
	if r.opts.GoPackage != "" {
		return r.opts.GoPackage
	}
	name := strings.ToLower(naming.Sanitize(lastSegment(path)))
	if name == "" || !unicode.IsLetter([]rune(name)[0]) {
		name = "zcl" + name
	}
	return name
}

// goFile accumulates one file's declarations and the standard library
// packages they reference.
type goFile struct {
	w       *codeWriter
	imports map[string]bool
}

func (f *goFile) typeName(t codemodel.TypeRef) string {
	name := t.Go()
	if strings.Contains(name, "time.") {
		f.imports["time"] = true
	}
	return name
}

func (f *goFile) class(c *codemodel.Class) {
	w := f.w
	var consts []*codemodel.Field
	for _, m := range c.Members {
		if k, ok := m.(*codemodel.Field); ok && k.Const {
			consts = append(consts, k)
		}
	}
	if len(consts) > 0 {
		w.line("const (")
		w.depth++
		for _, k := range consts {
			goDocs(w, k.Docs)
			w.line("%s%s %s = %s", c.Name, k.Name, f.typeName(k.Type), goExpr(c, k.Value))
		}
		w.depth--
		w.line(")")
		w.blank()
	}

	goDocs(w, c.Docs)
	w.line("type %s struct {", c.Name)
	w.depth++
	if c.Base != "" {
		w.line("%s", c.Base)
	}
	for _, m := range c.Members {
		switch m := m.(type) {
		case *codemodel.Field:
			if m.Const {
				continue
			}
			goDocs(w, m.Docs)
			w.line("%s %s", m.Name, f.typeName(m.Type))
		case *codemodel.Property:
			goDocs(w, m.Docs)
			w.line("%s %s", m.Name, f.typeName(m.Type))
		}
	}
	w.depth--
	w.line("}")

	for _, m := range c.Members {
		switch m := m.(type) {
		case *codemodel.Constructor:
			w.blank()
			f.constructor(c, m)
		case *codemodel.Method:
			w.blank()
			f.method(c, m)
		}
	}
}

func (f *goFile) constructor(c *codemodel.Class, ctor *codemodel.Constructor) {
	w := f.w
	if len(docText(ctor.Docs)) > 0 {
		w.line("// New%s creates a %s with its identity fields set.", c.Name, c.Name)
	}
	w.line("func New%s() *%s {", c.Name, c.Name)
	w.depth++
	w.line("c := &%s{}", c.Name)
	f.statements(c, ctor.Body)
	w.line("return c")
	w.depth--
	w.line("}")
}

func (f *goFile) method(c *codemodel.Class, m *codemodel.Method) {
	w := f.w
	goDocs(w, m.Docs)
	w.line("func (c *%s) %s() %s {", c.Name, goMethodName(m.Name), f.typeName(m.Returns))
	w.depth++
	f.statements(c, m.Body)
	w.depth--
	w.line("}")
}

func (f *goFile) statements(c *codemodel.Class, body []codemodel.Stmt) {
	w := f.w
	for _, s := range body {
		switch s := s.(type) {
		case codemodel.Assign:
			w.line("c.%s = %s", s.Target, goExpr(c, s.Value))
		case codemodel.ReturnConcat:
			f.imports["strings"] = true
			w.line("var builder strings.Builder")
			for _, part := range s.Parts {
				if ch, ok := part.(codemodel.Char); ok {
					w.line("builder.WriteRune(%s)", strconv.QuoteRune(rune(ch)))
					continue
				}
				w.line("builder.WriteString(%s)", goExpr(c, part))
			}
			w.line("return builder.String()")
		}
	}
}

func (f *goFile) enum(e *codemodel.Enum) {
	w := f.w
	underlying := "int"
	if e.Underlying != nil {
		underlying = f.typeName(*e.Underlying)
	}
	goDocs(w, e.Docs)
	w.line("type %s %s", e.Name, underlying)
	w.blank()
	w.line("const (")
	w.depth++
	for _, v := range e.Members {
		goDocs(w, v.Docs)
		w.line("%s%s %s = %s", e.Name, v.Name, e.Name, goExpr(nil, v.Value))
	}
	w.depth--
	w.line(")")
}

func goDocs(w *codeWriter, lines []string) {
	for _, l := range docText(lines) {
		w.line("// %s", l)
	}
}

func goExpr(c *codemodel.Class, e codemodel.Expr) string {
	switch e := e.(type) {
	case codemodel.Verbatim:
		return string(e)
	case codemodel.Bool:
		return strconv.FormatBool(bool(e))
	case codemodel.String:
		return strconv.Quote(string(e))
	case codemodel.Char:
		return strconv.QuoteRune(rune(e))
	case codemodel.EnumMember:
		return e.Type + e.Member
	case codemodel.BaseCall:
		if c == nil || c.Base == "" {
			panic("render: base call outside a derived class")
		}
		return "c." + c.Base + "." + goMethodName(e.Method) + "()"
	default:
		panic(fmt.Sprintf("render: unsupported expression %T", e))
	}
}

// goMethodName maps conventional method names onto their Go counterparts.
func goMethodName(name string) string {
	if name == "ToString" {
		return "String"
	}
	return name
}

func lastSegment(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}
