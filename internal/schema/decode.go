package schema

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Document is one decoded schema file. Exactly one of Cluster and Constants is
// populated: cluster files carry a Cluster, the global constants file carries
// only constant sets.
type Document struct {
	Path      string
	Cluster   *Cluster
	Constants []ConstantSet
}

type xmlCluster struct {
	XMLName     xml.Name       `xml:"cluster"`
	Code        string         `xml:"code,attr"`
	Name        string         `xml:"name"`
	Description []string       `xml:"description"`
	Commands    []xmlCommand   `xml:"command"`
	Attributes  []xmlAttribute `xml:"attribute"`
	Constants   []xmlConstant  `xml:"constant"`
}

type xmlCommand struct {
	Code        string     `xml:"code,attr"`
	Source      string     `xml:"source,attr"`
	Name        string     `xml:"name"`
	Description []string   `xml:"description"`
	Fields      []xmlField `xml:"field"`
}

type xmlField struct {
	Type        string   `xml:"type,attr"`
	Name        string   `xml:"name"`
	Description []string `xml:"description"`
}

type xmlAttribute struct {
	Code        string   `xml:"code,attr"`
	Type        string   `xml:"type,attr"`
	Writable    string   `xml:"writable,attr"`
	Name        string   `xml:"name"`
	Description []string `xml:"description"`
}

type xmlConstant struct {
	Class       string     `xml:"class,attr"`
	Type        string     `xml:"type,attr"`
	Name        string     `xml:"name"`
	Description []string   `xml:"description"`
	Values      []xmlValue `xml:"value"`
}

type xmlValue struct {
	Code string `xml:"code,attr"`
	Name string `xml:"name,attr"`
}

type xmlZigbee struct {
	XMLName   xml.Name      `xml:"zigbee"`
	Constants []xmlConstant `xml:"constant"`
}

// Decode reads a schema document, choosing the cluster or constants layout
// from the root element.
func Decode(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("empty schema document")
			}
			return nil, fmt.Errorf("parsing schema: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "cluster":
			var raw xmlCluster
			if err := dec.DecodeElement(&raw, &start); err != nil {
				return nil, fmt.Errorf("parsing cluster: %w", err)
			}
			c, err := raw.convert()
			if err != nil {
				return nil, err
			}
			return &Document{Cluster: c}, nil
		case "zigbee":
			var raw xmlZigbee
			if err := dec.DecodeElement(&raw, &start); err != nil {
				return nil, fmt.Errorf("parsing constants: %w", err)
			}
			return &Document{Constants: convertConstants(raw.Constants)}, nil
		default:
			return nil, fmt.Errorf("unsupported root element <%s>", start.Name.Local)
		}
	}
}

// DecodeCluster parses a <cluster> document.
func DecodeCluster(r io.Reader) (*Cluster, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, err
	}
	if doc.Cluster == nil {
		return nil, fmt.Errorf("document is not a cluster definition")
	}
	return doc.Cluster, nil
}

// DecodeConstants parses a <zigbee> constants document.
func DecodeConstants(r io.Reader) ([]ConstantSet, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, err
	}
	if doc.Cluster != nil {
		return nil, fmt.Errorf("document is a cluster definition, not a constants file")
	}
	return doc.Constants, nil
}

// Load reads and decodes the schema document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

func (raw *xmlCluster) convert() (*Cluster, error) {
	c := &Cluster{
		Name:        strings.TrimSpace(raw.Name),
		Code:        strings.TrimSpace(raw.Code),
		Description: descriptionLines(raw.Description),
		Constants:   convertConstants(raw.Constants),
	}

	for _, a := range raw.Attributes {
		writable, err := parseWritable(a.Writable)
		if err != nil {
			return nil, fmt.Errorf("cluster %s attribute %q: %w", c.Name, a.Name, err)
		}
		c.Attributes = append(c.Attributes, Attribute{
			Name:        strings.TrimSpace(a.Name),
			Type:        strings.TrimSpace(a.Type),
			Code:        strings.TrimSpace(a.Code),
			Writable:    writable,
			Description: descriptionLines(a.Description),
		})
	}

	for _, cmd := range raw.Commands {
		command := Command{
			Name:        strings.TrimSpace(cmd.Name),
			Code:        strings.TrimSpace(cmd.Code),
			Source:      strings.TrimSpace(cmd.Source),
			Description: descriptionLines(cmd.Description),
		}
		for _, f := range cmd.Fields {
			command.Fields = append(command.Fields, Field{
				Name:        strings.TrimSpace(f.Name),
				Type:        strings.TrimSpace(f.Type),
				Description: descriptionLines(f.Description),
			})
		}
		c.Commands = append(c.Commands, command)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func convertConstants(raw []xmlConstant) []ConstantSet {
	var out []ConstantSet
	for _, rc := range raw {
		set := ConstantSet{
			Class:       strings.TrimSpace(rc.Class),
			Name:        strings.TrimSpace(rc.Name),
			Type:        strings.TrimSpace(rc.Type),
			Description: descriptionLines(rc.Description),
		}
		for _, v := range rc.Values {
			set.Values = append(set.Values, ConstantValue{
				Name: strings.TrimSpace(v.Name),
				Code: strings.TrimSpace(v.Code),
			})
		}
		out = append(out, set)
	}
	return out
}

func parseWritable(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "true":
		return true, nil
	case "false", "":
		return false, nil
	default:
		return false, fmt.Errorf("invalid writable value %q", s)
	}
}

// descriptionLines splits description elements into trimmed, non-blank lines,
// keeping document order and repeated lines.
func descriptionLines(elems []string) []string {
	var out []string
	for _, elem := range elems {
		for _, line := range strings.Split(elem, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			out = append(out, line)
		}
	}
	return out
}
