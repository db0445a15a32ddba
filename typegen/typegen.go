package typegen

import (
	"bytes"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/wippyai/remote-mount/errors"
	"github.com/wippyai/remote-mount/manifest"
)

// Options configures generation.
type Options struct {
	// PackageName for the generated file. Derived from the manifest name
	// when empty ("user-card" -> "usercard").
	PackageName string
}

type fieldData struct {
	GoName  string
	GoType  string
	JSONTag string
}

type eventData struct {
	Name        string
	GoName      string
	PayloadName string
	Fields      []fieldData
}

type capabilityData struct {
	Name   string
	GoName string
}

type templateData struct {
	Package      string
	Name         string
	TagName      string
	Version      string
	Props        []fieldData
	Events       []eventData
	Capabilities []capabilityData
}

// Generate renders formatted Go source declaring the manifest's contract
// types.
func Generate(doc *manifest.Document, opts Options) ([]byte, error) {
	pkg := opts.PackageName
	if pkg == "" {
		pkg = packageName(doc.Name)
	}
	if pkg == "" {
		return nil, errors.InvalidInput(errors.PhaseGenerate, "cannot derive a package name from manifest name "+doc.Name)
	}

	data := templateData{
		Package: pkg,
		Name:    doc.Name,
		TagName: doc.TagName,
		Version: doc.Version,
		Props:   fieldList(doc.Props),
	}

	for _, name := range doc.EventNames() {
		data.Events = append(data.Events, eventData{
			Name:        name,
			GoName:      exportName(name),
			PayloadName: exportName(name) + "Payload",
			Fields:      fieldList(doc.Events[name].Payload),
		})
	}

	caps := append([]string(nil), doc.Capabilities...)
	sort.Strings(caps)
	for _, name := range caps {
		data.Capabilities = append(data.Capabilities, capabilityData{
			Name:   name,
			GoName: exportName(name),
		})
	}

	var buf bytes.Buffer
	if err := typesTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "render types")
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "format generated source")
	}
	return formatted, nil
}

// WriteFile generates types for doc into outDir. The file name defaults to
// "<package>_types.go" when name is empty. Returns the written path.
func WriteFile(doc *manifest.Document, outDir, name string, opts Options) (string, error) {
	code, err := Generate(doc, opts)
	if err != nil {
		return "", err
	}

	if name == "" {
		pkg := opts.PackageName
		if pkg == "" {
			pkg = packageName(doc.Name)
		}
		name = pkg + "_types.go"
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "create output directory")
	}

	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, code, 0o644); err != nil {
		return "", errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "write output file")
	}
	return path, nil
}

func fieldList(specs map[string]manifest.PropSpec) []fieldData {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]fieldData, 0, len(names))
	for _, name := range names {
		spec := specs[name]
		goType := goTypeFor(spec.Type)
		tag := name
		if !spec.Required {
			if goType != "any" && !strings.HasPrefix(goType, "map[") && !strings.HasPrefix(goType, "[]") {
				goType = "*" + goType
			}
			tag += ",omitempty"
		}
		fields = append(fields, fieldData{
			GoName:  exportName(name),
			GoType:  goType,
			JSONTag: tag,
		})
	}
	return fields
}

func goTypeFor(t string) string {
	switch t {
	case "string":
		return "string"
	case "number":
		return "float64"
	case "integer":
		return "int64"
	case "boolean":
		return "bool"
	case "array":
		return "[]any"
	case "object":
		return "map[string]any"
	default:
		return "any"
	}
}

// exportName converts a manifest field name to an exported Go identifier:
// "userId" -> "UserId", "item-count" -> "ItemCount".
func exportName(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		switch {
		case r == '-' || r == '_' || r == '.' || r == ' ':
			upperNext = true
		case upperNext:
			b.WriteString(strings.ToUpper(string(r)))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// packageName strips separators entirely: "user-card" -> "usercard".
func packageName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		s = "c" + s
	}
	return s
}

var typesTemplate = template.Must(template.New("types").Parse(`// Code generated by remount. DO NOT EDIT.

// Package {{.Package}} declares the contract types for the {{.Name}} remote component.
package {{.Package}}

// TagName is the custom element tag the component mounts as.
const TagName = "{{.TagName}}"

// ContractVersion is the manifest version these types were generated from.
const ContractVersion = "{{.Version}}"

// Props are the component's mount props.
type Props struct {
{{- range .Props}}
	{{.GoName}} {{.GoType}} ` + "`json:\"{{.JSONTag}}\"`" + `
{{- end}}
}
{{range .Events}}
// {{.PayloadName}} is the payload of the {{.Name}} event.
type {{.PayloadName}} struct {
{{- range .Fields}}
	{{.GoName}} {{.GoType}} ` + "`json:\"{{.JSONTag}}\"`" + `
{{- end}}
}
{{end}}
// Events maps event names to their payload shapes.
type Events struct {
{{- range .Events}}
	{{.GoName}} {{.PayloadName}} ` + "`json:\"{{.Name}}\"`" + `
{{- end}}
}

// Capabilities names the host services the component expects.
type Capabilities struct {
{{- range .Capabilities}}
	{{.GoName}} any ` + "`json:\"{{.Name}}\"`" + `
{{- end}}
}
`))
