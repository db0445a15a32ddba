package manifest

import (
	"context"
	"encoding/json"
	"os"
	"sort"

	"github.com/zclconf/go-cty/cty"

	remount "github.com/wippyai/remote-mount"
	"github.com/wippyai/remote-mount/dom"
	"github.com/wippyai/remote-mount/errors"
	"github.com/wippyai/remote-mount/schema"
)

// PropSpec describes a single prop or event payload field.
type PropSpec struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

// EventSpec describes one event a component emits.
type EventSpec struct {
	Payload     map[string]PropSpec `json:"payload"`
	Description string              `json:"description,omitempty"`
}

// HostRequirements declares what the component expects from its host.
type HostRequirements struct {
	// ContractRange is the semantic version range of host contracts the
	// component supports, e.g. "^1.0.0".
	ContractRange string `json:"contractRange,omitempty"`
}

// Document is a parsed component manifest.
type Document struct {
	Props        map[string]PropSpec  `json:"props"`
	Events       map[string]EventSpec `json:"events,omitempty"`
	Host         *HostRequirements    `json:"host,omitempty"`
	Name         string               `json:"name"`
	Version      string               `json:"version"`
	TagName      string               `json:"tagName"`
	Capabilities []string             `json:"capabilities,omitempty"`
}

// Parse decodes and shape-checks a manifest document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.PhaseManifest, errors.KindBadManifest, err, "malformed manifest JSON")
	}

	if doc.Name == "" {
		return nil, errors.ManifestShape("missing %q section", "name")
	}
	if doc.Version == "" {
		return nil, errors.ManifestShape("missing %q section", "version")
	}
	if doc.TagName == "" {
		return nil, errors.ManifestShape("missing %q section", "tagName")
	}
	if !dom.ValidTag(doc.TagName) {
		return nil, errors.ManifestShape("tagName %q is not a valid custom element tag", doc.TagName)
	}
	if doc.Props == nil {
		return nil, errors.ManifestShape("missing %q section", "props")
	}

	for name, spec := range doc.Props {
		if _, err := ctyTypeFor(spec.Type); err != nil {
			return nil, errors.ManifestShape("prop %q: %s", name, err.Error())
		}
	}
	for event, spec := range doc.Events {
		for field, fs := range spec.Payload {
			if _, err := ctyTypeFor(fs.Type); err != nil {
				return nil, errors.ManifestShape("event %q payload field %q: %s", event, field, err.Error())
			}
		}
	}

	return &doc, nil
}

// Load reads and parses a manifest from the local filesystem.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ManifestFetch(path, err)
	}
	return Parse(data)
}

// Fetch retrieves and parses a manifest from a URL.
func Fetch(ctx context.Context, f remount.Fetcher, url string) (*Document, error) {
	data, err := f.Fetch(ctx, url, "")
	if err != nil {
		return nil, errors.ManifestFetch(url, err)
	}
	return Parse(data)
}

// Compile builds the schema gate for the document: a props validator plus a
// safe validator per event payload.
func (d *Document) Compile() (*schema.Manifest, error) {
	props, err := compileFields(d.Props)
	if err != nil {
		return nil, err
	}

	events := make(map[string]schema.SafeValidator, len(d.Events))
	for name, spec := range d.Events {
		ev, err := compileFields(spec.Payload)
		if err != nil {
			return nil, err
		}
		events[name] = ev
	}

	return &schema.Manifest{Props: props, Events: events}, nil
}

// EventNames returns the document's event names in sorted order.
func (d *Document) EventNames() []string {
	names := make([]string, 0, len(d.Events))
	for name := range d.Events {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func compileFields(specs map[string]PropSpec) (*schema.ObjectSpec, error) {
	fields := make(map[string]schema.Field, len(specs))
	for name, spec := range specs {
		t, err := ctyTypeFor(spec.Type)
		if err != nil {
			return nil, errors.ManifestShape("field %q: %s", name, err.Error())
		}
		fields[name] = schema.Field{Type: t, Required: spec.Required}
	}
	return schema.Object(fields), nil
}

func ctyTypeFor(name string) (cty.Type, error) {
	switch name {
	case "string":
		return cty.String, nil
	case "number", "integer":
		return cty.Number, nil
	case "boolean":
		return cty.Bool, nil
	case "array":
		return cty.List(cty.DynamicPseudoType), nil
	case "object", "any", "":
		return cty.DynamicPseudoType, nil
	default:
		return cty.NilType, errors.ManifestShape("unsupported type %q", name)
	}
}
