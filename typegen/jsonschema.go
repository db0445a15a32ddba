package typegen

import (
	"encoding/json"

	"github.com/wippyai/remote-mount/errors"
	"github.com/wippyai/remote-mount/manifest"
)

// jsonSchema is the subset of JSON Schema that remote manifests embed for
// their props and event payload sections.
type jsonSchema struct {
	Type        string                `json:"type"`
	Description string                `json:"description,omitempty"`
	Properties  map[string]jsonSchema `json:"properties,omitempty"`
	Required    []string              `json:"required,omitempty"`
}

// remoteDocument is a manifest whose props and events carry JSON Schema
// objects rather than flat field maps.
type remoteDocument struct {
	Name         string                `json:"name"`
	Version      string                `json:"version"`
	TagName      string                `json:"tagName"`
	Props        *jsonSchema           `json:"props"`
	Events       map[string]jsonSchema `json:"events,omitempty"`
	Capabilities []string              `json:"capabilities,omitempty"`
}

// FromJSONSchema translates a remote manifest, whose props and events are
// JSON Schema objects, into the flat Document form the generator consumes.
func FromJSONSchema(data []byte) (*manifest.Document, error) {
	var doc remoteDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.PhaseManifest, errors.KindBadManifest, err, "malformed remote manifest JSON")
	}
	if doc.Props == nil {
		return nil, errors.ManifestShape("missing %q section", "props")
	}

	props, err := flattenSchema("props", doc.Props)
	if err != nil {
		return nil, err
	}

	events := make(map[string]manifest.EventSpec, len(doc.Events))
	for name, schema := range doc.Events {
		payload, err := flattenSchema("event "+name, &schema)
		if err != nil {
			return nil, err
		}
		events[name] = manifest.EventSpec{Payload: payload, Description: schema.Description}
	}

	flat := &manifest.Document{
		Name:         doc.Name,
		Version:      doc.Version,
		TagName:      doc.TagName,
		Props:        props,
		Events:       events,
		Capabilities: doc.Capabilities,
	}

	// Round-trip through Parse so remote manifests get the same shape
	// checks as local ones.
	encoded, err := json.Marshal(flat)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseManifest, errors.KindBadManifest, err, "re-encode remote manifest")
	}
	return manifest.Parse(encoded)
}

func flattenSchema(section string, s *jsonSchema) (map[string]manifest.PropSpec, error) {
	if s.Type != "" && s.Type != "object" {
		return nil, errors.ManifestShape("%s: schema type must be \"object\", got %q", section, s.Type)
	}

	required := make(map[string]bool, len(s.Required))
	for _, name := range s.Required {
		required[name] = true
	}

	fields := make(map[string]manifest.PropSpec, len(s.Properties))
	for name, prop := range s.Properties {
		t := prop.Type
		if t == "" {
			t = "any"
		}
		fields[name] = manifest.PropSpec{
			Type:        t,
			Description: prop.Description,
			Required:    required[name],
		}
	}
	for name := range required {
		if _, ok := fields[name]; !ok {
			return nil, errors.ManifestShape("%s: required field %q is not declared in properties", section, name)
		}
	}
	return fields, nil
}
