package jsonapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Document is a decoded JSON:API top-level object
type Document struct {
	Data     []Resource
	Included []Resource
}

// Resources returns primary data followed by included resources
func (d *Document) Resources() []Resource {
	out := make([]Resource, 0, len(d.Data)+len(d.Included))
	out = append(out, d.Data...)
	out = append(out, d.Included...)
	return out
}

// DecodeOptions controls how a document is decoded
type DecodeOptions struct {
	// Camelize rewrites snake_case attribute and relationship names to camelCase
	Camelize bool
}

type wireDocument struct {
	Data     json.RawMessage `json:"data"`
	Included []wireResource  `json:"included"`
}

type wireResource struct {
	Type          string                      `json:"type"`
	ID            string                      `json:"id"`
	Attributes    map[string]interface{}      `json:"attributes"`
	Relationships map[string]wireRelationship `json:"relationships"`
}

type wireRelationship struct {
	Data json.RawMessage `json:"data"`
}

// Decode reads a JSON:API document. Primary data may be a single resource
// object or an array of them.
func Decode(r io.Reader, opts DecodeOptions) (*Document, error) {
	var wire wireDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after document")
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	data, err := decodePrimaryData(wire.Data)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Data:     make([]Resource, 0, len(data)),
		Included: make([]Resource, 0, len(wire.Included)),
	}

	for _, w := range data {
		res, err := w.toResource(opts)
		if err != nil {
			return nil, err
		}
		doc.Data = append(doc.Data, res)
	}
	for _, w := range wire.Included {
		res, err := w.toResource(opts)
		if err != nil {
			return nil, err
		}
		doc.Included = append(doc.Included, res)
	}

	return doc, nil
}

// DecodeBytes is a convenience wrapper around Decode
func DecodeBytes(data []byte, opts DecodeOptions) (*Document, error) {
	return Decode(bytes.NewReader(data), opts)
}

func decodePrimaryData(raw json.RawMessage) ([]wireResource, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var list []wireResource
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("%w: data: %v", ErrInvalidDocument, err)
		}
		return list, nil
	}

	var single wireResource
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, fmt.Errorf("%w: data: %v", ErrInvalidDocument, err)
	}
	return []wireResource{single}, nil
}

func (w wireResource) toResource(opts DecodeOptions) (Resource, error) {
	if w.Type == "" || w.ID == "" {
		return Resource{}, fmt.Errorf("%w: resource is missing type or id", ErrInvalidDocument)
	}

	res := Resource{
		Type:          w.Type,
		ID:            w.ID,
		Attributes:    w.Attributes,
		Relationships: make(map[string]Relationship, len(w.Relationships)),
	}
	if res.Attributes == nil {
		res.Attributes = map[string]interface{}{}
	}
	if opts.Camelize {
		res.Attributes = CamelizeKeys(res.Attributes).(map[string]interface{})
	}

	for name, wr := range w.Relationships {
		rel, err := decodeRelationship(wr.Data)
		if err != nil {
			return Resource{}, fmt.Errorf("%w: %s %s relationship %q: %v",
				ErrInvalidDocument, w.Type, w.ID, name, err)
		}
		if opts.Camelize {
			name = CamelizeKey(name)
		}
		res.Relationships[name] = rel
	}

	return res, nil
}

// decodeRelationship maps a relationship "data" member to a Relationship:
// null or a single identifier is to-one, an array is to-many.
func decodeRelationship(raw json.RawMessage) (Relationship, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ToOne(nil), nil
	}

	if trimmed[0] == '[' {
		var ids []Identifier
		if err := json.Unmarshal(trimmed, &ids); err != nil {
			return Relationship{}, err
		}
		return ToMany(ids...), nil
	}

	var id Identifier
	if err := json.Unmarshal(trimmed, &id); err != nil {
		return Relationship{}, err
	}
	return ToOne(&id), nil
}
