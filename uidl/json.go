package uidl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// ParseJSON decodes a record from its JSON wire form:
//
//	["tag", {"attr": "value"}, child, child, ...]
//
// where each child is either a nested array of the same shape or a
// string. The attribute object may be omitted. Only whitespace may
// follow the record.
func ParseJSON(data []byte) (*Node, error) {
	var raw json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after record", ErrMalformed)
	}
	return decodeJSONNode(raw)
}

func decodeJSONNode(raw json.RawMessage) (*Node, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return nil, fmt.Errorf("%w: node must be an array: %v", ErrMalformed, err)
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty node array", ErrMalformed)
	}

	n := &Node{}
	if err := json.Unmarshal(parts[0], &n.Tag); err != nil {
		return nil, fmt.Errorf("%w: tag must be a string: %v", ErrMalformed, err)
	}

	rest := parts[1:]
	if len(rest) > 0 && bytes.HasPrefix(bytes.TrimSpace(rest[0]), []byte("{")) {
		attrs, err := decodeJSONAttrs(rest[0])
		if err != nil {
			return nil, fmt.Errorf("<%s>: %w", n.Tag, err)
		}
		n.attrs = attrs
		rest = rest[1:]
	}

	for i, part := range rest {
		trimmed := bytes.TrimSpace(part)
		switch {
		case bytes.HasPrefix(trimmed, []byte("[")):
			child, err := decodeJSONNode(part)
			if err != nil {
				return nil, fmt.Errorf("<%s> child %d: %w", n.Tag, i, err)
			}
			n.children = append(n.children, Elem(child))
		case bytes.HasPrefix(trimmed, []byte(`"`)):
			var s string
			if err := json.Unmarshal(part, &s); err != nil {
				return nil, fmt.Errorf("%w: <%s> child %d: %v", ErrMalformed, n.Tag, i, err)
			}
			n.children = append(n.children, Text(s))
		default:
			return nil, fmt.Errorf("%w: <%s> child %d must be an array or a string", ErrMalformed, n.Tag, i)
		}
	}
	return n, nil
}

func decodeJSONAttrs(raw json.RawMessage) ([]Attr, error) {
	var m map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: attributes: %v", ErrMalformed, err)
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]Attr, 0, len(keys))
	for _, k := range keys {
		v, err := attrString(m[k])
		if err != nil {
			return nil, fmt.Errorf("%w: attribute %q: %v", ErrMalformed, k, err)
		}
		attrs = append(attrs, Attr{Key: k, Value: v})
	}
	return attrs, nil
}

func attrString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	case nil:
		return "", nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
