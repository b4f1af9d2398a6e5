package descriptor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// ParseFile reads a descriptor file. Any failure, including a read error,
// is returned as a *ParseError identifying the file.
func ParseFile(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("reading file: %w", err)}
	}
	return Parse(data, path)
}

// Parse decodes a descriptor from raw JSON. source is recorded on the
// descriptor and used in error messages.
//
// Invalid UTF-8 sequences are replaced with U+FFFD so the index is always
// valid UTF-8. Objects with repeated keys are rejected.
func Parse(data []byte, source string) (*Descriptor, error) {
	data = bytes.ToValidUTF8(data, []byte("\uFFFD"))

	if !json.Valid(data) {
		// Unmarshal again only to get a positioned syntax error.
		var v interface{}
		err := json.Unmarshal(data, &v)
		if err == nil {
			err = fmt.Errorf("invalid JSON")
		}
		return nil, &ParseError{Path: source, Err: err}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, &ParseError{Path: source, Err: ErrNotObject}
	}

	if err := checkDuplicateKeys(data); err != nil {
		return nil, &ParseError{Path: source, Err: err}
	}

	id, err := identifier(fields)
	if err != nil {
		return nil, &ParseError{Path: source, Err: err}
	}

	tags, err := metaTags(fields)
	if err != nil {
		return nil, &ParseError{Path: source, Err: err}
	}

	return &Descriptor{
		Identifier: id,
		Tags:       tags,
		Source:     source,
		raw:        bytes.TrimSpace(data),
	}, nil
}

// identifier extracts the required identifier string.
func identifier(fields map[string]json.RawMessage) (string, error) {
	raw, ok := fields["identifier"]
	if !ok {
		return "", ErrMissingIdentifier
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil || isNull(raw) {
		return "", ErrIdentifierNotString
	}
	return id, nil
}

// metaTags extracts meta.tags. A missing, null, or non-object meta yields no
// tags, as does a falsy tags value (null, false, "", 0). Anything else must
// be an array of strings.
func metaTags(fields map[string]json.RawMessage) ([]string, error) {
	rawMeta, ok := fields["meta"]
	if !ok || isNull(rawMeta) {
		return nil, nil
	}

	var meta map[string]json.RawMessage
	if err := json.Unmarshal(rawMeta, &meta); err != nil {
		return nil, nil
	}

	rawTags, ok := meta["tags"]
	if !ok || isFalsy(rawTags) {
		return nil, nil
	}

	var tags []string
	if err := json.Unmarshal(rawTags, &tags); err != nil {
		return nil, ErrInvalidTags
	}
	for _, raw := range tagElements(rawTags) {
		if isNull(raw) {
			return nil, ErrInvalidTags
		}
	}
	return tags, nil
}

// tagElements splits a JSON array into its raw elements.
func tagElements(raw json.RawMessage) []json.RawMessage {
	var elems []json.RawMessage
	_ = json.Unmarshal(raw, &elems)
	return elems
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func isFalsy(raw json.RawMessage) bool {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case string:
		return val == ""
	case float64:
		return val == 0
	}
	return false
}

// frame tracks one open object or array while scanning tokens.
type frame struct {
	object    bool
	expectKey bool
	keys      map[string]bool
}

// checkDuplicateKeys reports the first object key that appears twice in
// the same object, at any depth. data must already be valid JSON.
func checkDuplicateKeys(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	var stack []*frame

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil
		}

		var top *frame
		if len(stack) > 0 {
			top = stack[len(stack)-1]
		}

		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{', '[':
				if top != nil && top.object {
					top.expectKey = true
				}
				stack = append(stack, &frame{object: t == '{', expectKey: t == '{', keys: map[string]bool{}})
			case '}', ']':
				stack = stack[:len(stack)-1]
			}
		case string:
			if top != nil && top.object && top.expectKey {
				if top.keys[t] {
					return fmt.Errorf("%w: %q", ErrDuplicateKey, t)
				}
				top.keys[t] = true
				top.expectKey = false
				continue
			}
			if top != nil && top.object {
				top.expectKey = true
			}
		default:
			if top != nil && top.object {
				top.expectKey = true
			}
		}
	}
}
