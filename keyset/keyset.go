// Package keyset implements the JWK Set document used to persist generated
// keys. A JWK Set is a JSON object with a "keys" member whose value is an
// array of JWKs (RFC7517 section 5). Keys read from an existing document are
// kept as the raw JSON read, so rewriting a set only changes their
// whitespace. Other members of the object are preserved but otherwise
// ignored. Documents are written without HTML escaping.
package keyset

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/pkg/errors"

	"github.com/smallstep/jwkgen/utils"
)

const keysMember = "keys"

// KeySet is an ordered list of JWKs.
type KeySet struct {
	keys    []json.RawMessage
	members map[string]json.RawMessage
}

// New returns an empty KeySet.
func New() *KeySet {
	return &KeySet{
		members: make(map[string]json.RawMessage),
	}
}

// Parse parses a JWK Set document. Every element of the "keys" array must be
// a valid JWK.
func Parse(b []byte) (*KeySet, error) {
	members := make(map[string]json.RawMessage)
	if err := json.Unmarshal(b, &members); err != nil {
		return nil, errors.Wrap(err, "error parsing JWK Set")
	}

	raw, ok := members[keysMember]
	if !ok {
		return nil, errors.New("error parsing JWK Set: missing 'keys' member")
	}
	delete(members, keysMember)

	var keys []json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil || keys == nil {
		return nil, errors.New("error parsing JWK Set: 'keys' must be an array")
	}
	for i, k := range keys {
		if _, err := jwk.ParseKey(k); err != nil {
			return nil, errors.Wrapf(err, "error parsing JWK Set: invalid key at index %d", i)
		}
	}

	return &KeySet{
		keys:    keys,
		members: members,
	}, nil
}

// Load reads the JWK Set stored in filename. A missing file is loaded as an
// empty set.
func Load(filename string) (*KeySet, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return New(), nil
	}
	b, err := utils.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	ks, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse existing JWK Set %s", filename)
	}
	return ks, nil
}

// Add appends the given key to the end of the set.
func (s *KeySet) Add(key jwk.Key) error {
	b, err := marshalKey(key)
	if err != nil {
		return err
	}
	s.keys = append(s.keys, b)
	return nil
}

// Len returns the number of keys in the set.
func (s *KeySet) Len() int {
	return len(s.keys)
}

// Keys parses and returns the keys in the set.
func (s *KeySet) Keys() ([]jwk.Key, error) {
	keys := make([]jwk.Key, len(s.keys))
	for i, b := range s.keys {
		k, err := jwk.ParseKey(b)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid key at index %d", i)
		}
		keys[i] = k
	}
	return keys, nil
}

// MarshalJSON implements the json.Marshaler interface. Members are encoded
// in lexical order and the keys read are written as they were, apart from
// insignificant whitespace.
func (s *KeySet) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, len(s.members)+1)
	for k, v := range s.members {
		m[k] = v
	}
	keys := s.keys
	if keys == nil {
		keys = []json.RawMessage{}
	}
	m[keysMember] = keys
	return encode(m)
}

// Of returns a KeySet with the given keys.
func Of(keys ...jwk.Key) (*KeySet, error) {
	s := New()
	for _, k := range keys {
		if err := s.Add(k); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Marshal returns the indented JSON encoding of v followed by a newline. It
// is used for both JWKs and KeySets. HTML characters are not escaped.
func Marshal(v interface{}) ([]byte, error) {
	if key, ok := v.(jwk.Key); ok {
		b, err := marshalKey(key)
		if err != nil {
			return nil, err
		}
		v = json.RawMessage(b)
	}
	b, err := encode(v)
	if err != nil {
		return nil, errors.Wrap(err, "error marshaling JSON")
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return nil, errors.Wrap(err, "error formatting JSON")
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// encode returns the compact JSON encoding of v without HTML escaping.
func encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// marshalKey returns the JSON encoding of a new key. The output of jwx is
// decoded and encoded again so string members are not HTML escaped.
func marshalKey(key jwk.Key) ([]byte, error) {
	b, err := json.Marshal(key)
	if err != nil {
		return nil, errors.Wrap(err, "error marshaling JWK")
	}
	var m map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		return nil, errors.Wrap(err, "error marshaling JWK")
	}
	b, err = encode(m)
	if err != nil {
		return nil, errors.Wrap(err, "error marshaling JWK")
	}
	return b, nil
}
