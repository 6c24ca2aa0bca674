package domain

import (
	"strconv"
	"strings"
)

// ObjectPrefix is the category marker carried by qualified object ids, e.g. "(O)128".
const ObjectPrefix = "(O)"

type keyKind uint8

const (
	keyNumeric keyKind = iota + 1
	keyNamed
)

// Key identifies a catchable item. It is either a numeric object id or a string
// object id; two keys are equal only when both the form and the value match.
// The zero Key is invalid and never equal to a constructed key.
type Key struct {
	kind keyKind
	num  int
	name string
}

// ObjectID returns the numeric form of an object key.
func ObjectID(id int) Key {
	return Key{kind: keyNumeric, num: id}
}

// ObjectName returns the string form of an object key.
func ObjectName(name string) Key {
	return Key{kind: keyNamed, name: name}
}

// ParseKey canonicalizes a raw item id. The "(O)" prefix is stripped and ids
// that are plain decimal integers become numeric keys.
func ParseKey(raw string) Key {
	id := CanonicalID(raw)
	if n, err := strconv.Atoi(id); err == nil && strconv.Itoa(n) == id {
		return ObjectID(n)
	}
	return ObjectName(id)
}

// CanonicalID strips the object category prefix and surrounding whitespace.
func CanonicalID(raw string) string {
	raw = strings.TrimSpace(raw)
	return strings.TrimPrefix(raw, ObjectPrefix)
}

// IsValid reports whether the key was constructed.
func (k Key) IsValid() bool {
	return k.kind != 0
}

// IsNumeric reports whether the key uses the numeric form.
func (k Key) IsNumeric() bool {
	return k.kind == keyNumeric
}

// ID returns the bare id without the category prefix.
func (k Key) ID() string {
	switch k.kind {
	case keyNumeric:
		return strconv.Itoa(k.num)
	case keyNamed:
		return k.name
	default:
		return ""
	}
}

// String returns the qualified id, e.g. "(O)128".
func (k Key) String() string {
	if !k.IsValid() {
		return ""
	}
	return ObjectPrefix + k.ID()
}

// MarshalText encodes the key as its qualified id.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a raw or qualified id.
func (k *Key) UnmarshalText(text []byte) error {
	*k = ParseKey(string(text))
	return nil
}
