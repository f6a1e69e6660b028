package entity

import (
	"bytes"
	"encoding/json"
)

// Optional carries a value together with an explicit presence flag.
//
// The zero Optional is absent. When decoded from JSON, any key that appears in
// the document marks the Optional as present, including an explicit null; for
// a pointer type T that yields a present nil, which is how a patch clears a
// nullable attribute.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the value is present.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// IsZero reports whether the value is absent, so omitzero drops absent fields.
func (o Optional[T]) IsZero() bool {
	return !o.set
}

// OrElse returns the value when present and fallback otherwise.
func (o Optional[T]) OrElse(fallback T) T {
	if o.set {
		return o.value
	}

	return fallback
}

// UnmarshalJSON marks the Optional present and decodes the value. A JSON null
// leaves the value at its zero.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true

	var zero T
	o.value = zero
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	return json.Unmarshal(data, &o.value)
}

// MarshalJSON encodes the value, or null when absent.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}

	return json.Marshal(o.value)
}
