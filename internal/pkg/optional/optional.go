// Package optional tracks whether a JSON attribute was sent, and whether it was sent as null.
//
// A zero Field is "absent". Decoding `"k": null` gives a Field that is set but null,
// and decoding any other value gives a present Field holding that value.
package optional

import (
	"bytes"
	"encoding/json"
)

type Field[T any] struct {
	value T
	set   bool
	null  bool
}

// Of returns a present field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{value: v, set: true}
}

// Null returns a field that was sent as JSON null.
func Null[T any]() Field[T] {
	return Field[T]{set: true, null: true}
}

// FromPtr maps nil to null and anything else to a present field.
func FromPtr[T any](p *T) Field[T] {
	if p == nil {
		return Null[T]()
	}
	return Of(*p)
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }

// Set reports whether the attribute appeared in the payload at all.
func (f Field[T]) Set() bool { return f.set }

// IsNull reports whether the attribute appeared as JSON null.
func (f Field[T]) IsNull() bool { return f.set && f.null }

// Present reports whether the attribute carries a value.
func (f Field[T]) Present() bool { return f.set && !f.null }

// Get returns the value and whether it is present.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.Present()
}

// Ptr returns nil unless the field is present.
func (f Field[T]) Ptr() *T {
	if !f.Present() {
		return nil
	}
	v := f.value
	return &v
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.value = zero
		f.null = true
		return nil
	}
	f.null = false
	return json.Unmarshal(data, &f.value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Present() {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
