package option

import (
	"encoding/json"
	"fmt"
)

// Option represents an optional value: either Some (holds a value) or Nothing.
// The zero value is Nothing.
type Option[T any] struct {
	val   T
	valid bool
}

// Some creates an Option containing the given value.
func Some[T any](val T) Option[T] {
	return Option[T]{val: val, valid: true}
}

// Nothing creates an empty Option.
func Nothing[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr converts a nullable pointer (as produced by JSON/query binding or a
// NULL column) into an Option.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.valid
}

func (o Option[T]) IsNothing() bool {
	return !o.valid
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.valid
}

// Unwrap returns the contained value.
// Panics if the Option is Nothing.
func (o Option[T]) Unwrap() T {
	if !o.valid {
		panic("called Unwrap on a Nothing Option")
	}
	return o.val
}

func (o Option[T]) UnwrapOr(def T) T {
	if o.valid {
		return o.val
	}
	return def
}

// Ptr returns a pointer to a copy of the value, or nil for Nothing.
func (o Option[T]) Ptr() *T {
	if !o.valid {
		return nil
	}
	v := o.val
	return &v
}

// Map applies f to the contained value, or returns Nothing.
func Map[T any, U any](o Option[T], f func(T) U) Option[U] {
	if o.valid {
		return Some(f(o.val))
	}
	return Nothing[U]()
}

// AndThen returns Nothing if o is Nothing, otherwise the result of f.
func AndThen[T any, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.valid {
		return f(o.val)
	}
	return Nothing[U]()
}

// Filter keeps the value only when keep reports true.
func (o Option[T]) Filter(keep func(T) bool) Option[T] {
	if o.valid && keep(o.val) {
		return o
	}
	return Nothing[T]()
}

func (o Option[T]) String() string {
	if o.valid {
		return fmt.Sprintf("Some(%v)", o.val)
	}
	return "Nothing"
}

// MarshalJSON renders Nothing as null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.val)
}

// UnmarshalJSON treats null as Nothing.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Nothing[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
