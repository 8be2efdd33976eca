package maybe

import "fmt"

// Maybe represents a value that may or may not be present.
type Maybe[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Maybe[T] {
	return Maybe[T]{
		value: v,
		ok:    true,
	}
}

func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr returns None for a nil pointer and Some of the pointee otherwise.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (m Maybe[T]) IsSome() bool {
	return m.ok
}

func (m Maybe[T]) IsNone() bool {
	return !m.ok
}

// IsSomeAnd reports whether m is Some and its value satisfies pred.
// pred is not called on None.
func (m Maybe[T]) IsSomeAnd(pred func(T) bool) bool {
	return m.ok && pred(m.value)
}

// Get returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

// Unwrap returns the contained value. It panics with
// ErrUnwrappedAbsentValue if m is None.
func (m Maybe[T]) Unwrap() T {
	if !m.ok {
		panic(ErrUnwrappedAbsentValue)
	}
	return m.value
}

// Expect returns the contained value. It panics with an
// *ExpectationFailedError carrying msg if m is None.
func (m Maybe[T]) Expect(msg string) T {
	if !m.ok {
		panic(&ExpectationFailedError{Message: msg})
	}
	return m.value
}

func (m Maybe[T]) UnwrapOr(d T) T {
	if !m.ok {
		return d
	}
	return m.value
}

// UnwrapOrElse returns the contained value or the result of fallback.
// fallback runs only on None.
func (m Maybe[T]) UnwrapOrElse(fallback func() T) T {
	if !m.ok {
		return fallback()
	}
	return m.value
}

// Map applies f to the contained value. Use the package level Map to
// change the value type.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	return Map(m, f)
}

func (m Maybe[T]) MapOr(f func(T) T, d T) T {
	return MapOr(m, f, d)
}

func (m Maybe[T]) MapOrElse(onSome func(T) T, onNone func() T) T {
	return MapOrElse(m, onSome, onNone)
}

// Filter returns m if it is Some and satisfies pred, None otherwise.
func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	if m.IsSomeAnd(pred) {
		return m
	}
	return None[T]()
}

// Or returns m if it is Some, other otherwise.
func (m Maybe[T]) Or(other Maybe[T]) Maybe[T] {
	if m.ok {
		return m
	}
	return other
}

func (m Maybe[T]) String() string {
	if !m.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", m.value)
}

// Map transforms the contained value from T to U. f is not called on None.
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if !m.ok {
		return None[U]()
	}
	return Some(f(m.value))
}

func MapOr[T, U any](m Maybe[T], f func(T) U, d U) U {
	if !m.ok {
		return d
	}
	return f(m.value)
}

func MapOrElse[T, U any](m Maybe[T], onSome func(T) U, onNone func() U) U {
	return Match(m, onSome, onNone)
}

// Match runs exactly one of onSome and onNone and returns its result.
func Match[T, R any](m Maybe[T], onSome func(T) R, onNone func() R) R {
	if m.ok {
		return onSome(m.value)
	}
	return onNone()
}

// AndThen chains a Maybe-returning function on the contained value.
func AndThen[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if !m.ok {
		return None[U]()
	}
	return f(m.value)
}
