package tagged

import "github.com/ib-77/adt/pkg/adt/maybe"

// Shape defines a value that is tagged either left or right
type Shape[L, R any] interface {
	// Branch returns both payload slots and true if the left one is populated
	Branch() (left L, right R, isLeft bool)
}

// Match runs exactly one of onLeft and onRight and returns its result.
func Match[L, R, Out any](s Shape[L, R], onLeft func(L) Out, onRight func(R) Out) Out {
	l, r, isLeft := s.Branch()
	if isLeft {
		return onLeft(l)
	}
	return onRight(r)
}

// Fold is Match for side effects. Nil callbacks are skipped.
func Fold[L, R any](s Shape[L, R], onLeft func(L), onRight func(R)) {
	l, r, isLeft := s.Branch()
	if isLeft {
		if onLeft != nil {
			onLeft(l)
		}
		return
	}
	if onRight != nil {
		onRight(r)
	}
}

func IsLeft[L, R any](s Shape[L, R]) bool {
	_, _, isLeft := s.Branch()
	return isLeft
}

func IsRight[L, R any](s Shape[L, R]) bool {
	return !IsLeft(s)
}

func LeftOf[L, R any](s Shape[L, R]) maybe.Maybe[L] {
	l, _, isLeft := s.Branch()
	if isLeft {
		return maybe.Some(l)
	}
	return maybe.None[L]()
}

func RightOf[L, R any](s Shape[L, R]) maybe.Maybe[R] {
	_, r, isLeft := s.Branch()
	if isLeft {
		return maybe.None[R]()
	}
	return maybe.Some(r)
}
