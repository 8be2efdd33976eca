package either

import (
	"fmt"

	"github.com/ib-77/adt/pkg/adt/maybe"
	"github.com/ib-77/adt/pkg/adt/tagged"
)

type Either[L, R any] struct {
	left   L
	right  R
	isLeft bool
}

func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{
		left:   v,
		isLeft: true,
	}
}

func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{
		right:  v,
		isLeft: false,
	}
}

// Branch implements tagged.Shape.
func (e Either[L, R]) Branch() (L, R, bool) {
	return e.left, e.right, e.isLeft
}

func (e Either[L, R]) IsLeft() bool {
	return e.isLeft
}

func (e Either[L, R]) IsRight() bool {
	return !e.isLeft
}

func (e Either[L, R]) LeftValue() maybe.Maybe[L] {
	return tagged.LeftOf[L, R](e)
}

func (e Either[L, R]) RightValue() maybe.Maybe[R] {
	return tagged.RightOf[L, R](e)
}

// Swap exchanges the sides, so a Left becomes a Right and vice versa.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isLeft {
		return Right[R, L](e.left)
	}
	return Left[R, L](e.right)
}

func (e Either[L, R]) String() string {
	if e.isLeft {
		return fmt.Sprintf("Left(%v)", e.left)
	}
	return fmt.Sprintf("Right(%v)", e.right)
}

// Match dispatches on the tag of e.
func Match[L, R, Out any](e Either[L, R], onLeft func(L) Out, onRight func(R) Out) Out {
	return tagged.Match[L, R](e, onLeft, onRight)
}

func MapLeft[L, R, U any](e Either[L, R], f func(L) U) Either[U, R] {
	if e.isLeft {
		return Left[U, R](f(e.left))
	}
	return Right[U, R](e.right)
}

func MapRight[L, R, U any](e Either[L, R], f func(R) U) Either[L, U] {
	if e.isLeft {
		return Left[L, U](e.left)
	}
	return Right[L, U](f(e.right))
}
