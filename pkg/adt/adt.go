package adt

import (
	"github.com/ib-77/adt/pkg/adt/either"
	"github.com/ib-77/adt/pkg/adt/maybe"
	"github.com/ib-77/adt/pkg/adt/result"
)

type (
	Maybe[T any]           = maybe.Maybe[T]
	Either[L, R any]       = either.Either[L, R]
	Result[L any, E error] = result.Result[L, E]
	ExpectationFailedError = maybe.ExpectationFailedError
)

var (
	ErrUnwrappedAbsentValue = maybe.ErrUnwrappedAbsentValue
	ErrNilError             = result.ErrNilError
)

func Some[T any](v T) Maybe[T] {
	return maybe.Some(v)
}

func None[T any]() Maybe[T] {
	return maybe.None[T]()
}

func Left[L, R any](v L) Either[L, R] {
	return either.Left[L, R](v)
}

func Right[L, R any](v R) Either[L, R] {
	return either.Right[L, R](v)
}

func Ok[L any, E error](v L) Result[L, E] {
	return result.Ok[L, E](v)
}

func Err[L any, E error](err E) Result[L, E] {
	return result.Err[L](err)
}
