package result

import "github.com/ib-77/adt/pkg/adt/tagged"

// Match runs onOk or onErr depending on r and returns its result.
func Match[L any, E error, Out any](r Result[L, E], onOk func(L) Out, onErr func(E) Out) Out {
	return tagged.Match[L, E](r, onOk, onErr)
}

// Map transforms the Ok value, passing an Err through unchanged.
func Map[L, U any, E error](r Result[L, E], onOk func(L) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](onOk(r.value))
	}
	return Err[U](r.err)
}

// MapErr transforms the error, passing an Ok through unchanged.
func MapErr[L any, E, F error](r Result[L, E], onErr func(E) F) Result[L, F] {
	if r.ok {
		return Ok[L, F](r.value)
	}
	return Err[L](onErr(r.err))
}

// AndThen switches to the Result returned by onOk. An Err short-circuits.
func AndThen[L, U any, E error](r Result[L, E], onOk func(L) Result[U, E]) Result[U, E] {
	if r.ok {
		return onOk(r.value)
	}
	return Err[U](r.err)
}

// Tee runs a side effect on the Ok value and returns r unchanged.
func Tee[L any, E error](r Result[L, E], onOk func(L)) Result[L, E] {
	tagged.Fold[L, E](r, onOk, nil)
	return r
}
