package result

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ib-77/adt/pkg/adt/maybe"
	"github.com/ib-77/adt/pkg/adt/tagged"
)

// ErrNilError is returned by Try when the Result was built by Err with a nil error.
var ErrNilError = errors.New("result: Err holds a nil error")

type Result[L any, E error] struct {
	value L
	err   E
	ok    bool
}

func Ok[L any, E error](v L) Result[L, E] {
	return Result[L, E]{
		value: v,
		ok:    true,
	}
}

func Err[L any, E error](err E) Result[L, E] {
	return Result[L, E]{
		err: err,
		ok:  false,
	}
}

// Of converts a (value, error) pair into a Result.
func Of[L any](v L, err error) Result[L, error] {
	if err != nil {
		return Err[L](err)
	}
	return Ok[L, error](v)
}

// FromMaybe returns Ok with the value of m, or Err(err) when m is None.
func FromMaybe[L any, E error](m maybe.Maybe[L], err E) Result[L, E] {
	if v, ok := m.Get(); ok {
		return Ok[L, E](v)
	}
	return Err[L](err)
}

// Branch implements tagged.Shape. The Ok value is the left side.
func (r Result[L, E]) Branch() (L, E, bool) {
	return r.value, r.err, r.ok
}

func (r Result[L, E]) IsOk() bool {
	return r.ok
}

func (r Result[L, E]) IsErr() bool {
	return !r.ok
}

func (r Result[L, E]) Value() maybe.Maybe[L] {
	return tagged.LeftOf[L, E](r)
}

func (r Result[L, E]) ErrValue() maybe.Maybe[E] {
	return tagged.RightOf[L, E](r)
}

// Try returns the Ok value. On Err it logs the stored error to the
// zerolog.Logger found in ctx (or the global one, see loggerFrom) and
// returns that same error value.
func (r Result[L, E]) Try(ctx context.Context) (L, error) {
	if r.ok {
		return r.value, nil
	}

	err := r.failure()
	report(ctx, err)

	var zero L
	return zero, err
}

// MustTry is like Try but panics with the stored error.
func (r Result[L, E]) MustTry(ctx context.Context) L {
	v, err := r.Try(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

func (r Result[L, E]) UnwrapOr(d L) L {
	if !r.ok {
		return d
	}
	return r.value
}

func (r Result[L, E]) UnwrapOrElse(fallback func(E) L) L {
	if !r.ok {
		return fallback(r.err)
	}
	return r.value
}

func (r Result[L, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	if tagged.IsNil(r.err) {
		return "Err(<nil>)"
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

func (r Result[L, E]) failure() error {
	if tagged.IsNil(r.err) {
		return ErrNilError
	}
	return r.err
}

// loggerFrom returns the logger attached to ctx. With none attached and no
// zerolog.DefaultContextLogger set, it falls back to the global log.Logger.
func loggerFrom(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if zerolog.DefaultContextLogger != nil || l != zerolog.Ctx(context.Background()) {
		return l
	}
	return &log.Logger
}

func report(ctx context.Context, err error) {
	if e := loggerFrom(ctx).Error(); e.Enabled() {
		e.Err(err).
			Str("incident_id", uuid.NewString()).
			Msg("result: try on failure")
	}
}
