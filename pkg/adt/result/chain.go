package result

import (
	"context"

	"github.com/ib-77/adt/pkg/adt/tagged"
)

// Chain carries a Result and the context its steps and its final Try run
// with. Every step after an Err is skipped.
type Chain[L any, E error] struct {
	ctx context.Context
	res Result[L, E]
}

func Start[L any, E error](ctx context.Context, r Result[L, E]) Chain[L, E] {
	return Chain[L, E]{ctx: ctx, res: r}
}

func FromValue[L any, E error](ctx context.Context, v L) Chain[L, E] {
	return Start(ctx, Ok[L, E](v))
}

func (c Chain[L, E]) Result() Result[L, E] {
	return c.res
}

// Then composes functions that already return a Result
func (c Chain[L, E]) Then(onOk func(ctx context.Context, v L) Result[L, E]) Chain[L, E] {
	return Chain[L, E]{ctx: c.ctx, res: AndThen(c.res, func(v L) Result[L, E] {
		return onOk(c.ctx, v)
	})}
}

// ThenTry composes functions that return (L, E), like repo calls
func (c Chain[L, E]) ThenTry(try func(ctx context.Context, v L) (L, E)) Chain[L, E] {
	return c.Then(func(ctx context.Context, v L) Result[L, E] {
		out, err := try(ctx, v)
		if !tagged.IsNil(err) {
			return Err[L](err)
		}
		return Ok[L, E](out)
	})
}

// Map transforms the Ok value
func (c Chain[L, E]) Map(onOk func(ctx context.Context, v L) L) Chain[L, E] {
	return Chain[L, E]{ctx: c.ctx, res: Map(c.res, func(v L) L {
		return onOk(c.ctx, v)
	})}
}

// Tee triggers side effects without changing the result. Nil callbacks are skipped.
func (c Chain[L, E]) Tee(onOk func(context.Context, L), onErr func(context.Context, E)) Chain[L, E] {
	var okF func(L)
	var errF func(E)
	if onOk != nil {
		okF = func(v L) { onOk(c.ctx, v) }
	}
	if onErr != nil {
		errF = func(err E) { onErr(c.ctx, err) }
	}
	tagged.Fold[L, E](c.res, okF, errF)
	return c
}

// RepeatUntil runs onOk at least once and keeps going while until holds.
func (c Chain[L, E]) RepeatUntil(onOk func(ctx context.Context, v L) Result[L, E],
	until func(ctx context.Context, v L) bool) Chain[L, E] {

	if c.res.IsErr() {
		return c
	}

	for {
		c = c.Then(onOk)

		if c.res.IsErr() || !until(c.ctx, c.res.value) {
			return c
		}
	}
}

// While runs onOk as long as the chain is Ok and while holds.
func (c Chain[L, E]) While(onOk func(ctx context.Context, v L) Result[L, E],
	while func(ctx context.Context, v L) bool) Chain[L, E] {

	for c.res.IsOk() && while(c.ctx, c.res.value) {
		c = c.Then(onOk)
	}
	return c
}

// Or returns the first Ok chain among c and alternatives, or c if none is Ok.
func (c Chain[L, E]) Or(alternatives ...Chain[L, E]) Chain[L, E] {
	if c.res.IsOk() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsOk() {
			return alt
		}
	}
	return c
}

// And returns the first Err chain among c and required, or the last one if all are Ok.
func (c Chain[L, E]) And(required ...Chain[L, E]) Chain[L, E] {
	last := c
	for _, ch := range append([]Chain[L, E]{c}, required...) {
		if ch.res.IsErr() {
			return ch
		}
		last = ch
	}
	return last
}

// Try collapses the chain, reporting a failure through the carried context.
func (c Chain[L, E]) Try() (L, error) {
	return c.res.Try(c.ctx)
}

// Finally collapses the chain into a concrete value.
func (c Chain[L, E]) Finally(onOk func(context.Context, L) L, onErr func(context.Context, E) L) L {
	return Match(c.res,
		func(v L) L { return onOk(c.ctx, v) },
		func(err E) L { return onErr(c.ctx, err) })
}
