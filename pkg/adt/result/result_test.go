package result

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/adt/pkg/adt/maybe"
)

type codeError struct {
	code int
}

func (e *codeError) Error() string {
	return "code error"
}

func capture() (context.Context, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf)
	return logger.WithContext(context.Background()), buf
}

func lines(buf *bytes.Buffer) []string {
	s := strings.TrimSpace(buf.String())
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		r := Ok[int, error](1)
		assert.True(t, r.IsOk())
		assert.False(t, r.IsErr())
		assert.Equal(t, maybe.Some(1), r.Value())
		assert.True(t, r.ErrValue().IsNone())
	})

	t.Run("err", func(t *testing.T) {
		err := errors.New("test")
		r := Err[int](err)
		assert.False(t, r.IsOk())
		assert.True(t, r.IsErr())
		assert.True(t, r.Value().IsNone())
		assert.Equal(t, maybe.Some(err), r.ErrValue())
	})

	t.Run("of", func(t *testing.T) {
		assert.True(t, Of(1, nil).IsOk())
		assert.True(t, Of(0, errors.New("x")).IsErr())
	})

	t.Run("from maybe", func(t *testing.T) {
		missing := errors.New("missing")
		assert.Equal(t, Ok[int, error](3), FromMaybe[int, error](maybe.Some(3), missing))

		r := FromMaybe[int, error](maybe.None[int](), missing)
		assert.Equal(t, maybe.Some(missing), r.ErrValue())
	})
}

func TestResult_Try(t *testing.T) {
	t.Parallel()

	t.Run("ok returns value", func(t *testing.T) {
		ctx, buf := capture()

		v, err := Ok[int, error](1).Try(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, v)
		assert.Empty(t, lines(buf))
	})

	t.Run("err returns the stored error", func(t *testing.T) {
		want := errors.New("test")

		v, err := Err[int](want).Try(context.Background())
		assert.Zero(t, v)
		assert.Same(t, want, err)
		assert.ErrorIs(t, err, want)
	})

	t.Run("typed error keeps its identity", func(t *testing.T) {
		want := &codeError{code: 7}

		_, err := Err[string](want).Try(context.Background())

		var got *codeError
		require.ErrorAs(t, err, &got)
		assert.Same(t, want, got)
		assert.Equal(t, 7, got.code)
	})

	t.Run("err logs exactly once", func(t *testing.T) {
		ctx, buf := capture()

		_, err := Err[int](errors.New("test")).Try(ctx)
		require.Error(t, err)

		logged := lines(buf)
		require.Len(t, logged, 1)

		var event map[string]any
		require.NoError(t, json.Unmarshal([]byte(logged[0]), &event))
		assert.Equal(t, "error", event["level"])
		assert.Equal(t, "test", event["error"])
		assert.NotEmpty(t, event["incident_id"])
	})

	t.Run("nop logger writes nothing", func(t *testing.T) {
		ctx, buf := capture()
		ctx = zerolog.Nop().WithContext(ctx)

		_, err := Err[int](errors.New("test")).Try(ctx)
		require.Error(t, err)
		assert.Empty(t, lines(buf))
	})

	t.Run("nil error is not masked", func(t *testing.T) {
		_, err := Err[int, error](nil).Try(context.Background())
		assert.ErrorIs(t, err, ErrNilError)

		var typedNil *codeError
		_, err = Err[int](typedNil).Try(context.Background())
		assert.ErrorIs(t, err, ErrNilError)
	})
}

// swaps the global logger, so it must not run in parallel
func TestResult_TryFallsBackToGlobalLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	prev := log.Logger
	log.Logger = zerolog.New(buf)
	t.Cleanup(func() { log.Logger = prev })

	want := errors.New("test")
	_, err := Err[int](want).Try(context.Background())
	assert.Same(t, want, err)

	logged := lines(buf)
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], `"error":"test"`)

	_, err = Ok[int, error](1).Try(context.Background())
	require.NoError(t, err)
	assert.Len(t, lines(buf), 1, "ok must not log")

	ctx, attached := capture()
	_, err = Err[int](want).Try(ctx)
	require.Error(t, err)
	assert.Len(t, lines(attached), 1)
	assert.Len(t, lines(buf), 1, "an attached logger takes precedence over the global one")
}

func TestResult_MustTry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Ok[int, error](1).MustTry(context.Background()))

	want := errors.New("test")
	ctx, buf := capture()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		Err[int](want).MustTry(ctx)
	}()

	assert.Same(t, want, recovered)
	assert.Len(t, lines(buf), 1)
}

func TestResult_UnwrapOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Ok[int, error](1).UnwrapOr(2))
	assert.Equal(t, 2, Err[int](errors.New("x")).UnwrapOr(2))

	assert.Equal(t, 1, Ok[int, error](1).UnwrapOrElse(func(error) int { return -1 }))
	assert.Equal(t, 1, Err[int](errors.New("x")).UnwrapOrElse(func(err error) int { return len(err.Error()) }))
}

func TestResult_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ok(1)", Ok[int, error](1).String())
	assert.Equal(t, "Err(boom)", Err[int](errors.New("boom")).String())
	assert.Equal(t, "Err(<nil>)", Err[int, error](nil).String())
}

type listError []error

func (e listError) Error() string {
	return "list error"
}

func TestResult_TryNilSliceError(t *testing.T) {
	t.Parallel()

	var none listError
	_, err := Err[int](none).Try(context.Background())
	assert.ErrorIs(t, err, ErrNilError)
	assert.Equal(t, "Err(<nil>)", Err[int](none).String())

	_, err = Err[int](listError{errors.New("a")}).Try(context.Background())
	assert.EqualError(t, err, "list error")
}
