// Package result provides Result[L, E], a value that is either Ok(L) or
// Err(E) where E is an error type.
//
// Result is a separate type from either.Either. Both implement
// tagged.Shape, which is where their matching logic lives.
//
// Highlights:
// - Ok/Err/Of/FromMaybe: construct a Result
// - Try/MustTry: extract the Ok value or surface the stored error as is
// - Match: dispatch on Ok/Err
// - Map/MapErr/AndThen/Tee: single-value combinators
// - Chain: fluent ctx-carrying builder over the same combinators
//
// Try writes one log event per failure through the zerolog.Logger attached
// to its context (see diag.Context). With no logger attached it uses the
// global zerolog log.Logger. Attach a silenced logger, such as the one
// diag.NewLogger builds for a test config, to turn reporting off.
package result
