// Package maybe provides Maybe[T], an optional value that is either Some
// (holding a T) or None.
//
// Absence is tracked by a flag, not by a sentinel, so zero values such as
// 0, "" or false are valid Some payloads. The zero Maybe[T] is None.
//
// Highlights:
// - Some/None: construct a Maybe
// - IsSome/IsNone/IsSomeAnd: queries
// - Unwrap/Expect: unsafe extraction, panics on None
// - UnwrapOr/UnwrapOrElse/Get: safe extraction
// - Map/MapOr/MapOrElse methods: type-preserving transforms
// - Map/MapOr/MapOrElse/Match/AndThen functions: type-changing transforms
package maybe
