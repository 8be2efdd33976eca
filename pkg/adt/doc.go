// Package adt is the single import point for the container packages.
//
// It re-exports Maybe, Either and Result together with their
// constructors and error kinds, and adds two small utilities: Zip and
// Range/RangeInt. Type-changing operations live in the subpackages
// (maybe.Map, either.MapLeft, result.AndThen, ...).
package adt
