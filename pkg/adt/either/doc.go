// Package either provides Either[L, R], a value that is exactly one of a
// Left(L) or a Right(R). The tag is fixed at construction.
//
// Key operations:
// - Left/Right: construct an Either
// - Match: dispatch on the tag, running exactly one branch
// - MapLeft/MapRight: transform one side, leaving the other untouched
// - LeftValue/RightValue: view a side as a maybe.Maybe
package either
