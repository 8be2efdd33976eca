package adt

type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs up as and bs by index. The result is as long as the shorter input.
func Zip[A, B any](as []A, bs []B) []Pair[A, B] {
	n := min(len(as), len(bs))
	out := make([]Pair[A, B], 0, n)
	for i := range n {
		out = append(out, Pair[A, B]{First: as[i], Second: bs[i]})
	}
	return out
}
