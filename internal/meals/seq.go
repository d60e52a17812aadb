package meals

import "iter"

// filterSeq yields the values of seq that satisfy keep.
func filterSeq[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// mapSeq yields fn applied to every value of seq.
func mapSeq[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// sumBy groups the values of seq by key and sums value over each group.
func sumBy[T any, K comparable](seq iter.Seq[T], key func(T) K, value func(T) int) map[K]int {
	sums := make(map[K]int)
	for v := range seq {
		sums[key(v)] += value(v)
	}
	return sums
}
