package internal

import (
	"iter"
)

// Concat2 concatenates multiple dual-return iterators into a single iterator sequence.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}

// Indexed yields each value keyed by consecutive ids, starting at first.
func Indexed[K ~int, V any](first K, vals ...V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n, val := range vals {
			if !yield(first+K(n), val) {
				return
			}
		}
	}
}
