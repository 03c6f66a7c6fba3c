package repositorytest

import "iter"

// Fail returns a sequence that yields only err.
func Fail[E any](err error) iter.Seq2[E, error] {
	return func(yield func(E, error) bool) {
		var zero E
		yield(zero, err)
	}
}
