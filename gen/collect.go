package gen

// Collect drains g into a slice and returns the generator's error.
func Collect[T any](g Generator[T]) ([]T, error) {
	var slice []T
	for g.Next() {
		slice = append(slice, g.Value())
	}
	return slice, g.Error()
}

// Take collects at most n values from g, leaving the rest unconsumed.
func Take[T any](g Generator[T], n int) ([]T, error) {
	var slice []T
	for len(slice) < n && g.Next() {
		slice = append(slice, g.Value())
	}
	return slice, g.Error()
}

// Count drains g and reports how many values it produced.
func Count[T any](g Generator[T]) (int, error) {
	n := 0
	for g.Next() {
		n++
	}
	return n, g.Error()
}
