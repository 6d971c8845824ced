// Package gen defines the pull-based generator protocol that every lazy
// sequence in this repository speaks.
package gen

// Generator produces values on demand. Next advances the generator and
// reports whether a value is available; Value returns the current value and
// is repeatable without side effects; Error returns the cause once Next has
// returned false, nil on clean exhaustion.
type Generator[T any] interface {
	Next() bool
	Value() T
	Error() error
}

// Func adapts a single advance closure into a Generator. The closure holds
// whatever state the sequence needs.
type Func[T any] struct {
	Advance func() (hasValue bool, value T, err error)
	value   T
	err     error
}

func (g *Func[T]) Next() bool {
	hasValue, value, err := g.Advance()
	g.value = value
	g.err = err
	return hasValue
}

func (g *Func[T]) Value() T {
	return g.value
}

func (g *Func[T]) Error() error {
	return g.err
}

// Empty returns a generator with no values and no error.
func Empty[T any]() Generator[T] {
	return &Func[T]{Advance: func() (bool, T, error) {
		var zero T
		return false, zero, nil
	}}
}

// Fail returns a generator that produces no values and reports err.
func Fail[T any](err error) Generator[T] {
	return &Func[T]{Advance: func() (bool, T, error) {
		var zero T
		return false, zero, err
	}}
}

type sliceGen[T any] struct {
	slice []T
	index int
}

// FromSlice returns a generator over the elements of slice, in order.
func FromSlice[T any](slice []T) Generator[T] {
	return &sliceGen[T]{slice: slice, index: -1}
}

func (s *sliceGen[T]) Next() bool {
	s.index++
	return s.index < len(s.slice)
}

func (s *sliceGen[T]) Value() T {
	return s.slice[s.index]
}

func (s *sliceGen[T]) Error() error {
	return nil
}
