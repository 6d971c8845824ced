// Package multiples merges the multiple streams of a set of bases into one
// ascending sequence, using a sorted list of per-base cursors.
package multiples

import (
	"github.com/eulergo/sift/consterr"
	"github.com/eulergo/sift/gen"
	"github.com/eulergo/sift/order"
)

// ErrNonPositiveBase reports a base that has no ascending multiple stream.
const ErrNonPositiveBase consterr.Error = "multiples: base must be positive"

// Ascending returns the merged ascending multiples of the bases. A value
// that several bases land on is emitted once; every cursor sitting on it is
// advanced before the value is yielded.
func Ascending(bases ...int64) gen.Generator[int64] {
	if len(bases) == 0 {
		return gen.Empty[int64]()
	}
	cursors := order.New(CompareCursors)
	for _, base := range bases {
		if base <= 0 {
			return gen.Fail[int64](ErrNonPositiveBase)
		}
		cursors.Insert(NewCursor(base))
	}

	return &gen.Func[int64]{Advance: func() (bool, int64, error) {
		min, err := cursors.Min()
		if err != nil {
			return false, 0, err
		}
		next := min.Current()
		for {
			c, err := cursors.Min()
			if err != nil {
				return false, 0, err
			}
			if c.Current() != next {
				break
			}
			if err := c.Advance(); err != nil {
				return false, 0, err
			}
			cursors.ResiftMin()
		}
		return true, next, nil
	}}
}

// SumBelow sums the merged multiples of the bases that are strictly below
// max.
func SumBelow(max int64, bases ...int64) (int64, error) {
	g := Ascending(bases...)
	var total int64
	for g.Next() {
		if g.Value() >= max {
			break
		}
		total += g.Value()
	}
	return total, g.Error()
}
