// Package prime produces ascending primes with an incremental sieve of
// Eratosthenes: one multiple cursor per prime found so far, merged through a
// sorted list. Memory grows with the number of primes emitted, not with the
// magnitude of the candidates.
package prime

import (
	"math"

	"github.com/eulergo/sift/gen"
	"github.com/eulergo/sift/multiples"
	"github.com/eulergo/sift/order"
)

// ErrOverflow reports that sieving ran past the int64 range.
const ErrOverflow = multiples.ErrOverflow

// The sieve only tests odd candidates from 11 up, so the primes below that
// are emitted directly. The cursor list starts with the odd seeds; 2 never
// needs a cursor because even candidates are never tested.
var seeds = [...]int64{2, 3, 5, 7}

const firstCandidate = 11

// Primes returns the unbounded ascending prime stream. Each call returns an
// independent stream with fresh state.
func Primes() gen.Generator[int64] {
	return newSieve(0, false)
}

// PrimesBelow returns the ascending primes strictly below max. Bounds at or
// below 3 fall under the seeded range and produce an empty stream.
func PrimesBelow(max int64) gen.Generator[int64] {
	return newSieve(max, true)
}

type sieve struct {
	max       int64
	bounded   bool
	candidate int64
	cursors   *order.List[*multiples.Cursor]
	seeded    int
	done      bool
	pending   error
}

func newSieve(max int64, bounded bool) gen.Generator[int64] {
	s := &sieve{
		max:       max,
		bounded:   bounded,
		candidate: firstCandidate,
		cursors: order.New(multiples.CompareCursors,
			multiples.NewCursor(3),
			multiples.NewCursor(5),
			multiples.NewCursor(7)),
	}
	if bounded && max <= 3 {
		s.done = true
	}
	return &gen.Func[int64]{Advance: s.advance}
}

func (s *sieve) advance() (bool, int64, error) {
	if s.done {
		return false, 0, nil
	}
	if s.pending != nil {
		s.done = true
		return false, 0, s.pending
	}

	if s.seeded < len(seeds) {
		p := seeds[s.seeded]
		if s.bounded && p >= s.max {
			s.done = true
			return false, 0, nil
		}
		s.seeded++
		return true, p, nil
	}

	for {
		if s.bounded && s.candidate >= s.max {
			s.done = true
			return false, 0, nil
		}
		min, err := s.cursors.Min()
		if err != nil {
			s.done = true
			return false, 0, err
		}
		switch {
		case min.Current() < s.candidate:
			// Catch the smallest cursor up to the candidate's
			// neighborhood.
			if err := min.Advance(); err != nil {
				s.done = true
				return false, 0, err
			}
			s.cursors.ResiftMin()
		case min.Current() == s.candidate:
			// A cursor landed on the candidate: composite. Restart
			// the sift at the next odd candidate.
			if err := s.step(); err != nil {
				s.done = true
				return false, 0, err
			}
		default:
			// Every cursor is past the candidate: prime. It gets a
			// cursor of its own, starting on its first multiple.
			p := s.candidate
			s.cursors.Insert(multiples.NewCursor(p))
			if err := s.step(); err != nil {
				// The prime is still good; surface the
				// overflow on the next pull.
				s.pending = err
			}
			return true, p, nil
		}
	}
}

func (s *sieve) step() error {
	if s.candidate > math.MaxInt64-2 {
		return ErrOverflow
	}
	s.candidate += 2
	return nil
}
