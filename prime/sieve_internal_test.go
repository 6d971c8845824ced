package prime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCandidateStepOverflow(t *testing.T) {
	s := &sieve{candidate: math.MaxInt64 - 1}
	require.ErrorIs(t, s.step(), ErrOverflow)
	require.EqualValues(t, math.MaxInt64-1, s.candidate)

	s.candidate = math.MaxInt64 - 3
	require.NoError(t, s.step())
	require.EqualValues(t, math.MaxInt64-1, s.candidate)
}
