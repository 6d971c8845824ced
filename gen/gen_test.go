package gen

import (
	"errors"
	"reflect"
	"testing"
)

// naturals yields 1, 2, 3, ... without end.
func naturals() Generator[int] {
	n := 0
	return &Func[int]{Advance: func() (bool, int, error) {
		n++
		return true, n, nil
	}}
}

func TestEmpty(t *testing.T) {
	empty := Empty[int]()
	for empty.Next() {
		t.Error("the empty generator should have no values")
	}
	if empty.Error() != nil {
		t.Error("the empty generator should have no error")
	}
}

func TestFail(t *testing.T) {
	cause := errors.New("boom")
	failed := Fail[int](cause)
	for failed.Next() {
		t.Error("the failed generator should have no values")
	}
	if !errors.Is(failed.Error(), cause) {
		t.Errorf("Error() = %v, want %v", failed.Error(), cause)
	}
}

func TestFromSlice(t *testing.T) {
	tests := []struct {
		name  string
		slice []int
	}{
		{"nil", nil},
		{"single", []int{7}},
		{"many", []int{3, 1, 4, 1, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Collect(FromSlice(tt.slice))
			if err != nil {
				t.Fatalf("Collect() error = %v", err)
			}
			if !((len(got) == 0 && len(tt.slice) == 0) || reflect.DeepEqual(got, tt.slice)) {
				t.Errorf("Collect() = %v, want %v", got, tt.slice)
			}
		})
	}
}

func TestTake(t *testing.T) {
	got, err := Take(naturals(), 5)
	if err != nil {
		t.Fatalf("Take() error = %v", err)
	}
	if want := []int{1, 2, 3, 4, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("Take() = %v, want %v", got, want)
	}
}

func TestTakeStopsConsuming(t *testing.T) {
	pulls := 0
	counting := &Func[int]{Advance: func() (bool, int, error) {
		pulls++
		return true, pulls, nil
	}}
	if _, err := Take[int](counting, 3); err != nil {
		t.Fatalf("Take() error = %v", err)
	}
	if pulls != 3 {
		t.Errorf("Take(3) pulled %d values", pulls)
	}
}

func TestTakePastExhaustion(t *testing.T) {
	got, err := Take(FromSlice([]int{1, 2}), 5)
	if err != nil {
		t.Fatalf("Take() error = %v", err)
	}
	if want := []int{1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("Take() = %v, want %v", got, want)
	}
}

func TestCount(t *testing.T) {
	n, err := Count(FromSlice([]string{"a", "b", "c"}))
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Count() = %d, want 3", n)
	}
}

func TestCollectSurfacesError(t *testing.T) {
	cause := errors.New("source broke")
	i := 0
	flaky := &Func[int]{Advance: func() (bool, int, error) {
		i++
		if i > 2 {
			return false, 0, cause
		}
		return true, i, nil
	}}

	got, err := Collect[int](flaky)
	if !errors.Is(err, cause) {
		t.Errorf("Collect() error = %v, want %v", err, cause)
	}
	if want := []int{1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("Collect() = %v, want %v", got, want)
	}
}
