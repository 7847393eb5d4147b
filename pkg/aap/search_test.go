package aap

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// bruteThreshold is the reference threshold computation: linear scan with
// the enumeration oracle. Only usable for tiny caps.
func bruteThreshold(k1, k2, nmax int) int {
	for n := 1; n <= nmax; n++ {
		if !bruteExistsCounterexample(n, k1, k2) {
			return n
		}
	}
	return Unresolved
}

// TestMinimalThreshold_Classical pins the smallest symmetric threshold.
// B(3,3) = 7: any four same-colored points contain a 3-AAP, so one color
// class has one at N = 7, while {0,1,2} red / {3,4,5} blue avoids both at
// N = 6. The value is re-derived here from the brute-force reference
// rather than trusted as a constant alone.
func TestMinimalThreshold_Classical(t *testing.T) {
	want := bruteThreshold(3, 3, 12)
	if want != 7 {
		t.Fatalf("brute-force reference disagrees with analysis: B(3,3) = %d, want 7", want)
	}

	oracle := NewOracle()
	got, err := oracle.MinimalThreshold(context.Background(), 3, 3, 200)
	if err != nil {
		t.Fatal(err)
	}
	if got != 7 {
		t.Errorf("MinimalThreshold(3,3,200) = %d, want 7", got)
	}
}

// TestThreshold_Boundary: a cap below the true threshold is unresolved; a
// cap exactly at it resolves.
func TestThreshold_Boundary(t *testing.T) {
	oracle := NewOracle()
	ctx := context.Background()

	got, err := oracle.MinimalThreshold(ctx, 3, 3, 6)
	if err != nil {
		t.Fatal(err)
	}
	if got != Unresolved {
		t.Errorf("nmax=6: got %d, want Unresolved", got)
	}

	got, err = oracle.MinimalThreshold(ctx, 3, 3, 7)
	if err != nil {
		t.Fatal(err)
	}
	if got != 7 {
		t.Errorf("nmax=7: got %d, want 7", got)
	}

	got, err = oracle.ComputeThreshold(ctx, 3, 3, 6)
	if err != nil {
		t.Fatal(err)
	}
	if got != Unresolved {
		t.Errorf("two-stage nmax=6: got %d, want Unresolved", got)
	}
}

// TestThreshold_VariantsAgree: the linear scan, the exponential+binary
// search, and the two-stage driver are different strategies over the same
// monotone predicate and must return identical results.
func TestThreshold_VariantsAgree(t *testing.T) {
	ctx := context.Background()
	for _, pair := range [][2]int{{3, 3}, {3, 4}, {4, 3}} {
		k, l := pair[0], pair[1]
		t.Run(fmt.Sprintf("k=%d,l=%d", k, l), func(t *testing.T) {
			const nmax = 30

			basic := NewOracleWithConfig(BasicOracleConfig())
			linear, err := basic.LinearThreshold(ctx, k, l, nmax)
			if err != nil {
				t.Fatal(err)
			}

			minimal, err := NewOracle().MinimalThreshold(ctx, k, l, nmax)
			if err != nil {
				t.Fatal(err)
			}

			twoStage, err := NewOracle().ComputeThreshold(ctx, k, l, nmax)
			if err != nil {
				t.Fatal(err)
			}

			if linear != minimal || linear != twoStage {
				t.Errorf("strategies disagree: linear=%d, binary=%d, two-stage=%d",
					linear, minimal, twoStage)
			}
		})
	}
}

func TestComputeThreshold_Idempotent(t *testing.T) {
	ctx := context.Background()
	config := DefaultOracleConfig()
	config.ReuseMemo = true
	oracle := NewOracleWithConfig(config)

	first, err := oracle.ComputeThreshold(ctx, 3, 4, 30)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		again, err := oracle.ComputeThreshold(ctx, 3, 4, 30)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Errorf("repeat %d: got %d, want %d", i, again, first)
		}
	}
}

// TestComputeThreshold_AsymmetricAboveAnchor: B(3,4) exceeds the symmetric
// anchor B(3,3) = 7, because a longer blue pattern is easier to avoid
// ({0,1,2} red, {3,4,5,6} blue is a counterexample at N = 7). With the cap
// at the anchor the driver must report unresolved rather than the anchor.
func TestComputeThreshold_AsymmetricAboveAnchor(t *testing.T) {
	ctx := context.Background()

	got, err := NewOracle().ComputeThreshold(ctx, 3, 4, 7)
	if err != nil {
		t.Fatal(err)
	}
	if got != Unresolved {
		t.Errorf("nmax at anchor: got %d, want Unresolved", got)
	}

	// With room above the anchor the driver expands upward and must agree
	// with the reference linear scan.
	want := bruteThreshold(3, 4, 12)
	if want == Unresolved {
		t.Fatalf("reference scan did not resolve B(3,4) by 12")
	}
	got, err = NewOracle().ComputeThreshold(ctx, 3, 4, 30)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("ComputeThreshold(3,4,30) = %d, want %d", got, want)
	}
}

// TestComputeThreshold_DegenerateUnresolved: with k <= 2 no pattern can
// ever be forced, so the symmetric anchor is unresolved and so is the
// whole computation.
func TestComputeThreshold_DegenerateUnresolved(t *testing.T) {
	got, err := NewOracle().ComputeThreshold(context.Background(), 2, 3, 20)
	if err != nil {
		t.Fatal(err)
	}
	if got != Unresolved {
		t.Errorf("got %d, want Unresolved", got)
	}
}

func TestThreshold_InvalidParams(t *testing.T) {
	ctx := context.Background()
	oracle := NewOracle()

	if _, err := oracle.MinimalThreshold(ctx, 0, 3, 10); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("k1=0: got %v, want ErrInvalidLength", err)
	}
	if _, err := oracle.LinearThreshold(ctx, 3, 3, 0); !errors.Is(err, ErrInvalidCap) {
		t.Errorf("nmax=0: got %v, want ErrInvalidCap", err)
	}
	if _, err := oracle.ComputeThreshold(ctx, 3, -1, 10); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("l=-1: got %v, want ErrInvalidLength", err)
	}
	if _, err := oracle.ComputeThreshold(ctx, 3, 3, -5); !errors.Is(err, ErrInvalidCap) {
		t.Errorf("nmax=-5: got %v, want ErrInvalidCap", err)
	}
}

func TestThreshold_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewOracle().MinimalThreshold(ctx, 3, 3, 50)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
