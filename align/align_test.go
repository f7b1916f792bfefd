// SPDX-License-Identifier: EPL-2.0

package align

import (
	"errors"
	"testing"

	"github.com/ik5/lectorx/signal"
)

func TestSkip(t *testing.T) {
	t.Parallel()

	s := signal.Signal{1, 2, 3, 4, 5}

	tests := []struct {
		lag  int
		want signal.Signal
	}{
		{0, signal.Signal{1, 2, 3, 4, 5}},
		{2, signal.Signal{3, 4, 5}},
		{4, signal.Signal{5}},
		{5, signal.Signal{}},
		{50, signal.Signal{}},
	}

	for _, tt := range tests {
		got, err := Skip(s, tt.lag)
		if err != nil {
			t.Fatalf("Skip(%d) error = %v", tt.lag, err)
		}
		if !signal.Equal(got, tt.want) {
			t.Errorf("Skip(%d) = %v, want %v", tt.lag, got, tt.want)
		}
	}
}

func TestSkip_DoesNotAlias(t *testing.T) {
	t.Parallel()

	s := signal.Signal{1, 2, 3}
	got, err := Skip(s, 0)
	if err != nil {
		t.Fatalf("Skip() error = %v", err)
	}

	got[0] = 42
	if s[0] != 1 {
		t.Errorf("input modified through Skip result: s[0] = %d, want 1", s[0])
	}
}

func TestSkip_NegativeLag(t *testing.T) {
	t.Parallel()

	_, err := Skip(signal.Signal{1}, -1)
	if !errors.Is(err, ErrNegativeLag) {
		t.Errorf("Skip(-1) error = %v, want ErrNegativeLag", err)
	}
}

func TestShift(t *testing.T) {
	t.Parallel()

	s := signal.Signal{1, 2, 3, 4}

	tests := []struct {
		name   string
		lag    int
		target int
		want   signal.Signal
	}{
		{"zero lag same length", 0, 4, signal.Signal{1, 2, 3, 4}},
		{"delay", 2, 4, signal.Signal{0, 0, 1, 2}},
		{"delay longer target", 1, 6, signal.Signal{0, 1, 2, 3, 4, 0}},
		{"delay past target", 9, 3, signal.Signal{0, 0, 0}},
		{"delay equals target", 3, 3, signal.Signal{0, 0, 0}},
		{"advance", -1, 4, signal.Signal{2, 3, 4, 0}},
		{"advance shorter target", -2, 1, signal.Signal{3}},
		{"advance past end", -10, 3, signal.Signal{0, 0, 0}},
		{"empty target", 1, 0, signal.Signal{}},
		{"negative target", 0, -5, signal.Signal{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Shift(s, tt.lag, tt.target)
			if !signal.Equal(got, tt.want) {
				t.Errorf("Shift(%d, %d) = %v, want %v", tt.lag, tt.target, got, tt.want)
			}
		})
	}
}

func TestShift_LengthInvariant(t *testing.T) {
	t.Parallel()

	inputs := []signal.Signal{nil, {7}, {1, 2, 3, 4, 5, 6, 7, 8}}

	for _, s := range inputs {
		for lag := -12; lag <= 12; lag++ {
			for target := 0; target <= 12; target++ {
				if got := Shift(s, lag, target).Len(); got != target {
					t.Fatalf("len(Shift(len %d, %d, %d)) = %d, want %d", len(s), lag, target, got, target)
				}
			}
		}
	}
}

func TestPair_Skip(t *testing.T) {
	t.Parallel()

	original := signal.Signal{100, 200, 300, 400}
	mixed := signal.Signal{0, 250, 350, 450}

	a, c, err := Pair(original, mixed, 1, StrategySkip)
	if err != nil {
		t.Fatalf("Pair() error = %v", err)
	}

	if want := (signal.Signal{200, 300, 400}); !signal.Equal(a, want) {
		t.Errorf("a = %v, want %v", a, want)
	}
	if want := (signal.Signal{0, 250, 350}); !signal.Equal(c, want) {
		t.Errorf("c = %v, want %v", c, want)
	}
}

func TestPair_SkipShortProbe(t *testing.T) {
	t.Parallel()

	a, c, err := Pair(signal.Signal{1, 2, 3, 4, 5}, signal.Signal{9, 8}, 1, StrategySkip)
	if err != nil {
		t.Fatalf("Pair() error = %v", err)
	}
	if a.Len() != 2 || c.Len() != 2 {
		t.Fatalf("lengths = %d, %d, want 2, 2", a.Len(), c.Len())
	}
	if !signal.Equal(a, signal.Signal{2, 3}) {
		t.Errorf("a = %v, want [2 3]", a)
	}
}

func TestPair_SkipNegativeLag(t *testing.T) {
	t.Parallel()

	_, _, err := Pair(signal.Signal{1}, signal.Signal{1}, -1, StrategySkip)
	if !errors.Is(err, ErrNegativeLag) {
		t.Errorf("Pair() error = %v, want ErrNegativeLag", err)
	}
}

func TestPair_Shift(t *testing.T) {
	t.Parallel()

	original := signal.Signal{100, 200, 300, 400}
	mixed := signal.Signal{0, 250, 350, 450, 0}

	a, c, err := Pair(original, mixed, 1, StrategyShift)
	if err != nil {
		t.Fatalf("Pair() error = %v", err)
	}

	if want := (signal.Signal{0, 100, 200, 300, 400}); !signal.Equal(a, want) {
		t.Errorf("a = %v, want %v", a, want)
	}
	if !signal.Equal(c, mixed) {
		t.Errorf("c = %v, want %v", c, mixed)
	}

	c[0] = 1
	if mixed[0] != 0 {
		t.Error("Pair() returned the probe without copying it")
	}
}

func TestPair_UnknownStrategy(t *testing.T) {
	t.Parallel()

	_, _, err := Pair(nil, nil, 0, Strategy(7))
	if !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("Pair() error = %v, want ErrUnknownStrategy", err)
	}
}

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]Strategy{"skip": StrategySkip, "SHIFT": StrategyShift, "": StrategySkip} {
		got, err := ParseStrategy(name)
		if err != nil || got != want {
			t.Errorf("ParseStrategy(%q) = %v, %v, want %v", name, got, err, want)
		}
	}

	if _, err := ParseStrategy("stretch"); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("ParseStrategy(stretch) error = %v, want ErrUnknownStrategy", err)
	}
}
