package optreg_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"hakurei.app/optreg"
)

func TestConvert(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		testCases := []struct {
			s    string
			want int
		}{
			{"0", 0},
			{"3", 3},
			{"-3", -3},
			{"0x10", 16},
			{"010", 8},
			{"0b101", 5},
			{"bogus", 0},
			{"", 0},
		}
		for _, tc := range testCases {
			if got := optreg.Convert[int](tc.s); got != tc.want {
				t.Errorf("Convert: %q = %d, want %d", tc.s, got, tc.want)
			}
		}
	})

	t.Run("int8 clamp", func(t *testing.T) {
		if got := optreg.Convert[int8]("128"); got != 127 {
			t.Errorf("Convert: %d, want 127", got)
		}
		if got := optreg.Convert[int8]("-129"); got != -128 {
			t.Errorf("Convert: %d, want -128", got)
		}
	})

	t.Run("int64", func(t *testing.T) {
		if got := optreg.Convert[int64]("9223372036854775807"); got != math.MaxInt64 {
			t.Errorf("Convert: %d, want %d", got, int64(math.MaxInt64))
		}
	})

	t.Run("uint", func(t *testing.T) {
		if got := optreg.Convert[uint]("42"); got != 42 {
			t.Errorf("Convert: %d, want 42", got)
		}
		// no silent wraparound for negative input
		if got := optreg.Convert[uint]("-1"); got != 0 {
			t.Errorf("Convert: %d, want 0", got)
		}
	})

	t.Run("uint64", func(t *testing.T) {
		if got := optreg.Convert[uint64]("18446744073709551615"); got != math.MaxUint64 {
			t.Errorf("Convert: %d, want %d", got, uint64(math.MaxUint64))
		}
	})

	t.Run("float64", func(t *testing.T) {
		testCases := []struct {
			s    string
			want float64
		}{
			{"2.5", 2.5},
			{"-0.125", -0.125},
			{"1e3", 1000},
			{"bogus", 0},
		}
		for _, tc := range testCases {
			if got := optreg.Convert[float64](tc.s); got != tc.want {
				t.Errorf("Convert: %q = %v, want %v", tc.s, got, tc.want)
			}
		}
	})

	t.Run("float32", func(t *testing.T) {
		if got := optreg.Convert[float32]("0.5"); got != 0.5 {
			t.Errorf("Convert: %v, want 0.5", got)
		}
	})

	t.Run("string", func(t *testing.T) {
		for _, s := range []string{"", "text", "123", "-v"} {
			if got := optreg.Convert[string](s); got != s {
				t.Errorf("Convert: %q, want %q", got, s)
			}
		}
	})
}

func TestSet(t *testing.T) {
	var n int
	cb := optreg.Set(&n)
	cb("42")
	if n != 42 {
		t.Errorf("Set: %d, want 42", n)
	}
	cb("7")
	if n != 7 {
		t.Errorf("Set: %d, want 7", n)
	}
}

func TestAppend(t *testing.T) {
	var dirs []string
	cb := optreg.Append(&dirs)
	for _, s := range []string{"a", "b", "c"} {
		cb(s)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, dirs); diff != "" {
		t.Errorf("Append: (-want +got):\n%s", diff)
	}

	var nums []int
	cb2 := optreg.Append(&nums)
	cb2("2")
	cb2("0x10")
	if diff := cmp.Diff([]int{2, 16}, nums); diff != "" {
		t.Errorf("Append: (-want +got):\n%s", diff)
	}
}

func TestSetFlag(t *testing.T) {
	var verbose bool
	optreg.SetFlag(&verbose, true)()
	if !verbose {
		t.Error("SetFlag: verbose = false, want true")
	}

	level := 1
	optreg.SetFlag(&level, 3)()
	if level != 3 {
		t.Errorf("SetFlag: level = %d, want 3", level)
	}
}
