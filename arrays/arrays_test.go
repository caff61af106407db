package arrays

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/taxokit/taxerrors"
)

var months = []string{"January", "April", "June"}

func TestSliceFixed(t *testing.T) {
	nums := Fixed(0, 1, 2, 3, 4)

	tests := []struct {
		name       string
		start, end Bound
		want       []int
	}{
		{"both omitted", Omit, Omit, []int{0, 1, 2, 3, 4}},
		{"start only", At(2), Omit, []int{2, 3, 4}},
		{"end only", Omit, At(2), []int{0, 1}},
		{"drop last", At(0), At(-1), []int{0, 1, 2, 3}},
		{"negative start", At(-2), Omit, []int{3, 4}},
		{"negative range", At(-3), At(-1), []int{2, 3}},
		{"full range", At(0), At(5), []int{0, 1, 2, 3, 4}},
		{"end past length", At(3), At(50), []int{3, 4}},
		{"start past length", At(7), Omit, []int{}},
		{"start before beginning", At(-50), At(2), []int{0, 1}},
		{"inverted range", At(3), At(1), []int{}},
		{"empty range", At(2), At(2), []int{}},
		{"end before beginning", At(0), At(-50), []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slice(nums, tt.start, tt.end)
			assert.True(t, got.IsFixed(), "slicing a fixed tuple yields a fixed tuple")
			if diff := cmp.Diff(tt.want, got.Elements(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Slice(%v, %v) mismatch (-want +got):\n%s", tt.start, tt.end, diff)
			}
		})
	}
}

func TestSliceDoesNotAlias(t *testing.T) {
	src := Fixed("a", "b", "c")
	got := Slice(src, At(0), At(2))
	got.Prefix[0] = "z"
	assert.Equal(t, []string{"a", "b", "c"}, src.Elements())
}

func TestSliceVariable(t *testing.T) {
	tags := Variadic([]string{"id", "name"}, "tag")

	tests := []struct {
		name       string
		start, end Bound
		want       Tuple[string]
	}{
		{"both omitted", Omit, Omit, tags},
		{"drop leading elements", At(1), Omit, Tuple[string]{Prefix: []string{"name"}, Rest: ptr("tag")}},
		{"drop past prefix", At(3), Omit, Tuple[string]{Rest: ptr("tag")}},
		{"start zero keeps shape", At(0), Omit, tags},
		{"positive range", At(1), At(4), Fixed("name", "tag", "tag")},
		{"range inside prefix", At(0), At(2), Fixed("id", "name")},
		{"omitted start with end", Omit, At(1), Fixed("id")},
		{"negative start", At(-1), Omit, Tuple[string]{}},
		{"negative end", At(0), At(-1), Tuple[string]{}},
		{"inverted range", At(3), At(2), Tuple[string]{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slice(tags, tt.start, tt.end)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Slice mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitAt(t *testing.T) {
	t.Run("fixed", func(t *testing.T) {
		head, tail := SplitAt(Fixed(1, 2, 3), 1)
		assert.Equal(t, []int{1}, head)
		assert.Equal(t, []int{2, 3}, tail.Elements())
		assert.True(t, tail.IsFixed())
	})

	t.Run("zero short-circuits", func(t *testing.T) {
		src := Variadic([]int{1}, 9)
		head, tail := SplitAt(src, 0)
		assert.Empty(t, head)
		assert.True(t, Equal(src, tail))
	})

	t.Run("fixed past end", func(t *testing.T) {
		head, tail := SplitAt(Fixed(1, 2), 5)
		assert.Equal(t, []int{1, 2}, head)
		assert.Empty(t, tail.Elements())
	})

	t.Run("fixed negative", func(t *testing.T) {
		head, tail := SplitAt(Fixed(1, 2, 3), -1)
		assert.Equal(t, []int{1, 2}, head)
		assert.Equal(t, []int{3}, tail.Elements())
	})

	t.Run("variable inside prefix", func(t *testing.T) {
		head, tail := SplitAt(Variadic([]int{1, 2, 3}, 9, 0), 2)
		assert.Equal(t, []int{1, 2}, head)
		want := Tuple[int]{Prefix: []int{3}, Rest: ptr(9), Suffix: []int{0}}
		if diff := cmp.Diff(want, tail, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("tail mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("variable past prefix draws from rest", func(t *testing.T) {
		head, tail := SplitAt(Variadic([]int{1}, 9, 0), 3)
		assert.Equal(t, []int{1, 9, 9}, head)
		want := Tuple[int]{Rest: ptr(9), Suffix: []int{0}}
		if diff := cmp.Diff(want, tail, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("tail mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestSpliceFixed(t *testing.T) {
	tests := []struct {
		name        string
		start       int
		deleteCount int
		items       []string
		want        []string
	}{
		{"insert", 1, 0, []string{"Feb", "March"}, []string{"January", "Feb", "March", "April", "June"}},
		{"replace", 1, 1, []string{"May"}, []string{"January", "May", "June"}},
		{"delete", 0, 2, nil, []string{"June"}},
		{"delete past end", 1, 10, nil, []string{"January"}},
		{"append", 3, 0, []string{"July"}, []string{"January", "April", "June", "July"}},
		{"start past end appends", 10, 1, []string{"July"}, []string{"January", "April", "June", "July"}},
		{"negative start", -1, 1, []string{"Dec"}, []string{"January", "April", "Dec"}},
		{"negative delete count", 1, -3, []string{"Feb"}, []string{"January", "Feb", "April", "June"}},
		{"noop", 2, 0, nil, []string{"January", "April", "June"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Splice(Fixed(months...), tt.start, tt.deleteCount, tt.items...)
			assert.True(t, got.IsFixed())
			if diff := cmp.Diff(tt.want, got.Elements(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Splice mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSpliceDoesNotMutate(t *testing.T) {
	src := []string{"January", "April", "June"}
	got := SpliceOf(src, 1, 1, "May")
	assert.Equal(t, []string{"January", "April", "June"}, src)
	assert.Equal(t, []string{"January", "May", "June"}, got)

	got[0] = "changed"
	assert.Equal(t, "January", src[0])
}

func TestResultsDoNotShareMemory(t *testing.T) {
	tests := []struct {
		name string
		op   func(Tuple[int]) Tuple[int]
	}{
		{"splice at zero", func(in Tuple[int]) Tuple[int] { return Splice(in, 0, 0) }},
		{"splice past prefix", func(in Tuple[int]) Tuple[int] { return Splice(in, 3, 1) }},
		{"slice omitted bounds", func(in Tuple[int]) Tuple[int] { return Slice(in, Omit, Omit) }},
		{"slice start only", func(in Tuple[int]) Tuple[int] { return Slice(in, At(1), Omit) }},
		{"split tail", func(in Tuple[int]) Tuple[int] {
			_, tail := SplitAt(in, 0)
			return tail
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Variadic([]int{1}, 9, 7, 8)
			out := tt.op(in)
			require.NotNil(t, out.Rest)
			require.NotEmpty(t, out.Suffix)

			out.Suffix[0] = 100
			*out.Rest = 100
			if len(out.Prefix) > 0 {
				out.Prefix[0] = 100
			}

			want := Variadic([]int{1}, 9, 7, 8)
			assert.True(t, Equal(want, in), "input changed to %+v", in)
		})
	}
}

func TestExpansionIsBounded(t *testing.T) {
	tags := Variadic([]string{"a"}, "x")

	t.Run("slice far end", func(t *testing.T) {
		got := Slice(tags, At(0), At(math.MaxInt))
		assert.True(t, got.IsFixed())
		assert.Len(t, got.Prefix, 1+MaxExpand)
	})

	t.Run("slice far window", func(t *testing.T) {
		got := Slice(tags, At(1<<62), At(1<<62+2))
		assert.Equal(t, []string{"x", "x"}, got.Elements())
	})

	t.Run("slice far start", func(t *testing.T) {
		got := Slice(tags, At(1<<62), Omit)
		assert.True(t, Equal(Variadic[string](nil, "x"), got))
	})

	t.Run("split far", func(t *testing.T) {
		head, tail := SplitAt(tags, math.MaxInt)
		assert.Len(t, head, 1+MaxExpand)
		assert.True(t, Equal(Variadic[string](nil, "x"), tail))
	})

	t.Run("splice far start", func(t *testing.T) {
		got := Splice(tags, 1<<62, 0, "y")
		assert.Len(t, got.Prefix, 2+MaxExpand)
		assert.Equal(t, "y", got.Prefix[len(got.Prefix)-1])
	})

	t.Run("splice huge delete", func(t *testing.T) {
		got := Splice(tags, 0, math.MaxInt, "y")
		want := Tuple[string]{Prefix: []string{"y"}, Rest: ptr("x")}
		if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Splice mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestCheckExpand(t *testing.T) {
	tags := Variadic([]string{"a", "b"}, "x")

	assert.NoError(t, CheckExpand(tags, 10, 0, 2, 12, -5, math.MinInt))
	assert.NoError(t, CheckExpand(Fixed(1, 2), 0, math.MaxInt))

	err := CheckExpand(tags, 10, 5, 13)
	require.Error(t, err)
	assert.ErrorIs(t, err, taxerrors.ErrResourceLimit)
	var limitErr *taxerrors.ResourceLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, int64(10), limitErr.Limit)
	assert.Equal(t, int64(11), limitErr.Actual)
}

func TestSpliceVariable(t *testing.T) {
	src := Variadic([]string{"a", "b"}, "r")

	tests := []struct {
		name        string
		start       int
		deleteCount int
		items       []string
		want        Tuple[string]
	}{
		{"insert in prefix", 1, 0, []string{"x"}, Tuple[string]{Prefix: []string{"a", "x", "b"}, Rest: ptr("r")}},
		{"replace in prefix", 0, 1, []string{"x"}, Tuple[string]{Prefix: []string{"x", "b"}, Rest: ptr("r")}},
		{"start beyond prefix", 3, 1, []string{"x"}, Tuple[string]{Prefix: []string{"a", "b", "r", "x"}, Rest: ptr("r")}},
		{"delete across rest", 1, 3, nil, Tuple[string]{Prefix: []string{"a"}, Rest: ptr("r")}},
		{"negative start clamps to zero", -2, 0, []string{"x"}, Tuple[string]{Prefix: []string{"x", "a", "b"}, Rest: ptr("r")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Splice(src, tt.start, tt.deleteCount, tt.items...)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Splice mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSpliceKeepsSuffix(t *testing.T) {
	src := Variadic(nil, 0, 9)
	got := Splice(src, 0, 2, 5)
	want := Tuple[int]{Prefix: []int{5}, Rest: ptr(0), Suffix: []int{9}}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Splice mismatch (-want +got):\n%s", diff)
	}
}

var fixedSamples = [][]int{
	{},
	{7},
	{0, 1, 2, 3, 4},
	{5, 5, 5},
	{9, 8, 7, 6, 5, 4, 3, 2},
}

// Slicing [0, N) and [N, end) and concatenating reconstructs the input.
func TestSliceConcatenationReconstructs(t *testing.T) {
	for _, sample := range fixedSamples {
		for n := 0; n <= len(sample); n++ {
			joined := append(SliceOf(sample, 0, n), SliceOf(sample, n)...)
			if diff := cmp.Diff(sample, joined, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("sample %v split at %d (-want +got):\n%s", sample, n, diff)
			}
		}
	}
}

// Deleting nothing and inserting nothing is a no-op at every position.
func TestSpliceIdentity(t *testing.T) {
	for _, sample := range fixedSamples {
		for start := 0; start <= len(sample); start++ {
			got := SpliceOf(sample, start, 0)
			if diff := cmp.Diff(sample, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("sample %v start %d (-want +got):\n%s", sample, start, diff)
			}
		}
	}
}

// A negative index is equivalent to length plus that index.
func TestNegativeIndexEquivalence(t *testing.T) {
	for _, sample := range fixedSamples {
		a := SliceOf(sample, -1)
		b := SliceOf(sample, len(sample)-1)
		if diff := cmp.Diff(a, b, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("sample %v (-neg +pos):\n%s", sample, diff)
		}
	}
}

func TestTupleAccessors(t *testing.T) {
	fixed := Fixed("a", "b")
	n, ok := fixed.Len()
	assert.Equal(t, 2, n)
	assert.True(t, ok)

	v := Variadic([]string{"a"}, "r", "z")
	n, ok = v.Len()
	assert.Equal(t, 2, n)
	assert.False(t, ok)

	elem, ok := v.At(0)
	assert.True(t, ok)
	assert.Equal(t, "a", elem)
	elem, ok = v.At(10)
	assert.True(t, ok)
	assert.Equal(t, "r", elem)
	_, ok = v.At(-1)
	assert.False(t, ok)

	_, ok = fixed.At(2)
	assert.False(t, ok)

	suffixOnly := Tuple[string]{Prefix: []string{"a"}, Suffix: []string{"b"}}
	elem, ok = suffixOnly.At(1)
	assert.True(t, ok)
	assert.Equal(t, "b", elem)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Fixed(1, 2), Fixed(1, 2)))
	assert.False(t, Equal(Fixed(1, 2), Fixed(2, 1)))
	assert.False(t, Equal(Fixed(1), Variadic([]int{1}, 1)))
	assert.True(t, Equal(Variadic([]int{1}, 2, 3), Variadic([]int{1}, 2, 3)))
	assert.False(t, Equal(Variadic([]int{1}, 2), Variadic([]int{1}, 3)))
}

func ptr[T any](v T) *T {
	return &v
}
