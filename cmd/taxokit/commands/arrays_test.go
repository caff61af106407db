package commands

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/taxokit/arrays"
	"github.com/erraggy/taxokit/taxerrors"
)

func TestHandleSlice(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "drop last", args: []string{"--start", "0", "--end", "-1", "0", "1", "2", "3", "4"}, want: "[0, 1, 2, 3]\n"},
		{name: "last", args: []string{"--start", "-1", "a", "b", "c"}, want: "[c]\n"},
		{name: "no bounds", args: []string{"a", "b"}, want: "[a, b]\n"},
		{name: "empty", args: []string{"--start", "2", "--end", "1", "a", "b", "c"}, want: "[]\n"},
		{name: "variable", args: []string{"--start", "1", "--rest", "tag", "id", "name"}, want: "[name, ...tag[]]\n"},
		{name: "variable range", args: []string{"--start", "0", "--end", "3", "--rest", "tag", "id"}, want: "[id, tag, tag]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _ := captureStreams(t, "")
			require.NoError(t, HandleSlice(tt.args))
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestHandleSlice_JSON(t *testing.T) {
	stdout, _ := captureStreams(t, "")
	require.NoError(t, HandleSlice([]string{"--format", "json", "--start", "1", "--rest", "tag", "--suffix", "end", "id", "name"}))
	assert.JSONEq(t, `{"fixed":false,"items":["name"],"rest":"tag","suffix":["end"]}`, stdout.String())
}

func TestHandleSplice(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "insert months",
			args: []string{"--start", "1", "--insert", "Feb,March", "January", "April", "June"},
			want: "[January, Feb, March, April, June]\n",
		},
		{name: "delete last", args: []string{"--start", "-1", "--delete", "1", "a", "b", "c"}, want: "[a, b]\n"},
		{name: "delete past end", args: []string{"--start", "1", "--delete", "10", "a", "b", "c"}, want: "[a]\n"},
		{name: "identity", args: []string{"--start", "2", "a", "b", "c"}, want: "[a, b, c]\n"},
		{
			name: "variable",
			args: []string{"--start", "2", "--delete", "1", "--insert", "x", "--rest", "tag", "--suffix", "end", "id"},
			want: "[id, tag, x, ...tag[], end]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _ := captureStreams(t, "")
			require.NoError(t, HandleSplice(tt.args))
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestHandleSplice_Errors(t *testing.T) {
	captureStreams(t, "")
	assert.Error(t, HandleSplice([]string{"a", "b"}))
	assert.Error(t, HandleSplice([]string{"--start", "x", "a"}))
	assert.Error(t, HandleSplice([]string{"--start", "0", "--format", "xml", "a"}))
}

func TestArrayCommands_RejectFarRestIndex(t *testing.T) {
	captureStreams(t, "")
	far := strconv.Itoa(1 << 40)

	err := HandleSplice([]string{"--start", far, "--rest", "x", "a"})
	assert.ErrorIs(t, err, taxerrors.ErrResourceLimit)

	err = HandleSlice([]string{"--start", "0", "--end", far, "--rest", "x", "a"})
	assert.ErrorIs(t, err, taxerrors.ErrResourceLimit)

	stdout, _ := captureStreams(t, "")
	require.NoError(t, HandleSlice([]string{"--start", "0", "--end", far, "a", "b"}))
	assert.Equal(t, "[a, b]\n", stdout.String())
}

func TestFormatTuple(t *testing.T) {
	assert.Equal(t, "[]", FormatTuple(arrays.Fixed[string]()))
	assert.Equal(t, "[a, b]", FormatTuple(arrays.Fixed("a", "b")))
	assert.Equal(t, "[...x[]]", FormatTuple(arrays.Variadic(nil, "x")))
	assert.Equal(t, "[a, ...x[], z]", FormatTuple(arrays.Variadic([]string{"a"}, "x", "z")))
}
