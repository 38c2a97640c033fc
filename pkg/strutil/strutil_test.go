package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskSensitiveData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "abc", want: "***"},
		{in: "abcd", want: "abcd***"},
		{in: "abcdefghijkl", want: "abcd***"},
		{in: "abcdefghijklmnop", want: "abcd***mnop"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskSensitiveData(tt.in), "input %q", tt.in)
	}
}

func TestSplitAndTrim(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b", "c"}, SplitAndTrim("a, , b,c", ","))
	assert.Equal(t, []string{"http://x"}, SplitAndTrim(" http://x ", ","))
	assert.Nil(t, SplitAndTrim("", ","))
	assert.Nil(t, SplitAndTrim(" , ,", ","))
}
