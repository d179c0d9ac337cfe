package sh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc", `$'abc'`},
		{"中文", `$'中文'`},
		{"a b", `$'a b'`},
		{"it's", `$'it\'s'`},
		{"a\\b", `$'a\\b'`},
		{"\a\b\t\n\v\f\r\x1b", `$'\a\b\t\n\v\f\r\E'`},
		{"\x00\x01\x7f", `$'\000\001\177'`},
		{"", `$''`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Quote(tt.in), "input %q", tt.in)
	}
}

func TestDeclare(t *testing.T) {
	assert.Equal(t, "unset -v RESULT ; declare -a RESULT=($'1' $'2 3')\n", DeclareArray("", []string{"1", "2 3"}))
	assert.Equal(t, "unset -v xs ; declare -a xs=()\n", DeclareArray("xs", nil))

	assert.Equal(t, "unset -v RESULT\n", Unset(""))
	assert.Equal(t, "unset -v RESULT\n", Unset())
	assert.Equal(t, "unset -v k_in k_pre\n", Unset("k_in", "k_pre"))
}
