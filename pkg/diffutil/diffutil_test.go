package diffutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareSnapshots_Changed(t *testing.T) {
	before := "┌──>30(h=0)\n│── 20(h=1)\n└──>10(h=0)\n"
	after := "┌──>30(h=0)\n│── 25(h=1)\n└──>10(h=0)\n"

	diff := CompareSnapshots(before, after)
	assert.Equal(t, []DiffLine{
		{Left: "┌──>30(h=0)", Right: "┌──>30(h=0)", Mark: MarkSame},
		{Left: "│── 20(h=1)", Right: "│── 25(h=1)", Mark: MarkChanged},
		{Left: "└──>10(h=0)", Right: "└──>10(h=0)", Mark: MarkSame},
	}, diff)
	assert.Equal(t, 1, CountChanges(diff))
	t.Log("\n" + FormatSideBySide(diff, "Before", "After"))
}

func TestCompareSnapshots_AddedAndRemoved(t *testing.T) {
	diff := CompareSnapshots("a\n", "a\nb\n")
	assert.Equal(t, []DiffLine{
		{Left: "a", Right: "a", Mark: MarkSame},
		{Right: "b", Mark: MarkAdded},
	}, diff)

	diff = CompareSnapshots("a\nb\n", "a\n")
	assert.Equal(t, []DiffLine{
		{Left: "a", Right: "a", Mark: MarkSame},
		{Left: "b", Mark: MarkRemoved},
	}, diff)

	assert.Empty(t, CompareSnapshots("", ""))
}

func TestPairLines(t *testing.T) {
	got := pairLines([]string{"x", "y", "z"}, []string{"1"})
	assert.Equal(t, []DiffLine{
		{Left: "x", Right: "1", Mark: MarkChanged},
		{Left: "y", Mark: MarkRemoved},
		{Left: "z", Mark: MarkRemoved},
	}, got)
}

func TestFormatSideBySide(t *testing.T) {
	diff := []DiffLine{
		{Left: "│── 10", Right: "│── 10", Mark: MarkSame},
		{Left: "ab", Mark: MarkRemoved},
		{Right: "你好", Mark: MarkAdded},
	}
	want := strings.Join([]string{
		"* before     * after",
		"--------------------",
		"│── 10    |  │── 10",
		"ab        -",
		"          +  你好",
	}, "\n")
	assert.Equal(t, want, FormatSideBySide(diff, "before", "after"))
}
