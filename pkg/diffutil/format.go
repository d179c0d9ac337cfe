package diffutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// 模糊宽度字符（树的框线）按宽度 1 计算
var width = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// len(s): 字节宽度
// runewidth.StringWidth(s): 显示宽度
// 左列按显示宽度补空格，中文和框线混排时才能对齐
func FormatSideBySide(diff []DiffLine, leftTitle, rightTitle string) string {
	leftTitle = "* " + leftTitle
	rightTitle = "* " + rightTitle

	maxWidth := width.StringWidth(leftTitle)
	for _, d := range diff {
		maxWidth = max(maxWidth, width.StringWidth(d.Left))
	}

	row := func(left string, mark Mark, right string) string {
		pad := strings.Repeat(" ", maxWidth-width.StringWidth(left))
		return strings.TrimRight(left+pad+"  "+string(mark)+"  "+right, " ")
	}

	header := row(leftTitle, " ", rightTitle)
	out := []string{header, strings.Repeat("-", width.StringWidth(header))}
	for _, d := range diff {
		out = append(out, row(d.Left, d.Mark, d.Right))
	}
	return strings.Join(out, "\n")
}
