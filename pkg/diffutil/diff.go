package diffutil

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Mark 每一行的比较结果
type Mark string

const (
	MarkSame    Mark = "|"
	MarkAdded   Mark = "+"
	MarkRemoved Mark = "-"
	MarkChanged Mark = "~"
)

type DiffLine struct {
	Left  string
	Right string
	Mark  Mark
}

// CompareSnapshots 按行比较两次打印出来的树，删除紧跟插入的行配对成修改
func CompareSnapshots(before, after string) []DiffLine {
	dmp := diffmatchpatch.New()
	text1, text2, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(text1, text2, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var result []DiffLine
	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		lines := splitLines(d.Text)

		if d.Type == diffmatchpatch.DiffDelete &&
			i+1 < len(diffs) &&
			diffs[i+1].Type == diffmatchpatch.DiffInsert {
			result = append(result, pairLines(lines, splitLines(diffs[i+1].Text))...)
			i++
			continue
		}

		for _, line := range lines {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				result = append(result, DiffLine{Left: line, Right: line, Mark: MarkSame})
			case diffmatchpatch.DiffDelete:
				result = append(result, DiffLine{Left: line, Mark: MarkRemoved})
			case diffmatchpatch.DiffInsert:
				result = append(result, DiffLine{Right: line, Mark: MarkAdded})
			}
		}
	}
	return result
}

// 两边对齐的部分算修改，多出来的部分算删除或者新增
func pairLines(deleted, inserted []string) []DiffLine {
	var out []DiffLine
	for i := 0; i < max(len(deleted), len(inserted)); i++ {
		switch {
		case i < len(deleted) && i < len(inserted):
			out = append(out, DiffLine{Left: deleted[i], Right: inserted[i], Mark: MarkChanged})
		case i < len(deleted):
			out = append(out, DiffLine{Left: deleted[i], Mark: MarkRemoved})
		default:
			out = append(out, DiffLine{Right: inserted[i], Mark: MarkAdded})
		}
	}
	return out
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// CountChanges 不相同的行数
func CountChanges(diff []DiffLine) int {
	n := 0
	for _, d := range diff {
		if d.Mark != MarkSame {
			n++
		}
	}
	return n
}
