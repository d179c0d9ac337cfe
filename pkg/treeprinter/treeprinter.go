package treeprinter

import (
	"strings"
)

// EmptyTree 空树时的输出
const EmptyTree = "tree is empty\n"

// Side 子节点方向
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// Style 线条风格
type Style int

const (
	StyleASCII Style = iota
	StyleUnicode
)

// Direction 打印方向，上方先打印的是哪一侧子树
type Direction int

const (
	RightRootLeft Direction = iota // 右子树在上，顺时针转 90 度看树
	LeftRootRight
)

type branch int

const (
	branchRoot branch = iota
	branchUpper
	branchLower
)

type glyphs struct {
	vert  string
	upper string
	lower string
	root  string
}

func (s Style) glyphs() glyphs {
	if s == StyleUnicode {
		return glyphs{vert: "│", upper: "┌──>", lower: "└──>", root: "│── "}
	}
	return glyphs{vert: "|", upper: ".-->", lower: "'-->", root: "|-- "}
}

// TreePrinter 通用二叉树打印配置，N 可以是指针、数组下标等任意节点标识
type TreePrinter[N any] struct {
	Root      N
	GetChild  func(N, Side) N
	GetValue  func(N) string
	IsNil     func(N) bool
	Style     Style
	Direction Direction
}

// PrintTreeGeneric 把二叉树画成多行文本，每行一个节点
func PrintTreeGeneric[N any](p TreePrinter[N]) string {
	if p.IsNil(p.Root) {
		return EmptyTree
	}

	g := p.Style.glyphs()
	upperSide, lowerSide := Right, Left
	if p.Direction == LeftRootRight {
		upperSide, lowerSide = Left, Right
	}

	var b strings.Builder
	var walk func(n N, pre string, pos branch)
	walk = func(n N, pre string, pos branch) {
		if child := p.GetChild(n, upperSide); !p.IsNil(child) {
			ext := "    "
			if pos == branchLower {
				ext = g.vert + "   "
			}
			walk(child, pre+ext, branchUpper)
		}

		switch pos {
		case branchUpper:
			b.WriteString(pre + g.upper + p.GetValue(n) + "\n")
		case branchLower:
			b.WriteString(pre + g.lower + p.GetValue(n) + "\n")
		default:
			b.WriteString(g.root + p.GetValue(n) + "\n")
		}

		if child := p.GetChild(n, lowerSide); !p.IsNil(child) {
			ext := "    "
			if pos == branchUpper {
				ext = g.vert + "   "
			}
			walk(child, pre+ext, branchLower)
		}
	}
	walk(p.Root, "", branchRoot)

	return b.String()
}
