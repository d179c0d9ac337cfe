package avltree

import (
	"fmt"
	"io"
	"strings"

	"avl_tool/pkg/treeprinter"
)

// EmptyTree 空树遍历时的输出
const EmptyTree = "Empty tree"

// Format 遍历结果用单个空格拼接
func (t *AVLTree[T]) Format(order Order) string {
	if t.IsEmpty() {
		return EmptyTree
	}
	var b strings.Builder
	first := true
	t.Walk(order, func(v T) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(t.format(v))
		return true
	})
	return b.String()
}

// Print 输出 Format(order) 和换行
func (t *AVLTree[T]) Print(w io.Writer, order Order) error {
	_, err := fmt.Fprintln(w, t.Format(order))
	return err
}

func (t *AVLTree[T]) getChild(n *node[T], side treeprinter.Side) *node[T] {
	if side == treeprinter.Left {
		return n.left
	}
	return n.right
}

func (t *AVLTree[T]) label(n *node[T]) string {
	return fmt.Sprintf("%s(h=%d)", t.format(n.value), n.height)
}

// PrintTree 打印树的形状，每行一个节点
func (t *AVLTree[T]) PrintTree(style treeprinter.Style, direction treeprinter.Direction) string {
	return treeprinter.PrintTreeGeneric(treeprinter.TreePrinter[*node[T]]{
		Root:     t.root,
		GetChild: t.getChild,
		GetValue: t.label,
		IsNil: func(n *node[T]) bool {
			return n == nil
		},
		Style:     style,
		Direction: direction,
	})
}

// Dot 输出名为 avl 的 Graphviz 有向图
func (t *AVLTree[T]) Dot() (string, error) {
	return treeprinter.RenderDot(treeprinter.DotPrinter[*node[T]]{
		Name:     "avl",
		Root:     t.root,
		GetChild: t.getChild,
		GetValue: t.label,
		IsNil: func(n *node[T]) bool {
			return n == nil
		},
	})
}
