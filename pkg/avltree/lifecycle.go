package avltree

import (
	"github.com/mohae/deepcopy"

	"avl_tool/pkg/logutil"
)

// WithDeepCopy Clone / CopyFrom 时深拷贝每个元素，而不是直接赋值
// deepcopy 只复制导出字段，拷贝之后排序不再相等的元素退回直接赋值
func WithDeepCopy[T any]() Option[T] {
	return func(t *AVLTree[T]) {
		less := t.less
		t.copyValue = func(v T) T {
			return deepCopy(v, less)
		}
	}
}

func deepCopy[T any](v T, less func(a, b T) bool) T {
	c, ok := deepcopy.Copy(v).(T)
	if !ok || less(c, v) || less(v, c) {
		return v
	}
	return c
}

// Clone 返回形状和元素都相同的独立副本
func (t *AVLTree[T]) Clone() *AVLTree[T] {
	c := t.emptyLike()
	c.root = clone(t.root, t.copyValue)
	return c
}

func clone[T any](n *node[T], copyValue func(T) T) *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{
		value:  copyValue(n.value),
		height: n.height,
		left:   clone(n.left, copyValue),
		right:  clone(n.right, copyValue),
	}
}

// CopyFrom 先释放自己的节点，再深拷贝 src
// 自己拷贝给自己什么都不做
func (t *AVLTree[T]) CopyFrom(src *AVLTree[T]) {
	if t == src {
		return
	}
	released := t.MakeEmpty()
	t.adopt(src)
	t.root = clone(src.root, src.copyValue)
	logutil.Debug("CopyFrom: released %d nodes, copied tree of height %d", released, t.Height())
}

// Move 把节点交给一棵新树，t 变成空树
func (t *AVLTree[T]) Move() *AVLTree[T] {
	m := t.emptyLike()
	m.root, t.root = t.root, nil
	return m
}

// MoveFrom 先释放自己的节点，再接管 src 的节点，src 变成空树
// 自己移动给自己什么都不做
func (t *AVLTree[T]) MoveFrom(src *AVLTree[T]) {
	if t == src {
		return
	}
	released := t.MakeEmpty()
	t.adopt(src)
	t.root, src.root = src.root, nil
	logutil.Debug("MoveFrom: released %d nodes, took tree of height %d", released, t.Height())
}

// MakeEmpty 后序释放所有节点（先子节点后父节点），返回释放的个数
func (t *AVLTree[T]) MakeEmpty() int {
	released := makeEmpty(t.root)
	t.root = nil
	return released
}

func makeEmpty[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	released := makeEmpty(n.left) + makeEmpty(n.right)
	release(n)
	return released + 1
}

// release 清空离开树的节点持有的引用
func release[T any](n *node[T]) {
	*n = node[T]{}
}

func (t *AVLTree[T]) emptyLike() *AVLTree[T] {
	return &AVLTree[T]{less: t.less, format: t.format, copyValue: t.copyValue}
}

// 节点是按 src.less 排好的，配置要跟着一起过来
func (t *AVLTree[T]) adopt(src *AVLTree[T]) {
	t.less = src.less
	t.format = src.format
	t.copyValue = src.copyValue
}
