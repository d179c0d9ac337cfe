package avltree

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// ErrUnderflow 空树上调用 FindMin / FindMax 时返回
var ErrUnderflow = errors.New("avltree: underflow on empty tree")

type AVLTree[T any] struct {
	root      *node[T]
	less      func(a, b T) bool
	format    func(T) string
	copyValue func(T) T
}

type node[T any] struct {
	value  T
	height int
	left   *node[T]
	right  *node[T]
}

type Option[T any] func(*AVLTree[T])

// WithFormatter 设置遍历输出时元素的文本形式
func WithFormatter[T any](format func(T) string) Option[T] {
	return func(t *AVLTree[T]) {
		if format != nil {
			t.format = format
		}
	}
}

func NewAVLTree[T any](less func(a, b T) bool, opts ...Option[T]) *AVLTree[T] {
	t := &AVLTree[T]{
		less:      less,
		format:    func(v T) string { return fmt.Sprint(v) },
		copyValue: func(v T) T { return v },
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewOrdered 直接用 < 比较
func NewOrdered[T constraints.Ordered](opts ...Option[T]) *AVLTree[T] {
	return NewAVLTree(func(a, b T) bool { return a < b }, opts...)
}

// NewWithComparator 适配 gods 的比较函数，比如 utils.StringComparator
func NewWithComparator[T any](comparator utils.Comparator, opts ...Option[T]) *AVLTree[T] {
	return NewAVLTree(func(a, b T) bool { return comparator(a, b) < 0 }, opts...)
}

// NewFromSlice 按切片顺序逐个插入
func NewFromSlice[T any](less func(a, b T) bool, values []T, opts ...Option[T]) *AVLTree[T] {
	t := NewAVLTree(less, opts...)
	t.InsertAll(values...)
	return t
}

func (t *AVLTree[T]) IsEmpty() bool {
	return t.root == nil
}

// Size 每次调用都完整数一遍节点，不缓存
func (t *AVLTree[T]) Size() int {
	return size(t.root)
}

func size[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return size(n.left) + size(n.right) + 1
}

// Height 空树为 -1
func (t *AVLTree[T]) Height() int {
	return height(t.root)
}

func (t *AVLTree[T]) Contains(value T) bool {
	return contains(t.root, value, t.less)
}

func contains[T any](n *node[T], value T, less func(a, b T) bool) bool {
	if n == nil {
		return false
	}
	if less(value, n.value) {
		return contains(n.left, value, less)
	}
	if less(n.value, value) {
		return contains(n.right, value, less)
	}
	return true
}

func (t *AVLTree[T]) FindMin() (T, error) {
	if t.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("FindMin: %w", ErrUnderflow)
	}
	return findMin(t.root).value, nil
}

func (t *AVLTree[T]) FindMax() (T, error) {
	if t.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("FindMax: %w", ErrUnderflow)
	}
	return findMax(t.root).value, nil
}

func findMin[T any](n *node[T]) *node[T] {
	if n == nil || n.left == nil {
		return n
	}
	return findMin(n.left)
}

func findMax[T any](n *node[T]) *node[T] {
	for n != nil && n.right != nil {
		n = n.right
	}
	return n
}

// Insert 已经存在的值直接忽略
func (t *AVLTree[T]) Insert(value T) {
	t.root = insert(t.root, value, t.less)
}

func (t *AVLTree[T]) InsertAll(values ...T) {
	for _, v := range values {
		t.Insert(v)
	}
}

func insert[T any](n *node[T], value T, less func(a, b T) bool) *node[T] {
	if n == nil {
		return &node[T]{value: value}
	}

	if less(value, n.value) {
		n.left = insert(n.left, value, less)
	} else if less(n.value, value) {
		n.right = insert(n.right, value, less)
	} else {
		// 重复值，什么都不做
		return n
	}

	return balance(n)
}

// Remove 值不存在时什么都不做
func (t *AVLTree[T]) Remove(value T) {
	t.root = remove(t.root, value, t.less)
}

func remove[T any](n *node[T], value T, less func(a, b T) bool) *node[T] {
	if n == nil {
		return nil
	}

	switch {
	case less(value, n.value):
		n.left = remove(n.left, value, less)
	case less(n.value, value):
		n.right = remove(n.right, value, less)
	case n.left != nil && n.right != nil:
		// 两个子节点: 拿右子树的最小值替换当前值，再到右子树里删掉它
		n.value = findMin(n.right).value
		n.right = remove(n.right, n.value, less)
	default:
		child := n.left
		if child == nil {
			child = n.right
		}
		release(n)
		return balance(child)
	}

	return balance(n)
}
