package avltree

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

type Order int

const (
	OrderIn Order = iota
	OrderPre
	OrderPost
	OrderLevel
)

var orderNames = map[Order]string{
	OrderIn:    "in",
	OrderPre:   "pre",
	OrderPost:  "post",
	OrderLevel: "level",
}

func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder 接受 in / pre / post / level，可以带 -order 后缀
func ParseOrder(s string) (Order, error) {
	want := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "-order")
	for o, name := range orderNames {
		if name == want {
			return o, nil
		}
	}
	return OrderIn, fmt.Errorf("unknown traversal order %q", s)
}

// Orders 所有遍历顺序
func Orders() []Order {
	return []Order{OrderIn, OrderPre, OrderPost, OrderLevel}
}

// Walk 按顺序访问元素，fn 返回 false 时提前结束
func (t *AVLTree[T]) Walk(order Order, fn func(T) bool) {
	switch order {
	case OrderIn:
		walkIn(t.root, fn)
	case OrderPre:
		walkPre(t.root, fn)
	case OrderPost:
		walkPost(t.root, fn)
	case OrderLevel:
		walkLevel(t.root, fn)
	}
}

func walkIn[T any](n *node[T], fn func(T) bool) bool {
	if n == nil {
		return true
	}
	return walkIn(n.left, fn) && fn(n.value) && walkIn(n.right, fn)
}

func walkPre[T any](n *node[T], fn func(T) bool) bool {
	if n == nil {
		return true
	}
	return fn(n.value) && walkPre(n.left, fn) && walkPre(n.right, fn)
}

func walkPost[T any](n *node[T], fn func(T) bool) bool {
	if n == nil {
		return true
	}
	return walkPost(n.left, fn) && walkPost(n.right, fn) && fn(n.value)
}

func walkLevel[T any](root *node[T], fn func(T) bool) {
	if root == nil {
		return
	}
	queue := linkedlistqueue.New()
	queue.Enqueue(root)
	for !queue.Empty() {
		v, _ := queue.Dequeue()
		n := v.(*node[T])
		if !fn(n.value) {
			return
		}
		if n.left != nil {
			queue.Enqueue(n.left)
		}
		if n.right != nil {
			queue.Enqueue(n.right)
		}
	}
}

// Traverse 收集遍历结果，空树返回 nil
func (t *AVLTree[T]) Traverse(order Order) []T {
	var out []T
	t.Walk(order, func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

func (t *AVLTree[T]) InOrder() []T    { return t.Traverse(OrderIn) }
func (t *AVLTree[T]) PreOrder() []T   { return t.Traverse(OrderPre) }
func (t *AVLTree[T]) PostOrder() []T  { return t.Traverse(OrderPost) }
func (t *AVLTree[T]) LevelOrder() []T { return t.Traverse(OrderLevel) }

// AtDepth 返回某一层从左到右的元素，根节点是第 0 层
func (t *AVLTree[T]) AtDepth(depth int) []T {
	var out []T
	collectDepth(t.root, depth, &out)
	return out
}

func collectDepth[T any](n *node[T], depth int, out *[]T) {
	if n == nil || depth < 0 {
		return
	}
	if depth == 0 {
		*out = append(*out, n.value)
		return
	}
	collectDepth(n.left, depth-1, out)
	collectDepth(n.right, depth-1, out)
}
