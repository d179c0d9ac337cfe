// Package avltree 泛型 AVL 树：二叉查找树，每次插入、删除之后通过旋转恢复平衡
//
// 高度约定: 空子树高度为 -1，叶子节点为 0。重复插入直接忽略；
// 删除有两个子节点的节点时，用右子树的最小值替换，再到右子树中删除这个值。
//
// 注意: 一棵树不是并发安全的，要么只在一个 goroutine 里使用，要么每次调用都加锁。
package avltree
