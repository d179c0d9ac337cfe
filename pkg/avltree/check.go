package avltree

import (
	"errors"
	"fmt"
)

// ErrInvariant Check 报告的所有问题都包装这个错误
var ErrInvariant = errors.New("avltree: invariant violated")

// Check 校验每个节点的顺序、缓存高度和平衡因子
func (t *AVLTree[T]) Check() error {
	_, err := t.check(t.root, nil, nil)
	return err
}

// check 返回重新计算的高度，lo / hi 是开区间上下界
func (t *AVLTree[T]) check(n *node[T], lo, hi *T) (int, error) {
	if n == nil {
		return -1, nil
	}
	if lo != nil && !t.less(*lo, n.value) {
		return 0, fmt.Errorf("%w: %s is not greater than %s", ErrInvariant, t.format(n.value), t.format(*lo))
	}
	if hi != nil && !t.less(n.value, *hi) {
		return 0, fmt.Errorf("%w: %s is not less than %s", ErrInvariant, t.format(n.value), t.format(*hi))
	}

	lh, err := t.check(n.left, lo, &n.value)
	if err != nil {
		return 0, err
	}
	rh, err := t.check(n.right, &n.value, hi)
	if err != nil {
		return 0, err
	}

	if want := max(lh, rh) + 1; n.height != want {
		return 0, fmt.Errorf("%w: %s caches height %d, want %d", ErrInvariant, t.format(n.value), n.height, want)
	}
	if bf := lh - rh; bf > allowedImbalance || bf < -allowedImbalance {
		return 0, fmt.Errorf("%w: %s has balance factor %d", ErrInvariant, t.format(n.value), bf)
	}
	return n.height, nil
}
