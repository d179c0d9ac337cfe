package avltree

// 兄弟子树允许的最大高度差
const allowedImbalance = 1

func height[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func updateHeight[T any](n *node[T]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

func balanceFactor[T any](n *node[T]) int {
	return height(n.left) - height(n.right)
}

// balance 在 n 处恢复平衡并刷新高度，调用前子树必须已经平衡
// 孙子节点等高时用单旋 (>=)
func balance[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}

	bf := balanceFactor(n)
	if bf > allowedImbalance {
		if height(n.left.left) >= height(n.left.right) {
			n = rotateRight(n)
		} else {
			n = rotateLeftRight(n)
		}
	} else if bf < -allowedImbalance {
		if height(n.right.right) >= height(n.right.left) {
			n = rotateLeft(n)
		} else {
			n = rotateRightLeft(n)
		}
	}

	updateHeight(n)
	return n
}

// rotateRight 把 k2 的左孩子 k1 提上来
func rotateRight[T any](k2 *node[T]) *node[T] {
	k1 := k2.left
	k2.left = k1.right
	k1.right = k2
	updateHeight(k2)
	updateHeight(k1)
	return k1
}

// rotateLeft 把 k1 的右孩子 k2 提上来
func rotateLeft[T any](k1 *node[T]) *node[T] {
	k2 := k1.right
	k1.right = k2.left
	k2.left = k1
	updateHeight(k1)
	updateHeight(k2)
	return k2
}

// 先左旋左孩子，再右旋自己
func rotateLeftRight[T any](k3 *node[T]) *node[T] {
	k3.left = rotateLeft(k3.left)
	return rotateRight(k3)
}

// 先右旋右孩子，再左旋自己
func rotateRightLeft[T any](k1 *node[T]) *node[T] {
	k1.right = rotateRight(k1.right)
	return rotateLeft(k1)
}
