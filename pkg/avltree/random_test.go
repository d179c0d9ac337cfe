package avltree_test

import (
	"math/rand"
	"testing"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avl_tool/pkg/avltree"
)

// 大量随机插入删除，每三次插入删除一个随机元素，用 google/btree 做对照
func TestBigTreeFuzzing(t *testing.T) {
	rng := rand.New(rand.NewSource(20170101))
	tree := avltree.NewOrdered[int]()
	oracle := btree.NewOrderedG[int](16)

	var present []int
	for i := 0; i < 3000; i++ {
		v := rng.Intn(900000)
		if _, replaced := oracle.ReplaceOrInsert(v); !replaced {
			present = append(present, v)
		}
		tree.Insert(v)

		if i%3 == 0 {
			idx := rng.Intn(len(present))
			tree.Remove(present[idx])
			oracle.Delete(present[idx])
			present = append(present[:idx], present[idx+1:]...)
		}

		if i%250 == 0 {
			require.NoError(t, tree.Check(), "step %d", i)
		}
	}

	require.NoError(t, tree.Check())
	assert.Equal(t, oracle.Len(), tree.Size())

	var want []int
	oracle.Ascend(func(v int) bool {
		want = append(want, v)
		return true
	})
	if diff := cmp.Diff(want, tree.InOrder()); diff != "" {
		t.Errorf("Mismatch (-want +got):\n%s", diff)
	}

	lo, err := tree.FindMin()
	require.NoError(t, err)
	oracleMin, _ := oracle.Min()
	assert.Equal(t, oracleMin, lo)

	hi, err := tree.FindMax()
	require.NoError(t, err)
	oracleMax, _ := oracle.Max()
	assert.Equal(t, oracleMax, hi)
}

func TestAgainstRedBlackTree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tree := avltree.NewOrdered[int]()
	oracle := rbt.NewWithIntComparator()

	for i := 0; i < 2000; i++ {
		v := rng.Intn(500)
		if rng.Intn(4) == 0 {
			tree.Remove(v)
			oracle.Remove(v)
			continue
		}
		tree.Insert(v)
		oracle.Put(v, struct{}{})
	}

	require.NoError(t, tree.Check())
	var want []int
	for _, k := range oracle.Keys() {
		want = append(want, k.(int))
	}
	if diff := cmp.Diff(want, tree.InOrder()); diff != "" {
		t.Errorf("Mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, oracle.Size(), tree.Size())
}

func TestInsertRemoveProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	tree := avltree.NewOrdered[int]()
	for i := 0; i < 200; i++ {
		tree.Insert(rng.Intn(1000))
	}

	for i := 0; i < 200; i++ {
		x := 1000 + rng.Intn(1000) // 一定不在树里
		before := tree.Size()

		tree.Insert(x)
		require.True(t, tree.Contains(x))
		require.Equal(t, before+1, tree.Size())

		// 幂等
		inorder := tree.InOrder()
		tree.Insert(x)
		require.Equal(t, before+1, tree.Size())
		require.Equal(t, inorder, tree.InOrder())

		tree.Remove(x)
		require.False(t, tree.Contains(x))
		require.Equal(t, before, tree.Size())
		require.NoError(t, tree.Check())
	}
}

// 有序插入是 AVL 最坏的输入之一，高度仍然是对数级别
func TestSequentialInsertHeight(t *testing.T) {
	tree := avltree.NewOrdered[int]()
	for i := 1; i <= 1023; i++ {
		tree.Insert(i)
	}
	assert.Equal(t, 9, tree.Height())
	assert.NoError(t, tree.Check())

	for i := 1; i <= 1023; i += 2 {
		tree.Remove(i)
	}
	assert.Equal(t, 511, tree.Size())
	assert.NoError(t, tree.Check())
}
