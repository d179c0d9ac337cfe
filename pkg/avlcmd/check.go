package avlcmd

import (
	"fmt"
	"io"

	"avl_tool/pkg/avltree"
	"avl_tool/pkg/errorutil"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"
)

// CheckCmd 校验排序、高度缓存和平衡因子，失败时退出码为 CodeInvariant
func CheckCmd() *cobra.Command {
	opts := &InputOptions{}

	cmd := &cobra.Command{
		Use:   "check [values...]",
		Short: "构建 AVL 树并校验它的不变量",
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(opts, cmd, args,
				func(in input[int64]) error { return runCheck(cmd.OutOrStdout(), in.build()) },
				func(in input[string]) error { return runCheck(cmd.OutOrStdout(), in.build()) },
			)
		},
	}

	opts.addFlags(cmd)
	return cmd
}

func runCheck[T constraints.Ordered](w io.Writer, tree *avltree.AVLTree[T]) error {
	if err := tree.Check(); err != nil {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeInvariant, "不变量校验失败", err)
	}
	_, err := fmt.Fprintf(w, "ok: %s nodes, height %d\n", humanize.Comma(int64(tree.Size())), tree.Height())
	return err
}
