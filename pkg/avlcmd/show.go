package avlcmd

import (
	"io"

	"avl_tool/pkg/avltree"
	"avl_tool/pkg/errorutil"

	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"
)

type showOptions struct {
	InputOptions
	Style     StyleFlag
	Direction DirectionFlag
	Dot       bool
}

// ShowCmd 打印树的形状
func ShowCmd() *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show [values...]",
		Short: "打印 AVL 树的形状",
		Long: `打印 AVL 树的形状，每个节点后面带上高度
Examples:

avltool show -v 10,5,23 -s unicode
    ┌──>23(h=0)
│── 10(h=1)
    └──>5(h=0)

输出成 Graphviz 格式
avltool show -v 10,5,23 --dot | dot -Tpng -o tree.png
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(&opts.InputOptions, cmd, args,
				func(in input[int64]) error { return runShow(cmd.OutOrStdout(), in.build(), opts) },
				func(in input[string]) error { return runShow(cmd.OutOrStdout(), in.build(), opts) },
			)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().VarP(&opts.Style, "style", "s", "线条风格(ascii|unicode)")
	cmd.Flags().VarP(&opts.Direction, "direction", "d", "哪一侧子树打印在上面(right|left)")
	cmd.Flags().BoolVar(&opts.Dot, "dot", false, "输出 Graphviz DOT 格式")

	return cmd
}

func runShow[T constraints.Ordered](w io.Writer, tree *avltree.AVLTree[T], opts *showOptions) error {
	if opts.Dot {
		dot, err := tree.Dot()
		if err != nil {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeInternalErr, "生成 DOT 失败", err)
		}
		_, err = io.WriteString(w, dot)
		return err
	}
	_, err := io.WriteString(w, tree.PrintTree(opts.Style.Value(), opts.Direction.Value()))
	return err
}
