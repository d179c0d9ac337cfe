package avlcmd

import (
	"fmt"
	"io"

	"avl_tool/pkg/avltree"
	"avl_tool/pkg/diffutil"
	"avl_tool/pkg/errorutil"
	"avl_tool/pkg/logutil"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"
)

type traceOptions struct {
	InputOptions
	Style     StyleFlag
	Direction DirectionFlag
}

// TraceCmd 一步一步插入删除，每一步都打印前后对比
func TraceCmd() *cobra.Command {
	opts := &traceOptions{}

	cmd := &cobra.Command{
		Use:   "trace [values...]",
		Short: "逐步插入和删除，打印每一步树形状的变化",
		Long: `逐步插入和删除，打印每一步树形状的变化
左边是操作前，右边是操作后，中间一列
    |  没有变化
    ~  修改
    -  只在操作前存在
    +  只在操作后存在

avltool trace -v 10,20,30 -r 10
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(&opts.InputOptions, cmd, args,
				func(in input[int64]) error { return runTrace(cmd.OutOrStdout(), in, opts) },
				func(in input[string]) error { return runTrace(cmd.OutOrStdout(), in, opts) },
			)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().VarP(&opts.Style, "style", "s", "线条风格(ascii|unicode)")
	cmd.Flags().VarP(&opts.Direction, "direction", "d", "哪一侧子树打印在上面(right|left)")

	return cmd
}

type step[T any] struct {
	action string
	value  T
	apply  func(T)
}

func runTrace[T constraints.Ordered](w io.Writer, in input[T], opts *traceOptions) error {
	tree := avltree.NewOrdered[T]()
	render := func() string {
		return tree.PrintTree(opts.Style.Value(), opts.Direction.Value())
	}

	var steps []step[T]
	for _, v := range in.values {
		steps = append(steps, step[T]{action: "insert", value: v, apply: tree.Insert})
	}
	for _, v := range in.removes {
		steps = append(steps, step[T]{action: "remove", value: v, apply: tree.Remove})
	}

	for i, s := range steps {
		before := render()
		s.apply(s.value)
		after := render()

		diff := diffutil.CompareSnapshots(before, after)
		changed := diffutil.CountChanges(diff)
		logutil.Debug("%s %v: %d 行变化", s.action, s.value, changed)

		if _, err := fmt.Fprintf(w, "== %s: %s %v (%d changed)\n", humanize.Ordinal(i+1), s.action, s.value, changed); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, diffutil.FormatSideBySide(diff, "before", "after")); err != nil {
			return err
		}
	}

	if err := tree.Check(); err != nil {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeInvariant, "trace 结束后校验失败", err)
	}
	return nil
}
