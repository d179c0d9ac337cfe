package avlcmd

import (
	"fmt"
	"io"

	"avl_tool/pkg/avltree"
	"avl_tool/pkg/errorutil"
	"avl_tool/pkg/sh"

	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"
)

type buildOptions struct {
	InputOptions
	Order   OrderFlag
	Format  OutputFormat
	VarName string
}

// BuildCmd 插入、删除之后打印遍历结果
func BuildCmd() *cobra.Command {
	opts := &buildOptions{Format: FormatTxt}

	cmd := &cobra.Command{
		Use:   "build [values...]",
		Short: "构建 AVL 树并打印遍历结果",
		Long: `构建 AVL 树并打印遍历结果
Examples:

1. 中序遍历
avltool build -v 10,5,23,3,7,30,1
1 3 5 7 10 23 30

2. 删除之后打印所有遍历顺序
avltool build -v 10,5,23,3,7,30,1 -r 10 -o all
in:    1 3 5 7 23 30
pre:   5 3 1 23 7 30
...

3. 从 JSON 文件读取
avltool build -i demo.json -p data.values -k string

4. 输出成 bash 数组
eval -- "$(avltool build -v 3,1,2 -o level -t sh -n keys)"

-o all 时每种顺序一个数组: keys_in keys_pre keys_post keys_level
eval -- "$(avltool build -v 3,1,2 -o all -t sh -n keys)"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := dispatch(&opts.InputOptions, cmd, args,
				func(in input[int64]) error { return runBuild(cmd.OutOrStdout(), in.build(), opts) },
				func(in input[string]) error { return runBuild(cmd.OutOrStdout(), in.build(), opts) },
			)
			// 只有在返回 error 时清理变量，调用方 eval 之后可以用 ${var@A} 判断
			if err != nil && opts.Format == FormatSh {
				io.WriteString(cmd.OutOrStdout(), sh.Unset(opts.shVars()...))
			}
			return err
		},
	}

	// 参数解析失败也要清理变量，前提是 -t sh 已经解析过
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if opts.Format == FormatSh {
			io.WriteString(cmd.OutOrStdout(), sh.Unset(opts.shVars()...))
		}
		return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage, "参数错误", err)
	})

	opts.addFlags(cmd)
	cmd.Flags().VarP(&opts.Order, "order", "o", "遍历顺序(in|pre|post|level|all)")
	cmd.Flags().VarP(&opts.Format, "format", "t", "输出格式(txt|sh)")
	cmd.Flags().StringVarP(&opts.VarName, "varname", "n", "RESULT", "sh 输出变量名")

	return cmd
}

func runBuild[T constraints.Ordered](w io.Writer, tree *avltree.AVLTree[T], opts *buildOptions) error {
	orders := opts.Order.Orders()

	if opts.Format == FormatSh {
		if !opts.Order.All {
			_, err := io.WriteString(w, sh.DeclareArray(opts.VarName, texts(tree.Traverse(orders[0]))))
			return err
		}
		// 空树时每个数组都为空，和单个顺序的输出保持一致
		for _, o := range orders {
			name := opts.shVar(o)
			if _, err := io.WriteString(w, sh.DeclareArray(name, texts(tree.Traverse(o)))); err != nil {
				return err
			}
		}
		return nil
	}

	if !opts.Order.All {
		return tree.Print(w, orders[0])
	}
	for _, o := range orders {
		if _, err := fmt.Fprintf(w, "%-6s %s\n", o.String()+":", tree.Format(o)); err != nil {
			return err
		}
	}
	return nil
}

func (o *buildOptions) shVar(order avltree.Order) string {
	name := o.VarName
	if name == "" {
		name = "RESULT"
	}
	return name + "_" + order.String()
}

// shVars sh 输出会声明的所有变量名
func (o *buildOptions) shVars() []string {
	if !o.Order.All {
		return []string{o.VarName}
	}
	orders := o.Order.Orders()
	names := make([]string, len(orders))
	for i, order := range orders {
		names[i] = o.shVar(order)
	}
	return names
}

func texts[T any](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(v)
	}
	return out
}
