package avlcmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"avl_tool/pkg/avltree"
	"avl_tool/pkg/errorutil"
	"avl_tool/pkg/logutil"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"golang.org/x/exp/constraints"
)

type statsOptions struct {
	InputOptions
	JSON   bool
	Strict bool
}

// StatsCmd 打印节点数、高度、最值和每一层的节点数
func StatsCmd() *cobra.Command {
	opts := &statsOptions{}

	cmd := &cobra.Command{
		Use:   "stats [values...]",
		Short: "打印 AVL 树的统计信息",
		Long: `打印 AVL 树的统计信息
Examples:

avltool stats -v 10,5,23,3,7,30,1
size:   7
height: 3
min:    1
max:    30
levels: 1 2 3 1

空树没有最小最大值，这时候不会报错，对应的字段输出 - (JSON 中是 null)
avltool stats --json
加上 --strict 之后空树以 69 退出
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(&opts.InputOptions, cmd, args,
				func(in input[int64]) error { return runStats(cmd.OutOrStdout(), in.build(), opts) },
				func(in input[string]) error { return runStats(cmd.OutOrStdout(), in.build(), opts) },
			)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().BoolVarP(&opts.JSON, "json", "j", false, "以 JSON 格式输出")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "空树时以 CodeEmptyTree 退出")

	return cmd
}

type stats[T any] struct {
	size   int
	height int
	min    *T
	max    *T
	levels []int
}

func collectStats[T constraints.Ordered](tree *avltree.AVLTree[T], strict bool) (stats[T], error) {
	s := stats[T]{size: tree.Size(), height: tree.Height()}
	for d := 0; d <= s.height; d++ {
		s.levels = append(s.levels, len(tree.AtDepth(d)))
	}

	lo, err := tree.FindMin()
	if err != nil {
		if errors.Is(err, avltree.ErrUnderflow) && !strict {
			// 空树只是提示，不算失败
			logutil.Warn("%v", err)
			return s, nil
		}
		return s, err
	}
	hi, err := tree.FindMax()
	if err != nil {
		return s, err
	}
	s.min, s.max = &lo, &hi
	return s, nil
}

func runStats[T constraints.Ordered](w io.Writer, tree *avltree.AVLTree[T], opts *statsOptions) error {
	s, err := collectStats(tree, opts.Strict)
	if errors.Is(err, avltree.ErrUnderflow) {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeEmptyTree, "空树没有最小最大值", err)
	}
	if err != nil {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeInternalErr, "统计失败", err)
	}

	if opts.JSON {
		report, err := s.json()
		if err != nil {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeInternalErr, "生成 JSON 失败", err)
		}
		_, err = w.Write(pretty.Pretty([]byte(report)))
		return err
	}

	levels := make([]string, len(s.levels))
	for i, n := range s.levels {
		levels[i] = humanize.Comma(int64(n))
	}
	_, err = fmt.Fprintf(w, "size:   %s\nheight: %d\nmin:    %s\nmax:    %s\nlevels: %s\n",
		humanize.Comma(int64(s.size)), s.height, orDash(s.min), orDash(s.max), strings.Join(levels, " "))
	return err
}

func orDash[T any](v *T) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

// json 用 sjson 逐个字段写入，保持字段顺序
func (s stats[T]) json() (string, error) {
	report := "{}"
	var err error
	set := func(path string, value any) {
		if err == nil {
			report, err = sjson.Set(report, path, value)
		}
	}
	setRaw := func(path, raw string) {
		if err == nil {
			report, err = sjson.SetRaw(report, path, raw)
		}
	}

	set("size", s.size)
	set("height", s.height)
	set("empty", s.min == nil)
	if s.min == nil {
		setRaw("min", "null")
		setRaw("max", "null")
	} else {
		set("min", *s.min)
		set("max", *s.max)
	}
	if len(s.levels) == 0 {
		setRaw("levels", "[]")
	} else {
		set("levels", s.levels)
	}
	return report, err
}
