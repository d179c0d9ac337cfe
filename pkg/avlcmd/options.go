package avlcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"avl_tool/pkg/avltree"
	"avl_tool/pkg/errorutil"
	"avl_tool/pkg/logutil"
	"avl_tool/pkg/treeprinter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tidwall/gjson"
	"golang.org/x/exp/constraints"
)

// Kind 树里元素的类型
type Kind string

const (
	KindInt    Kind = "int"
	KindString Kind = "string"
)

// 为了让 VarP 接收自定义类型，实现 pflag.Value 接口(String Set Type)即可
var (
	_ pflag.Value = (*Kind)(nil)
	_ pflag.Value = (*OrderFlag)(nil)
	_ pflag.Value = (*StyleFlag)(nil)
	_ pflag.Value = (*DirectionFlag)(nil)
	_ pflag.Value = (*OutputFormat)(nil)
)

func (k *Kind) String() string { return string(*k) }

func (k *Kind) Set(val string) error {
	switch Kind(val) {
	case KindInt, KindString:
		*k = Kind(val)
		return nil
	default:
		return fmt.Errorf("无效的 kind 值: %s", val)
	}
}

func (k *Kind) Type() string { return "kind" }

// OrderFlag 遍历顺序，all 表示四种都打印
type OrderFlag struct {
	All   bool
	Order avltree.Order
}

func (o *OrderFlag) String() string {
	if o.All {
		return "all"
	}
	return o.Order.String()
}

func (o *OrderFlag) Set(val string) error {
	if strings.EqualFold(strings.TrimSpace(val), "all") {
		o.All = true
		return nil
	}
	order, err := avltree.ParseOrder(val)
	if err != nil {
		return fmt.Errorf("无效的遍历顺序: %s", val)
	}
	o.All = false
	o.Order = order
	return nil
}

func (o *OrderFlag) Type() string { return "order" }

// Orders 展开成要打印的遍历顺序
func (o *OrderFlag) Orders() []avltree.Order {
	if o.All {
		return avltree.Orders()
	}
	return []avltree.Order{o.Order}
}

type StyleFlag treeprinter.Style

func (s *StyleFlag) String() string {
	if treeprinter.Style(*s) == treeprinter.StyleUnicode {
		return "unicode"
	}
	return "ascii"
}

func (s *StyleFlag) Set(val string) error {
	switch strings.ToLower(val) {
	case "ascii":
		*s = StyleFlag(treeprinter.StyleASCII)
	case "unicode":
		*s = StyleFlag(treeprinter.StyleUnicode)
	default:
		return fmt.Errorf("无效的 style 值: %s", val)
	}
	return nil
}

func (s *StyleFlag) Type() string { return "style" }

func (s StyleFlag) Value() treeprinter.Style { return treeprinter.Style(s) }

type DirectionFlag treeprinter.Direction

func (d *DirectionFlag) String() string {
	if treeprinter.Direction(*d) == treeprinter.LeftRootRight {
		return "left"
	}
	return "right"
}

// right: 右子树在上  left: 左子树在上
func (d *DirectionFlag) Set(val string) error {
	switch strings.ToLower(val) {
	case "right":
		*d = DirectionFlag(treeprinter.RightRootLeft)
	case "left":
		*d = DirectionFlag(treeprinter.LeftRootRight)
	default:
		return fmt.Errorf("无效的 direction 值: %s", val)
	}
	return nil
}

func (d *DirectionFlag) Type() string { return "direction" }

func (d DirectionFlag) Value() treeprinter.Direction { return treeprinter.Direction(d) }

// OutputFormat 文本或者可以被 bash eval 的变量声明
type OutputFormat string

const (
	FormatTxt OutputFormat = "txt"
	FormatSh  OutputFormat = "sh"
)

func (f *OutputFormat) String() string { return string(*f) }

func (f *OutputFormat) Set(val string) error {
	switch OutputFormat(val) {
	case FormatTxt, FormatSh:
		*f = OutputFormat(val)
		return nil
	default:
		return fmt.Errorf("无效的 format 值: %s", val)
	}
}

func (f *OutputFormat) Type() string { return "format" }

// InputOptions 所有子命令共用的输入参数
type InputOptions struct {
	Values []string
	Remove []string
	Input  string
	Path   string
	Kind   Kind
}

func (opts *InputOptions) addFlags(cmd *cobra.Command) {
	opts.Kind = KindInt
	cmd.Flags().StringSliceVarP(&opts.Values, "values", "v", nil, "要插入的值，逗号分隔，也可以直接跟在命令后面")
	cmd.Flags().StringSliceVarP(&opts.Remove, "remove", "r", nil, "插入完成后要删除的值，逗号分隔")
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "JSON 输入文件（- 表示标准输入）")
	cmd.Flags().StringVarP(&opts.Path, "path", "p", "", "gjson 路径，指向 JSON 中的数组（默认整个文档）")
	cmd.Flags().VarP(&opts.Kind, "kind", "k", "元素类型(int|string)")
}

// rawValues 先读 JSON 输入，再追加命令行的值
func (opts *InputOptions) rawValues(cmd *cobra.Command, args []string) ([]string, error) {
	var values []string
	if opts.Input != "" {
		fromJSON, err := opts.readJSON(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		values = append(values, fromJSON...)
	}
	values = append(values, opts.Values...)
	values = append(values, args...)
	logutil.Debug("读取到 %d 个待插入的值", len(values))
	return values, nil
}

func (opts *InputOptions) readJSON(stdin io.Reader) ([]string, error) {
	var raw []byte
	var err error
	if opts.Input == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(opts.Input)
	}
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeMissingInput,
				fmt.Sprintf("输入文件 %s 不存在", opts.Input), err)
		}
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "读取输入失败", err)
	}

	// 校验 JSON 格式
	if !gjson.ValidBytes(raw) {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "输入内容不是有效的 JSON", nil)
	}

	var result gjson.Result
	if strings.TrimSpace(opts.Path) == "" {
		result = gjson.ParseBytes(raw)
	} else {
		result = gjson.GetBytes(raw, opts.Path)
		if !result.Exists() {
			return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeMissingInput,
				fmt.Sprintf("字段 %q 不存在", opts.Path), nil)
		}
	}

	if !result.IsArray() {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData,
			fmt.Sprintf("%q 不是数组", opts.Path), nil)
	}

	var values []string
	var bad error
	result.ForEach(func(_, v gjson.Result) bool {
		if v.IsArray() || v.IsObject() {
			bad = fmt.Errorf("数组元素 %s 不是标量", v.Raw)
			return false
		}
		values = append(values, v.String())
		return true
	})
	if bad != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "无效的输入数据", bad)
	}
	return values, nil
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q 不是整数", s)
	}
	return v, nil
}

func parseString(s string) (string, error) {
	return s, nil
}

func parseAll[T any](raw []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(raw))
	for _, s := range raw {
		v, err := parse(s)
		if err != nil {
			return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "无效的输入数据", err)
		}
		out = append(out, v)
	}
	return out, nil
}

// input 解析完成的插入值和删除值
type input[T constraints.Ordered] struct {
	values  []T
	removes []T
}

func load[T constraints.Ordered](opts *InputOptions, cmd *cobra.Command, args []string, parse func(string) (T, error)) (input[T], error) {
	raw, err := opts.rawValues(cmd, args)
	if err != nil {
		return input[T]{}, err
	}
	values, err := parseAll(raw, parse)
	if err != nil {
		return input[T]{}, err
	}
	removes, err := parseAll(opts.Remove, parse)
	if err != nil {
		return input[T]{}, err
	}
	return input[T]{values: values, removes: removes}, nil
}

// build 先插入再删除
func (in input[T]) build() *avltree.AVLTree[T] {
	tree := avltree.NewFromSlice(func(a, b T) bool { return a < b }, in.values)
	for _, v := range in.removes {
		tree.Remove(v)
	}
	return tree
}

// dispatch 按 --kind 选择元素类型后执行 run
// Go 的方法不能带类型参数，所以两种类型各写一次调用
func dispatch(opts *InputOptions, cmd *cobra.Command, args []string,
	runInt func(input[int64]) error, runString func(input[string]) error) error {
	switch opts.Kind {
	case KindString:
		in, err := load(opts, cmd, args, parseString)
		if err != nil {
			return err
		}
		return runString(in)
	default:
		in, err := load(opts, cmd, args, parseInt)
		if err != nil {
			return err
		}
		return runInt(in)
	}
}
