package avlcmd

import (
	"strings"

	"github.com/armon/go-radix"
	"github.com/spf13/cobra"
)

// 所有枚举类型 flag 的合法值，键是 "flag/值"，补全时按前缀查找
var flagValues = func() *radix.Tree {
	tree := radix.New()
	values := map[string][]string{
		"order":     {"in", "pre", "post", "level", "all"},
		"kind":      {string(KindInt), string(KindString)},
		"style":     {"ascii", "unicode"},
		"direction": {"right", "left"},
		"format":    {string(FormatTxt), string(FormatSh)},
	}
	for flag, vals := range values {
		for _, v := range vals {
			tree.Insert(flag+"/"+v, v)
		}
	}
	return tree
}()

// completeFlag 列出以 toComplete 开头的合法值
func completeFlag(flag string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var out []string
		flagValues.WalkPrefix(flag+"/"+strings.ToLower(toComplete), func(_ string, v interface{}) bool {
			out = append(out, v.(string))
			return false
		})
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}

// registerCompletions 给命令上已经定义的枚举 flag 注册补全
func registerCompletions(cmd *cobra.Command) {
	for _, flag := range []string{"order", "kind", "style", "direction", "format"} {
		if cmd.Flags().Lookup(flag) == nil {
			continue
		}
		_ = cmd.RegisterFlagCompletionFunc(flag, completeFlag(flag))
	}
}
