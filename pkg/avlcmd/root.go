package avlcmd

import (
	"fmt"

	"avl_tool/pkg/errorutil"
	"avl_tool/pkg/logutil"

	"github.com/spf13/cobra"
)

// NewRootCmd 根命令，日志参数对所有子命令生效
func NewRootCmd(version string) *cobra.Command {
	var logFile string
	logLevel := logutil.WARN

	rootCmd := &cobra.Command{
		Use:   "avltool",
		Short: fmt.Sprintf("avltool v%s 构建、打印、校验 AVL 树", version),
		Long: "    10\n" +
			"   /  \\       avltool\n" +
			"  5    23\n" +
			" / \\     \\\n" +
			"3   7    30\n" +
			fmt.Sprintf("\navltool v%s 构建、打印、校验 AVL 树，支持 build/show/trace/stats/check 等子命令\n", version),
		Version: version,
		// 阻止 Cobra 在命令参数错误时输出帮助
		SilenceUsage: true,
		// 阻止 Cobra 自动打印 RunE 返回的错误内容
		SilenceErrors: true,
	}

	// 定义全局flag(屁股后面带P的函数才支持短选项)
	rootCmd.PersistentFlags().VarP(&logLevel, "log-level", "e", "日志等级(DEBUG/INFO/WARN/ERROR)")
	rootCmd.PersistentFlags().StringVarP(&logFile, "log-file", "l", "avltool.log", "日志文件名(stdout 表示标准输出)")

	// PersistentPreRunE 在 flag 值填充后执行
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logutil.InitLogger(logFile, logLevel)
		logutil.Debug("执行子命令: %s %v", cmd.Name(), args)
		return nil
	}

	// 子命令会沿用父命令的 FlagErrorFunc
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage, "参数错误", err)
	})

	for _, cmd := range []*cobra.Command{BuildCmd(), ShowCmd(), TraceCmd(), StatsCmd(), CheckCmd()} {
		registerCompletions(cmd)
		rootCmd.AddCommand(cmd)
	}
	return rootCmd
}
