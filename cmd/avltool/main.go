package main

import (
	"fmt"
	"os"

	"avl_tool/pkg/avlcmd"
	"avl_tool/pkg/errorutil"
	"avl_tool/pkg/logutil"
)

const TOOL_VERSION = "1.0.0+20251019"

func main() {
	rootCmd := avlcmd.NewRootCmd(TOOL_VERSION)

	if err := rootCmd.Execute(); err != nil {
		msg, code := errorutil.FormatErrorAndCode(err)
		logutil.Error("命令执行失败: %v", err)
		fmt.Fprintln(os.Stderr, msg)
		logutil.CloseLogger()
		os.Exit(code)
	}

	// 不要用defer，因为defer是在函数返回前执行的，而不是os.Exit()执行前执行
	logutil.CloseLogger()
	os.Exit(errorutil.CodeSuccess)
}
