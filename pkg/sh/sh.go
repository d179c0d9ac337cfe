package sh

import (
	"fmt"
	"strings"
)

// 下面用来测试
// $'\a\b\t\n\v\f\r\E\\\'\000\001ABC中文'
// Quote 将任意字符串转为 $'...' 形式的 ANSI-C 样式安全字符串
func Quote(s string) string {
	var b strings.Builder
	b.WriteString("$'")

	for _, r := range s {
		switch r {
		case 27: // Escape
			b.WriteString(`\E`)
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\v':
			b.WriteString(`\v`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		default:
			if r < 32 || r == 127 {
				// 不可打印字符用 \ooo 八进制
				fmt.Fprintf(&b, `\%03o`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}

	b.WriteString("'")
	return b.String()
}

func varName(name string) string {
	if name == "" {
		return "RESULT"
	}
	return name
}

// DeclareArray 输出可以直接 eval 的数组声明，先 unset 保证是一个干净的变量
//
//	eval -- "$(avltool build -v 3,1,2 -o in -t sh -n keys)"
func DeclareArray(name string, values []string) string {
	name = varName(name)
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Quote(v)
	}
	return fmt.Sprintf("unset -v %s ; declare -a %s=(%s)\n", name, name, strings.Join(parts, " "))
}

// Unset 出错的时候把变量清掉，调用方通过 ${var@A} 判断是否成功
func Unset(names ...string) string {
	if len(names) == 0 {
		names = []string{""}
	}
	vars := make([]string, len(names))
	for i, name := range names {
		vars[i] = varName(name)
	}
	return fmt.Sprintf("unset -v %s\n", strings.Join(vars, " "))
}
