package logutil

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// Level 日志级别，值越小打印得越多
type Level int

const (
	DEBUG Level = iota // 0
	INFO               // 1
	WARN               // 2
	ERROR              // 3
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

// cobra 的 VarP 需要 pflag.Value
var _ pflag.Value = (*Level)(nil)

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

func (l *Level) Set(val string) error {
	level, err := ParseLogLevel(val)
	if err != nil {
		return err
	}
	*l = level
	return nil
}

func (l *Level) Type() string {
	return "level"
}

// ParseLogLevel 不区分大小写
func ParseLogLevel(val string) (Level, error) {
	want := strings.ToUpper(strings.TrimSpace(val))
	for level, name := range levelNames {
		if name == want {
			return level, nil
		}
	}
	return INFO, fmt.Errorf("无效的日志等级: %q (DEBUG/INFO/WARN/ERROR)", val)
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case DEBUG:
		return zerolog.DebugLevel
	case WARN:
		return zerolog.WarnLevel
	case ERROR:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

var (
	logger       zerolog.Logger
	logFile      *os.File
	once         sync.Once
	ready        bool
	currentLevel = INFO // 默认日志级别

	// InitLogger 之前的日志先写到控制台，不占用 once
	fallback     zerolog.Logger
	fallbackOnce sync.Once
)

func newLogger(out *os.File) zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: time.DateTime}
	// Debug/Info... -> logMessage -> Msgf，多跳过两层才是真正的调用者
	return zerolog.New(writer).With().Timestamp().CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + 2).Logger()
}

// InitLogger 初始化日志，output 为 stdout 或者文件路径，只有第一次调用生效
func InitLogger(output string, level Level) {
	once.Do(func() {
		logFile = os.Stdout
		if output != "" && output != "stdout" {
			// 追加模式，不覆盖已有内容
			f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				fmt.Fprintf(os.Stderr, "无法创建日志文件 %s: %v，改为输出到 stderr\n", output, err)
				logFile = os.Stderr
			} else {
				logFile = f
			}
		}

		logger = newLogger(logFile)
		ready = true
		SetLogLevel(level)
	})
}

// SetLogLevel 运行时调整日志级别
func SetLogLevel(level Level) {
	currentLevel = level
	if ready {
		logger = logger.Level(level.zerolog())
	}
}

// CurrentLevel 当前生效的日志级别
func CurrentLevel() Level {
	return currentLevel
}

// logMessage 仅输出符合当前级别的日志
func logMessage(level Level, msg string, args ...any) {
	if level < currentLevel {
		return
	}
	if !ready {
		fallbackOnce.Do(func() { fallback = newLogger(os.Stdout) })
		fallback.WithLevel(level.zerolog()).Msgf(msg, args...)
		return
	}
	logger.WithLevel(level.zerolog()).Msgf(msg, args...)
}

func Debug(msg string, args ...any) {
	logMessage(DEBUG, msg, args...)
}

func Info(msg string, args ...any) {
	logMessage(INFO, msg, args...)
}

func Warn(msg string, args ...any) {
	logMessage(WARN, msg, args...)
}

// Error 记录 ERROR 日志，DEBUG 级别下附带调用堆栈
func Error(msg string, args ...any) {
	if currentLevel == DEBUG {
		msg += "\n调用堆栈:\n" + strings.ReplaceAll(string(debug.Stack()), "%", "%%")
	}
	logMessage(ERROR, msg, args...)
}

// CloseLogger 关闭日志文件（标准输出和标准错误不关闭）
func CloseLogger() error {
	if logFile != nil && logFile != os.Stdout && logFile != os.Stderr {
		return logFile.Close()
	}
	return nil
}
