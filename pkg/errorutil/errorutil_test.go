package errorutil_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"avl_tool/pkg/errorutil"
)

var errRoot = errors.New("root cause")

func TestExitCodeFromError(t *testing.T) {
	assert.Equal(t, errorutil.CodeSuccess, errorutil.ExitCodeFromError(nil))
	assert.Equal(t, errorutil.CodeInternalErr, errorutil.ExitCodeFromError(errRoot))

	err := errorutil.NewExitError(errorutil.CodeEmptyTree, errRoot)
	assert.Equal(t, errorutil.CodeEmptyTree, errorutil.ExitCodeFromError(err))

	// 被再次包装后依然能取到退出码
	wrapped := fmt.Errorf("stats: %w", err)
	assert.Equal(t, errorutil.CodeEmptyTree, errorutil.ExitCodeFromError(wrapped))
	assert.ErrorIs(t, wrapped, errRoot)
}

func TestErrorText(t *testing.T) {
	assert.Equal(t, "bad value: root cause",
		errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "bad value", errRoot).Error())
	assert.Equal(t, "root cause", errorutil.NewExitError(errorutil.CodeIOError, errRoot).Error())
	assert.Equal(t, "only message",
		errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage, "only message", nil).Error())
	assert.Equal(t, "Exit with code: 72", (&errorutil.ExitErrorWithCode{Code: 72}).Error())
}

func TestUserMessage(t *testing.T) {
	err := errorutil.NewExitErrorWithMessage(errorutil.CodeMissingInput, "没有输入", nil)
	assert.Equal(t, "没有输入", errorutil.UserMessage(fmt.Errorf("wrap: %w", err)))
	assert.Equal(t, "", errorutil.UserMessage(errRoot))
}

func TestFormatErrorAndCode(t *testing.T) {
	text, code := errorutil.FormatErrorAndCode(
		errorutil.NewExitErrorWithMessage(errorutil.CodeInvariant, "check failed", errRoot))
	assert.Equal(t, errorutil.CodeInvariant, code)
	assert.Equal(t, int64(errorutil.CodeInvariant), gjson.Get(text, "code").Int())
	assert.Equal(t, "check failed", gjson.Get(text, "message").String())
	assert.Equal(t, "root cause", gjson.Get(text, "error").String())

	text, code = errorutil.FormatErrorAndCode(errRoot)
	assert.Equal(t, errorutil.CodeInternalErr, code)
	assert.Equal(t, "root cause", gjson.Get(text, "error").String())
}
