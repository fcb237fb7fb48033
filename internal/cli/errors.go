package cli

import (
	"errors"
	"fmt"

	"github.com/urano-b2b/internal/service"
)

// 退出码
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitCommandError = 2
)

// ExitError 带退出码的命令错误
type ExitError struct {
	Code    int
	Message string
	Err     error
	// Reported 提示已经输出过，调用方无需重复打印
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError 包装错误并指定退出码
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: ExitFailure, Err: err, Reported: true}
}

// GetExitCode 提取退出码
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// IsReported 错误提示是否已输出
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Reported
}

var userFacingErrors = []error{
	service.ErrInvalidCredentials,
	service.ErrNotAuthenticated,
	service.ErrProductNotFound,
	service.ErrOrderNotFound,
	service.ErrAccountNotFound,
	service.ErrCartPersistFailed,
	service.ErrSessionPersistFailed,
	service.ErrBackendUnavailable,
	service.ErrInvalidInput,
}

// UserMessage 返回面向用户的错误文案
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Message != "" {
		return exitErr.Message
	}
	for _, known := range userFacingErrors {
		if errors.Is(err, known) {
			if service.IsRetryable(err) {
				return known.Error() + ". Intentá nuevamente."
			}
			return known.Error()
		}
	}
	return err.Error()
}
