package errors

import (
	"errors"
	"fmt"

	"papertrade/pkg/errors/ecode"
)

// 带业务码的错误，handler层统一通过DecodeErr转成响应

type withCode struct {
	code  int
	msg   string
	cause error
}

func (e *withCode) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *withCode) Unwrap() error { return e.cause }

// WithCode 创建一个带业务码的错误
func WithCode(code int, format string, args ...interface{}) error {
	return &withCode{code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap 包装已有错误并附加业务码
func Wrap(err error, code int, msg string) error {
	return &withCode{code: code, msg: msg, cause: err}
}

func Wrapf(err error, code int, format string, args ...interface{}) error {
	return &withCode{code: code, msg: fmt.Sprintf(format, args...), cause: err}
}

// DecodeErr 解出业务码和提示信息
func DecodeErr(err error) (int, string) {
	if err == nil {
		return ecode.Success, "OK"
	}
	var wc *withCode
	if errors.As(err, &wc) {
		return wc.code, wc.msg
	}
	return ecode.Unknown, err.Error()
}

// Is 透传标准库判断，调用方不用同时导入两个errors包
func Is(err, target error) bool { return errors.Is(err, target) }

func New(msg string) error { return errors.New(msg) }
