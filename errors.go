package gcstrtol

import (
	"errors"
	"strconv"

	"github.com/icloudza/gcstrtol/convert"
)

var (
	// ErrRange 数值超出目标位宽
	ErrRange = errors.New("value out of range")
	// ErrSyntax 输入没有被完整识别为一个数字
	ErrSyntax = errors.New("invalid syntax")
	// ErrBase base 不是 0 或 2..36
	ErrBase = errors.New("invalid base")
	// ErrBitSize bitSize 不是 0/8/16/32/64
	ErrBitSize = errors.New("invalid bit size")
	// ErrNotFound JSON 路径或字段不存在
	ErrNotFound = errors.New("value not found")

	ErrNilInput = convert.ErrNilInput
	ErrTooLarge = convert.ErrTooLarge
)

// NumError 记录一次失败的转换。
type NumError struct {
	Func string // 出错的函数（ParseInt、Atoi、ConvertBits ...）
	Num  string // 输入；JSON/字段场景下为路径或键
	Err  error  // 原因（ErrRange、ErrSyntax、ErrBase ...）
}

func (e *NumError) Error() string {
	return "gcstrtol." + e.Func + ": parsing " + strconv.Quote(e.Num) + ": " + e.Err.Error()
}

func (e *NumError) Unwrap() error { return e.Err }

func syntaxError(fn, str string) *NumError {
	return &NumError{fn, str, ErrSyntax}
}

func rangeError(fn, str string) *NumError {
	return &NumError{fn, str, ErrRange}
}

func baseError(fn, str string, base int) *NumError {
	return &NumError{fn, str, &valueError{ErrBase, base}}
}

func bitSizeError(fn, str string, bitSize int) *NumError {
	return &NumError{fn, str, &valueError{ErrBitSize, bitSize}}
}

// valueError 给哨兵错误附上出错的参数值，errors.Is 仍然命中哨兵。
type valueError struct {
	err error
	val int
}

func (e *valueError) Error() string { return e.err.Error() + " " + strconv.Itoa(e.val) }

func (e *valueError) Unwrap() error { return e.err }
