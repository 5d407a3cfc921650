package convert

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/bytedance/sonic"
)

var (
	ErrNilInput = errors.New("nil input")
	ErrTooLarge = errors.New("input too large")
)

// MaxInputSize 单次转换允许的最大输入字节数
var MaxInputSize = 1 << 20 // 1MB

//go:nosplit
func UnsafeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// From 把任意输入规整为待解析的字节：
//
//	string / []byte / *string  零拷贝
//	fmt.Stringer               调用 String()
//	其他                       sonic 序列化；结果是 JSON 字符串时去掉引号
func From(v any) ([]byte, error) {
	b, err := from(v)
	if err != nil {
		return nil, err
	}
	if len(b) > MaxInputSize {
		return nil, ErrTooLarge
	}
	return b, nil
}

func from(v any) ([]byte, error) {
	switch x := v.(type) {
	case nil:
		return nil, ErrNilInput
	case string:
		return UnsafeStringToBytes(x), nil
	case []byte:
		return x, nil
	case *string:
		if x == nil {
			return nil, ErrNilInput
		}
		return UnsafeStringToBytes(*x), nil
	case fmt.Stringer:
		return UnsafeStringToBytes(x.String()), nil
	default:
		b, err := sonic.ConfigStd.Marshal(v)
		if err != nil {
			return nil, err
		}
		if len(b) > 0 && b[0] == '"' {
			var s string
			if err := sonic.ConfigStd.Unmarshal(b, &s); err != nil {
				return nil, err
			}
			return UnsafeStringToBytes(s), nil
		}
		return b, nil
	}
}
