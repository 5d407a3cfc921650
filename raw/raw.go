package raw

import (
	"github.com/icloudza/gcstrtol/convert"
	"github.com/icloudza/gcstrtol/parser"
)

// ===== 对外 API =====

// Get 返回 v 开头那段数字的原始文本（会拷贝一次变成 string）
func Get(v any, base int) (string, bool) {
	if bs, ok := GetBytes(v, base); ok {
		return string(bs), true
	}
	return "", false
}

// GetBytes 返回数字在原始输入中的字节切片（零拷贝）。
// 切片包含符号与 0x 前缀，不含前导空白。
func GetBytes(v any, base int) ([]byte, bool) {
	b, err := convert.From(v)
	if err != nil {
		return nil, false
	}
	num, _, ok := SplitBytes(b, base)
	return num, ok
}

// Split 相当于 strtol 的 endptr：返回数字部分和剩余部分。
// 没有数字时 num 为 nil，rest 为整个输入。
func Split(v any, base int) (num, rest []byte, ok bool) {
	b, err := convert.From(v)
	if err != nil {
		return nil, nil, false
	}
	return SplitBytes(b, base)
}

// SplitBytes 为 Split 的 []byte 版本
func SplitBytes(b []byte, base int) (num, rest []byte, ok bool) {
	r := parser.ConvertBytes(b, base, 64)
	if !r.Ok() {
		return nil, b, false
	}
	return Span(b, r), b[r.N:], true
}

// Span 按已有结果切出数字部分。
func Span(b []byte, r parser.Result) []byte {
	if !r.Ok() {
		return nil
	}
	return trimLeftSpaceBytes(b[:r.N])
}

// ===== 辅助函数 =====

func trimLeftSpaceBytes(b []byte) []byte {
	start := parser.SkipSpace(b)
	if start == 0 {
		return b // 无空白，直接返回原 slice
	}
	return b[start:]
}
