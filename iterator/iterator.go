package iterator

import (
	"github.com/icloudza/gcstrtol/convert"
	"github.com/icloudza/gcstrtol/parser"
)

// EachNumber 从头到尾反复做 strtol：
// 有数字时 fn 收到数字起点（跳过前导空白后的绝对偏移）和结果，然后从 endptr 继续；
// 没有数字时越过前导空白再前进一个字节。fn 返回 false 提前结束。至少命中一次返回 true。
// "0xg" 这类 0x 后无十六进制数字的输入，strtol 整体回退，这里把前面的 "0" 单独作为一个数字给出。
func EachNumber(v any, base int, fn func(off int, r parser.Result) bool) bool {
	b, err := convert.From(v)
	if err != nil {
		return false
	}
	return EachNumberBytes(b, base, func(off int, _ []byte, r parser.Result) bool {
		return fn(off, r)
	})
}

// EachNumberBytes 同 EachNumber，额外给出数字在原始输入中的切片（零拷贝）。
// 回调里的 r.N 是相对本次起点的消费长度。
func EachNumberBytes(b []byte, base int, fn func(off int, num []byte, r parser.Result) bool) bool {
	hit := false
	pos := 0
	for pos < len(b) {
		rest := b[pos:]
		r := parser.ConvertBytes(rest, base, 64)
		start := parser.SkipSpace(rest)
		if !r.Ok() {
			zero, ok := bareZero(rest, start, base)
			if !ok {
				// 同一段空白不重复扫描
				pos += start + 1
				continue
			}
			r = parser.ConvertBytes(rest[:zero], base, 64)
		}
		hit = true
		if !fn(pos+start, rest[start:r.N], r) {
			return true
		}
		pos += r.N
	}
	return hit
}

// bareZero 判断 rest 在空白与符号之后是否为 0x/0X 前缀而没有十六进制数字，
// 是则返回 "0" 之后的位置。
func bareZero(rest []byte, start, base int) (int, bool) {
	if base != 0 && base != 16 {
		return 0, false
	}
	i := start
	if i < len(rest) && (rest[i] == '+' || rest[i] == '-') {
		i++
	}
	if i+1 < len(rest) && rest[i] == '0' && (rest[i+1] == 'x' || rest[i+1] == 'X') {
		return i + 1, true
	}
	return 0, false
}

// Collect 收集全部数字的值。
func Collect(v any, base int) ([]int64, error) {
	b, err := convert.From(v)
	if err != nil {
		return nil, err
	}
	out := make([]int64, 0, 8)
	EachNumberBytes(b, base, func(_ int, _ []byte, r parser.Result) bool {
		out = append(out, r.Value)
		return true
	})
	return out, nil
}
