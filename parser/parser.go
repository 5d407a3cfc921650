package parser

import (
	"strconv"

	"github.com/icloudza/gcstrtol/cache"
	boundary "github.com/icloudza/gcstrtol/internal"
)

// Result 是一次转换的快照。
//
//	Value    解析出的值；溢出时为该位宽下对应符号的极值
//	N        从输入起点算起被消费的字节数（含前导空白、符号、0x 前缀）；没有数字时为 0
//	Overflow 数值超出位宽可表示范围
//	Radix    实际使用的进制
type Result struct {
	Value    int64
	N        int
	Overflow bool
	Radix    int
}

// Ok 报告是否解析到了至少一位数字。
func (r Result) Ok() bool { return r.N > 0 }

// Convert 按 strtol 语义解析 s 的最长数字前缀。
// base 必须是 0 或 2..36，bitSize 必须是 0/8/16/32/64，否则 panic（由上层校验）。
func Convert(s string, base, bitSize int) Result {
	return convert(s, base, bitSize)
}

// ConvertBytes 与 Convert 一致，输入为 []byte。
func ConvertBytes(b []byte, base, bitSize int) Result {
	return convert(b, base, bitSize)
}

// ConvertText 为 string/[]byte 及其具名类型共用的泛型入口。
func ConvertText[T Text](b T, base, bitSize int) Result {
	return convert(b, base, bitSize)
}

func convert[T Text](b T, base, bitSize int) Result {
	if !ValidBase(base) {
		panic("gcstrtol: illegal base " + strconv.Itoa(base))
	}
	bitSize = boundary.Normalize(bitSize)
	if !boundary.ValidBitSize(bitSize) {
		panic("gcstrtol: illegal bit size " + strconv.Itoa(bitSize))
	}

	i, neg := scanPrefix(b)
	radix, i := resolveRadix(b, i, base)

	a := accumulator{
		neg:   neg,
		radix: int64(radix),
		limit: cache.Boundary(neg, radix, bitSize),
	}
	for ; i < len(b); i++ {
		d, ok := DigitValue(b[i])
		if !ok || d >= a.radix {
			break
		}
		a.feed(d)
	}
	return a.result(i, radix)
}
