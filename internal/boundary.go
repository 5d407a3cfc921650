package boundary

import "strconv"

const intSize = 32 << (^uint(0) >> 63) // 32 或 64

// Pair 是某个 (符号, 进制, 位宽) 组合下的溢出边界。
//
// Cutoff 为累加器还能再吸收一位数字的最大值（负数时为最小值），
// Cutlim 为累加器恰好等于 Cutoff 时允许的最大单个数字。
// Extreme 为溢出时钉住的有符号极值。
type Pair struct {
	Cutoff  int64
	Cutlim  int64
	Extreme int64
}

// Normalize 把 0 映射为平台 int 位宽，其余原样返回。
func Normalize(bitSize int) int {
	if bitSize == 0 {
		return intSize
	}
	return bitSize
}

// ValidBitSize 仅接受 8/16/32/64（0 需先 Normalize）
func ValidBitSize(bitSize int) bool {
	switch bitSize {
	case 8, 16, 32, 64:
		return true
	}
	return false
}

// Extreme 返回 bitSize 位有符号整数在该符号下的极值。
func Extreme(neg bool, bitSize int) int64 {
	shift := uint(bitSize - 1)
	if neg {
		return int64(-1) << shift
	}
	return ^(int64(-1) << shift)
}

// Compute 计算 cutoff/cutlim。
// Go 的 / 和 % 向零截断，负数时 cutlim <= 0，取反后即为边界上允许的最大数字。
func Compute(neg bool, radix, bitSize int) Pair {
	ext := Extreme(neg, bitSize)
	r := int64(radix)
	cutoff := ext / r
	cutlim := ext % r
	if neg {
		if cutlim > 0 {
			cutlim -= r
			cutoff++
		}
		cutlim = -cutlim
	}
	return Pair{Cutoff: cutoff, Cutlim: cutlim, Extreme: ext}
}

// Trips 报告在累加器为 acc 时再吸收 digit 是否越界。
//
//go:nosplit
func (p Pair) Trips(neg bool, acc, digit int64) bool {
	if neg {
		return acc < p.Cutoff || (acc == p.Cutoff && digit > p.Cutlim)
	}
	return acc > p.Cutoff || (acc == p.Cutoff && digit > p.Cutlim)
}

// ===== 调试辅助 =====
func (p Pair) String() string {
	return "cutoff=" + strconv.FormatInt(p.Cutoff, 10) +
		" cutlim=" + strconv.FormatInt(p.Cutlim, 10) +
		" extreme=" + strconv.FormatInt(p.Extreme, 10)
}
