package cache

import (
	boundary "github.com/icloudza/gcstrtol/internal"
)

const (
	MinRadix = 2
	MaxRadix = 36
)

// 位宽 8/16/32/64 × 符号 × 进制 的边界表，init 时一次填满，之后只读。
var table [4][2][MaxRadix + 1]boundary.Pair

func init() {
	for w, bits := range [...]int{8, 16, 32, 64} {
		for radix := MinRadix; radix <= MaxRadix; radix++ {
			table[w][0][radix] = boundary.Compute(false, radix, bits)
			table[w][1][radix] = boundary.Compute(true, radix, bits)
		}
	}
}

//go:nosplit
func widthIndex(bitSize int) int {
	switch bitSize {
	case 8:
		return 0
	case 16:
		return 1
	case 32:
		return 2
	default:
		return 3
	}
}

// Boundary 查表返回边界；radix 与 bitSize 须已校验。
//
//go:nosplit
func Boundary(neg bool, radix, bitSize int) boundary.Pair {
	s := 0
	if neg {
		s = 1
	}
	return table[widthIndex(bitSize)][s][radix]
}
