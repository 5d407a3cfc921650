package parser

import (
	boundary "github.com/icloudza/gcstrtol/internal"
)

// accState 只会从 accumulating 走到 overflowed，不会回退。
type accState uint8

const (
	accumulating accState = iota
	overflowed
)

type accumulator struct {
	neg    bool
	radix  int64
	limit  boundary.Pair
	acc    int64
	digits int
	state  accState
}

// feed 吸收一位已确认 < radix 的数字。
// 溢出后仍计数（游标照常前进），但不再做任何算术。
func (a *accumulator) feed(d int64) {
	a.digits++
	if a.state == overflowed {
		return
	}
	if a.limit.Trips(a.neg, a.acc, d) {
		a.state = overflowed
		a.acc = a.limit.Extreme
		return
	}
	a.acc *= a.radix
	if a.neg {
		a.acc -= d
	} else {
		a.acc += d
	}
}

// result 打包结果：一个数字都没有时整体回退到调用方给的起点。
func (a *accumulator) result(end, radix int) Result {
	if a.digits == 0 {
		return Result{Radix: radix}
	}
	return Result{
		Value:    a.acc,
		N:        end,
		Overflow: a.state == overflowed,
		Radix:    radix,
	}
}
