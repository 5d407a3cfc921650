package parser

const noDigit = 0xff

// digitTable: '0'-'9' -> 0..9，'a'-'z'/'A'-'Z' -> 10..35，其余为 noDigit。
var digitTable = func() (t [256]uint8) {
	for i := range t {
		t[i] = noDigit
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = uint8(c - '0')
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = uint8(c-'a') + 10
		t[c-'a'+'A'] = uint8(c-'a') + 10
	}
	return t
}()

// DigitValue 返回 c 的数值；非字母数字返回 false。
//
//go:nosplit
func DigitValue(c byte) (int64, bool) {
	d := digitTable[c]
	if d == noDigit {
		return 0, false
	}
	return int64(d), true
}
