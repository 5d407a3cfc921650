package fast

// MaxDigits 以内的十进制数不可能溢出 int64（最大值有 19 位）。
const MaxDigits = 18

type text interface {
	~string | ~[]byte
}

// IsPlainDecimal 报告 b 是否整体为 [+-]?[0-9]{1,18}：
// 无空白、无前缀、无尾随字符。
func IsPlainDecimal[T text](b T) bool {
	i := 0
	if len(b) > 0 && (b[0] == '-' || b[0] == '+') {
		i = 1
	}
	n := len(b) - i
	if n == 0 || n > MaxDigits {
		return false
	}
	for ; i < len(b); i++ {
		if b[i] < '0' || b[i] > '9' {
			return false
		}
	}
	return true
}

// Eligible 在 IsPlainDecimal 基础上再看进制：
// base 10 任意；base 0 时首位数字不能为 '0'（那是八进制）。
func Eligible[T text](b T, base int) bool {
	if !IsPlainDecimal(b) {
		return false
	}
	switch base {
	case 10:
		return true
	case 0:
		first := b[0]
		if first == '-' || first == '+' {
			first = b[1]
		}
		return first != '0'
	}
	return false
}

// ParseDecimal 解析 IsPlainDecimal 形式的输入，零分配；18 位以内无需溢出检查。
func ParseDecimal[T text](b T) (int64, bool) {
	if !IsPlainDecimal(b) {
		return 0, false
	}
	i := 0
	neg := false
	switch b[0] {
	case '-':
		neg, i = true, 1
	case '+':
		i = 1
	}
	var n int64
	for ; i < len(b); i++ {
		n = n*10 + int64(b[i]-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}
