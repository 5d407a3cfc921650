package parser

// Text 为解析输入允许的类型：string 与 []byte 共用一份实现，不做拷贝。
type Text interface {
	~string | ~[]byte
}

// IsSpace 与 C 的 isspace 在 "C" locale 下一致。
//
//go:nosplit
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// SkipSpace 返回第一个非空白字符的位置。
func SkipSpace[T Text](b T) int {
	i := 0
	for i < len(b) && IsSpace(b[i]) {
		i++
	}
	return i
}

// scanPrefix 跳过空白并吃掉一个可选的 '+'/'-'。
// 返回的 i 指向尚未消费的当前字符。
func scanPrefix[T Text](b T) (i int, neg bool) {
	i = SkipSpace(b)
	if i < len(b) {
		switch b[i] {
		case '-':
			neg = true
			i++
		case '+':
			i++
		}
	}
	return i, neg
}
