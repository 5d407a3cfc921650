package parser

const (
	MinBase = 2
	MaxBase = 36
)

// ValidBase 接受 0（自动识别）或 2..36。
func ValidBase(base int) bool {
	return base == 0 || (base >= MinBase && base <= MaxBase)
}

// resolveRadix 确定实际进制。
// base 为 0 或 16 且当前为 "0x"/"0X" 时吃掉前缀并取 16；
// base 为 0 时以 '0' 开头取 8，否则取 10。
func resolveRadix[T Text](b T, i, base int) (radix, next int) {
	if (base == 0 || base == 16) && i+1 < len(b) && b[i] == '0' && (b[i+1] == 'x' || b[i+1] == 'X') {
		return 16, i + 2
	}
	if base == 0 {
		if i < len(b) && b[i] == '0' {
			return 8, i
		}
		return 10, i
	}
	return base, i
}
