package gcstrtol

import (
	"errors"

	"github.com/icloudza/gcstrtol/convert"
	"github.com/icloudza/gcstrtol/fast"
	boundary "github.com/icloudza/gcstrtol/internal"
	"github.com/icloudza/gcstrtol/iterator"
	"github.com/icloudza/gcstrtol/parser"
	"github.com/icloudza/gcstrtol/picker"
	"github.com/icloudza/gcstrtol/raw"

	"github.com/tidwall/gjson"
)

type Result = parser.Result

const (
	MinBase = parser.MinBase
	MaxBase = parser.MaxBase
)

func init() {
	gjson.DisableModifiers = true
}

// ValidBase 报告 base 是否可用（0 表示自动识别）
func ValidBase(base int) bool { return parser.ValidBase(base) }

// SetDefaultPickKeys ConvertData 使用的默认字段名
func SetDefaultPickKeys(keys ...string) {
	picker.SetDefaultPickKeys(keys...)
}

// convert64 先试十进制快路径，结果与通用路径一致。
func convert64[T parser.Text](text T, base int) Result {
	if fast.Eligible(text, base) {
		v, _ := fast.ParseDecimal(text)
		return Result{Value: v, N: len(text), Radix: 10}
	}
	return parser.ConvertText(text, base, 64)
}

// Convert 按 strtol 语义把 text 开头的数字解析为 int64。
// base 为 0 时按前缀自动识别八/十/十六进制；非法 base 会 panic，需要校验请用 ConvertBits。
func Convert(text string, base int) Result {
	return convert64(text, base)
}

// ConvertBytes 与 Convert 一致，输入为 []byte（零拷贝）
func ConvertBytes(b []byte, base int) Result {
	return convert64(b, base)
}

// ConvertBits 按指定位宽解析，bitSize 为 0 时取平台 int 位宽。
// 参数非法时返回 *NumError，不 panic。
func ConvertBits(text string, base, bitSize int) (Result, error) {
	const fnConvertBits = "ConvertBits"
	if err := validate(fnConvertBits, text, base, bitSize); err != nil {
		return Result{}, err
	}
	if boundary.Normalize(bitSize) == 64 {
		return convert64(text, base), nil
	}
	return parser.Convert(text, base, bitSize), nil
}

func validate(fn, text string, base, bitSize int) error {
	if !parser.ValidBase(base) {
		return baseError(fn, text, base)
	}
	if !boundary.ValidBitSize(boundary.Normalize(bitSize)) {
		return bitSizeError(fn, text, bitSize)
	}
	if len(text) > convert.MaxInputSize {
		return &NumError{fn, text, ErrTooLarge}
	}
	return nil
}

// ConvertAny 接受 string / []byte / *string / fmt.Stringer，其余类型先经 sonic 序列化。
func ConvertAny(v any, base int) (Result, error) {
	const fnConvertAny = "ConvertAny"
	b, err := convert.From(v)
	if err != nil {
		return Result{}, &NumError{fnConvertAny, "", err}
	}
	if !parser.ValidBase(base) {
		return Result{}, baseError(fnConvertAny, string(b), base)
	}
	return convert64(b, base), nil
}

// ParseInt 严格模式：整个字符串（允许前导空白）必须是一个数字。
// 溢出时返回钳位后的极值和 ErrRange；语法错误时返回 0 和 ErrSyntax。
func ParseInt(s string, base, bitSize int) (int64, error) {
	const fnParseInt = "ParseInt"
	return parseInt(fnParseInt, s, base, bitSize)
}

func parseInt(fn, s string, base, bitSize int) (int64, error) {
	if err := validate(fn, s, base, bitSize); err != nil {
		return 0, err
	}
	var r Result
	if boundary.Normalize(bitSize) == 64 {
		r = convert64(s, base)
	} else {
		r = parser.Convert(s, base, bitSize)
	}
	if !r.Ok() || r.N != len(s) {
		return 0, syntaxError(fn, s)
	}
	if r.Overflow {
		return r.Value, rangeError(fn, s)
	}
	return r.Value, nil
}

// Atoi 等价于 ParseInt(s, 10, 0)，转换为 int。
func Atoi(s string) (int, error) {
	const fnAtoi = "Atoi"
	v, err := parseInt(fnAtoi, s, 10, 0)
	return int(v), err
}

// ConvertJSON 用 gjson 取 path 处的字符串或数字，再按 strtol 语义解析其文本。
func ConvertJSON(doc []byte, path string, base int) (Result, error) {
	const fnConvertJSON = "ConvertJSON"
	if !parser.ValidBase(base) {
		return Result{}, baseError(fnConvertJSON, path, base)
	}
	if len(doc) > convert.MaxInputSize {
		return Result{}, &NumError{fnConvertJSON, path, ErrTooLarge}
	}
	return fromJSON(fnConvertJSON, gjson.GetBytes(doc, path), path, base)
}

func fromJSON(fn string, r gjson.Result, path string, base int) (Result, error) {
	switch r.Type {
	case gjson.String:
		return convert64(r.Str, base), nil
	case gjson.Number:
		return convert64(r.Raw, base), nil
	}
	if !r.Exists() {
		return Result{}, &NumError{fn, path, ErrNotFound}
	}
	return Result{}, syntaxError(fn, r.Raw)
}

// ConvertJSONMany 一次取多个路径，结果与 paths 一一对应。
// 缺失或非文本的路径对应零值 Result，各自的 *NumError（ErrNotFound / ErrSyntax，Num 为路径或原值）
// 用 errors.Join 合并返回；其余路径的结果照常填充。
func ConvertJSONMany(doc []byte, base int, paths ...string) ([]Result, error) {
	const fnConvertJSONMany = "ConvertJSONMany"
	if !parser.ValidBase(base) {
		return nil, baseError(fnConvertJSONMany, "", base)
	}
	if len(doc) > convert.MaxInputSize {
		return nil, &NumError{fnConvertJSONMany, "", ErrTooLarge}
	}
	results := gjson.GetManyBytes(doc, paths...)
	out := make([]Result, len(results))
	var errs []error
	for i, r := range results {
		var err error
		if out[i], err = fromJSON(fnConvertJSONMany, r, paths[i], base); err != nil {
			errs = append(errs, err)
		}
	}
	return out, errors.Join(errs...)
}

// ConvertField 先从 map/结构体中取 key 对应的值，再解析。
func ConvertField(v any, key string, base int) (Result, error) {
	return convertPicked("ConvertField", v, []string{key}, base)
}

// ConvertData 按默认字段名（SetDefaultPickKeys）取值再解析。
func ConvertData(v any, base int) (Result, error) {
	return convertPicked("ConvertData", v, picker.GetDefaultPickKeys(), base)
}

func convertPicked(fn string, v any, keys []string, base int) (Result, error) {
	if !parser.ValidBase(base) {
		return Result{}, baseError(fn, "", base)
	}
	val, ok := picker.Pick(v, keys)
	if !ok {
		name := ""
		if len(keys) > 0 {
			name = keys[0]
		}
		return Result{}, &NumError{fn, name, ErrNotFound}
	}
	b, err := convert.From(val)
	if err != nil {
		return Result{}, &NumError{fn, "", err}
	}
	return convert64(b, base), nil
}

// EachNumber 依次解析文本中的每个数字，off 为数字起点的绝对偏移。
func EachNumber(v any, base int, fn func(off int, r Result) bool) bool {
	if !parser.ValidBase(base) {
		return false
	}
	return iterator.EachNumber(v, base, fn)
}

// Collect 返回文本中全部数字的值。
func Collect(v any, base int) ([]int64, error) {
	if !parser.ValidBase(base) {
		return nil, baseError("Collect", "", base)
	}
	return iterator.Collect(v, base)
}

// Raw 原始数字文本 API
func Raw(v any, base int) (string, bool) {
	if !parser.ValidBase(base) {
		return "", false
	}
	return raw.Get(v, base)
}

func RawBytes(v any, base int) ([]byte, bool) {
	if !parser.ValidBase(base) {
		return nil, false
	}
	return raw.GetBytes(v, base)
}

// Split 返回数字部分和剩余部分（endptr 语义）。
func Split(v any, base int) (num, rest []byte, ok bool) {
	if !parser.ValidBase(base) {
		return nil, nil, false
	}
	return raw.Split(v, base)
}
