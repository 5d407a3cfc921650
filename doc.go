// Package gcstrtol 提供与 C 库 strtol 语义一致的整数解析。
//
// 特点：
//   - 前导空白、可选符号、0x/0 前缀自动识别进制，也可显式指定 2..36 进制。
//   - cutoff/cutlim 精确判定溢出：溢出时钉在极值，但继续吃完整段合法数字。
//   - 返回消费长度（endptr 语义）；一个数字都没有时长度为 0，连空白和 0x 一起回退。
//   - 无全局 errno：溢出通过 Result.Overflow 返回，纯函数、零分配、可并发调用。
//
// 输入类型：
//   - Convert/ConvertBytes 直接接受 string / []byte。
//   - ConvertAny 额外接受 *string、fmt.Stringer，其余类型经 sonic 序列化后解析。
//
// 内部依赖：
//   - 使用 gjson 从 JSON 文档中取值（ConvertJSON）。
//
// # 示例
//
// 基础用法：
//
//	r := gcstrtol.Convert("0x1G", 0)
//	// r.Value == 1, r.N == 3, r.Overflow == false, r.Radix == 16
//
// 溢出：
//
//	r = gcstrtol.Convert("9223372036854775808", 10)
//	// r.Value == math.MaxInt64, r.N == 19, r.Overflow == true
//
// 严格模式：
//
//	v, err := gcstrtol.ParseInt("127", 10, 8) // 127, nil
//	_, err = gcstrtol.ParseInt("12ab", 10, 64) // errors.Is(err, gcstrtol.ErrSyntax)
//
// 从 JSON 取值：
//
//	r, err := gcstrtol.ConvertJSON([]byte(`{"mask":"0755"}`), "mask", 0) // 493
//
// 遍历文本中的数字：
//
//	gcstrtol.EachNumber("id=42, delta -7", 10, func(off int, r gcstrtol.Result) bool {
//	    fmt.Println(off, r.Value)
//	    return true
//	})
package gcstrtol
