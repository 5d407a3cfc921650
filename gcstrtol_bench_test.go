package gcstrtol

import (
	"fmt"
	"testing"

	"github.com/icloudza/gcstrtol/picker"
)

var sinkInt int64

// -------------------- Benchmark 基础功能 --------------------
func BenchmarkConvertFast(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkInt = Convert("-123456789012345", 10).Value
	}
}

func BenchmarkConvertGeneral(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkInt = Convert("  -9223372036854775808", 0).Value
	}
}

func BenchmarkConvertHex(b *testing.B) {
	in := []byte("0x7fffffffffffffff")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkInt = ConvertBytes(in, 16).Value
	}
}

func BenchmarkConvertOverflow(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkInt = Convert("999999999999999999999999999999", 10).Value
	}
}

func BenchmarkParseInt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkInt, _ = ParseInt("2147483647", 10, 32)
	}
}

// -------------------- Benchmark JSON --------------------
func BenchmarkConvertJSON(b *testing.B) {
	for i := 0; i < b.N; i++ {
		r, _ := ConvertJSON(sampleJSON, "data.color", 0)
		sinkInt = r.Value
	}
}

func BenchmarkConvertJSONMany(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ConvertJSONMany(sampleJSON, 0, "data.id", "data.mask", "data.items.2")
	}
}

// -------------------- Benchmark pick 对比 --------------------
func BenchmarkPick_Map(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = picker.Pick(map[string]any{"value": "123"}, []string{"value"})
	}
}

func BenchmarkConvertField_Struct(b *testing.B) {
	s := settings{Port: "8080"}
	for i := 0; i < b.N; i++ {
		r, _ := ConvertField(s, "port", 10)
		sinkInt = r.Value
	}
}

// -------------------- 示例 --------------------
func Example_usage() {
	r := Convert("0x1G", 0)
	fmt.Println(r.Value, r.N, r.Overflow, r.Radix)
	// Output: 1 3 false 16
}

func ExampleParseInt() {
	v, err := ParseInt("128", 10, 8)
	fmt.Println(v, err)
	// Output: 127 gcstrtol.ParseInt: parsing "128": value out of range
}
